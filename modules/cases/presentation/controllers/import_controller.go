package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"

	"github.com/assistravel/casetrack/modules/cases/importer"
	"github.com/assistravel/casetrack/modules/cases/services"
	"github.com/assistravel/casetrack/pkg/composables"
	"github.com/assistravel/casetrack/pkg/configuration"
)

var allowedSpreadsheetTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel",
	"application/zip",
}

type ImportController struct {
	imports  *services.ImportService
	basePath string
}

func NewImportController(imports *services.ImportService) *ImportController {
	return &ImportController{
		imports:  imports,
		basePath: "/cases/import",
	}
}

func (c *ImportController) Key() string {
	return c.basePath
}

func (c *ImportController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Import).Methods(http.MethodPost)
}

func (c *ImportController) Import(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	logger := composables.UseLogger(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, conf.Import.MaxFileSize)
	if err := r.ParseMultipartForm(conf.Import.MaxMemory); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "IMPORT_BAD_UPLOAD", "upload too large or malformed")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "IMPORT_MISSING_FILE", "missing file field")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "IMPORT_BAD_UPLOAD", "failed to read upload")
		return
	}

	detected := mimetype.Detect(payload)
	if !isSpreadsheet(detected) {
		writeAPIError(w, r, http.StatusUnsupportedMediaType, "IMPORT_BAD_TYPE", "expected an Excel spreadsheet")
		return
	}

	result, err := c.imports.ImportFile(r.Context(), bytes.NewReader(payload))
	if err != nil {
		var structural *importer.StructuralError
		if errors.As(err, &structural) {
			writeJSON(w, http.StatusBadRequest, &importer.Result{
				Success: false,
				Errors:  []string{structural.Error()},
			})
			return
		}
		logger.WithError(err).Error("import failed")
		writeAPIError(w, r, http.StatusInternalServerError, "IMPORT_INTERNAL", "import failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func isSpreadsheet(detected *mimetype.MIME) bool {
	for _, allowed := range allowedSpreadsheetTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence"
	"github.com/assistravel/casetrack/modules/cases/presentation/controllers/dtos"
	"github.com/assistravel/casetrack/modules/cases/presentation/mappers"
	"github.com/assistravel/casetrack/modules/cases/presentation/viewmodels"
	"github.com/assistravel/casetrack/modules/cases/services"
	"github.com/assistravel/casetrack/pkg/configuration"
)

type CorrespondentsAPIController struct {
	correspondents *services.CorrespondentService
	basePath       string
}

func NewCorrespondentsAPIController(correspondents *services.CorrespondentService) *CorrespondentsAPIController {
	return &CorrespondentsAPIController{
		correspondents: correspondents,
		basePath:       "/correspondents",
	}
}

func (c *CorrespondentsAPIController) Key() string {
	return c.basePath
}

func (c *CorrespondentsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *CorrespondentsAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	params := &correspondent.FindParams{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: conf.PageSize,
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= conf.MaxPageSize {
			params.Limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}

	items, err := c.correspondents.GetPaginated(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}
	total, err := c.correspondents.Count(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}

	out := make([]*viewmodels.Correspondent, 0, len(items))
	for _, item := range items {
		out = append(out, mappers.CorrespondentToViewModel(item))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *CorrespondentsAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_BAD_ID", "invalid correspondent id")
		return
	}
	entity, err := c.correspondents.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrCorrespondentNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CORRESPONDENTS_NOT_FOUND", "correspondent not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.CorrespondentToViewModel(entity))
}

func (c *CorrespondentsAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CorrespondentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_BAD_BODY", "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_VALIDATION", err.Error())
		return
	}
	created, err := c.correspondents.Create(r.Context(), dto.ToEntity())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.CorrespondentToViewModel(created))
}

func (c *CorrespondentsAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_BAD_ID", "invalid correspondent id")
		return
	}
	var dto dtos.CorrespondentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_BAD_BODY", "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_VALIDATION", err.Error())
		return
	}

	entity, err := c.correspondents.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrCorrespondentNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CORRESPONDENTS_NOT_FOUND", "correspondent not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}
	dto.Apply(entity)

	updated, err := c.correspondents.Update(r.Context(), entity)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.CorrespondentToViewModel(updated))
}

func (c *CorrespondentsAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORRESPONDENTS_BAD_ID", "invalid correspondent id")
		return
	}
	if err := c.correspondents.Delete(r.Context(), id); err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORRESPONDENTS_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/assistravel/casetrack/modules/cases/domain/aggregates/caserecord"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence"
	"github.com/assistravel/casetrack/modules/cases/presentation/controllers/dtos"
	"github.com/assistravel/casetrack/modules/cases/presentation/mappers"
	"github.com/assistravel/casetrack/modules/cases/presentation/viewmodels"
	"github.com/assistravel/casetrack/modules/cases/services"
	"github.com/assistravel/casetrack/pkg/configuration"
)

type CasesAPIController struct {
	cases    *services.CaseService
	basePath string
}

func NewCasesAPIController(cases *services.CaseService) *CasesAPIController {
	return &CasesAPIController{
		cases:    cases,
		basePath: "/cases",
	}
}

func (c *CasesAPIController) Key() string {
	return c.basePath
}

func (c *CasesAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *CasesAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	params := &caserecord.FindParams{
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

	items, err := c.cases.GetPaginated(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CASES_INTERNAL", "internal error")
		return
	}
	total, err := c.cases.Count(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CASES_INTERNAL", "internal error")
		return
	}

	out := make([]*viewmodels.Case, 0, len(items))
	for _, item := range items {
		out = append(out, mappers.CaseToViewModel(item))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *CasesAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_BAD_ID", "invalid case id")
		return
	}
	entity, err := c.cases.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrCaseNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CASES_NOT_FOUND", "case not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CASES_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.CaseToViewModel(entity))
}

func (c *CasesAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_BAD_BODY", "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_VALIDATION", err.Error())
		return
	}
	entity, err := dto.ToEntity()
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_VALIDATION", err.Error())
		return
	}
	created, err := c.cases.Create(r.Context(), entity)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CASES_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.CaseToViewModel(created))
}

func (c *CasesAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_BAD_ID", "invalid case id")
		return
	}
	var dto dtos.CaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_BAD_BODY", "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_VALIDATION", err.Error())
		return
	}
	entity, err := dto.ToEntity(caserecord.WithID(id))
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_VALIDATION", err.Error())
		return
	}
	updated, err := c.cases.Update(r.Context(), entity)
	if err != nil {
		if errors.Is(err, persistence.ErrCaseNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "CASES_NOT_FOUND", "case not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "CASES_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.CaseToViewModel(updated))
}

func (c *CasesAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CASES_BAD_ID", "invalid case id")
		return
	}
	if err := c.cases.Delete(r.Context(), id); err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CASES_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

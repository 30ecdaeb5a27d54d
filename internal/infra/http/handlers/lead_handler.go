package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type LeadHandler struct {
	Store entity.LeadStore
}

func NewLeadHandler(store entity.LeadStore) *LeadHandler {
	return &LeadHandler{Store: store}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"leads": h.Store.Leads()})
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input entity.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if errs := usecase.ValidateLeadInput(input); len(errs) > 0 {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", usecase.FormatValidationErrors(errs))
		return
	}

	lead, err := h.Store.AddLead(input)
	if err != nil {
		middleware.RecordStoreWrite("leads", "error")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordStoreWrite("leads", "ok")
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch entity.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	lead, err := h.Store.UpdateLead(id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead não encontrado")
			return
		}
		middleware.RecordStoreWrite("leads", "error")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordStoreWrite("leads", "ok")
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteLead(id); err != nil {
		middleware.RecordStoreWrite("leads", "error")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordStoreWrite("leads", "ok")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

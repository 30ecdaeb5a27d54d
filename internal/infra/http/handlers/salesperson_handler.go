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

type SalespersonHandler struct {
	Store entity.SalespersonStore
}

func NewSalespersonHandler(store entity.SalespersonStore) *SalespersonHandler {
	return &SalespersonHandler{Store: store}
}

func (h *SalespersonHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"salespersons": h.Store.Salespersons()})
}

func (h *SalespersonHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input entity.SalespersonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if errs := usecase.ValidateSalespersonInput(input); len(errs) > 0 {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", usecase.FormatValidationErrors(errs))
		return
	}

	sp, err := h.Store.AddSalesperson(input)
	if err != nil {
		middleware.RecordStoreWrite("salespersons", "error")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordStoreWrite("salespersons", "ok")
	writeJSON(w, http.StatusCreated, sp)
}

func (h *SalespersonHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch entity.SalespersonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	sp, err := h.Store.UpdateSalesperson(id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrSalespersonNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "SALESPERSON_NOT_FOUND", "vendedor não encontrado")
			return
		}
		middleware.RecordStoreWrite("salespersons", "error")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordStoreWrite("salespersons", "ok")
	writeJSON(w, http.StatusOK, sp)
}

// HandleDelete remove do store local. O cascade (zerar assignedTo dos
// leads) acontece dentro do store, na mesma mutação.
func (h *SalespersonHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteSalesperson(id); err != nil {
		middleware.RecordStoreWrite("salespersons", "error")
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordStoreWrite("salespersons", "ok")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

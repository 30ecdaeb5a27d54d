package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/infra/database"
)

// SalespersonAdminHandler atende as rotas server-backed
// /api/salespersons/delete e /api/salespersons/update, que operam direto no
// Postgres em vez do store local.
type SalespersonAdminHandler struct {
	Repo *database.SalespersonAdminRepository // nil sem DATABASE_URL
}

func NewSalespersonAdminHandler(repo *database.SalespersonAdminRepository) *SalespersonAdminHandler {
	return &SalespersonAdminHandler{Repo: repo}
}

func (h *SalespersonAdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeError(w, http.StatusInternalServerError, "Server configuration error: database not configured")
		return
	}

	var body struct {
		SalespersonID string `json:"salespersonId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if body.SalespersonID == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: salespersonId")
		return
	}

	if err := h.Repo.Delete(r.Context(), body.SalespersonID); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to delete salesperson: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Salesperson deleted successfully",
	})
}

func (h *SalespersonAdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeError(w, http.StatusInternalServerError, "Server configuration error: database not configured")
		return
	}

	var body struct {
		SalespersonID string            `json:"salespersonId"`
		Updates       map[string]string `json:"updates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if body.SalespersonID == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: salespersonId")
		return
	}
	if len(body.Updates) == 0 {
		writeError(w, http.StatusBadRequest, "Missing required field: updates")
		return
	}

	if err := h.Repo.Update(r.Context(), body.SalespersonID, body.Updates); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to update salesperson: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

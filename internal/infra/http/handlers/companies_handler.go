package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/prospector"
)

type CompaniesHandler struct {
	Prospector *prospector.Client // nil quando a API key não está configurada
}

func NewCompaniesHandler(client *prospector.Client) *CompaniesHandler {
	return &CompaniesHandler{Prospector: client}
}

func (h *CompaniesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.Prospector == nil {
		writeError(w, http.StatusInternalServerError, "Company data API key not configured")
		return
	}

	// limit clampado em 1–500 (default 100), page mínimo 1 (default 1)
	limit := clamp(parseIntOr(r.URL.Query().Get("limit"), 100), 1, 500)
	page := parseIntOr(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}

	result, err := h.Prospector.FetchSavedCompanies(limit, page)
	if err != nil {
		middleware.RecordIntegrationError("prospector")

		var provErr *prospector.ProviderError
		if errors.As(err, &provErr) {
			// Erro do colaborador: repassa o status dele, sem mascarar.
			writeJSON(w, provErr.Status, map[string]any{
				"error":  provErr.Message,
				"status": provErr.Status,
			})
			return
		}

		writeError(w, http.StatusInternalServerError, "Failed to fetch companies")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

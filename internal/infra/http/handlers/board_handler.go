package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// BoardReader é a visão de leitura que o board precisa do store.
type BoardReader interface {
	Leads() []entity.Lead
	ResolveSalespersonName(id string) string
}

// BoardHandler serve o kanban: colunas particionadas, contagem do
// analytics e o endpoint de move que fecha um gesto de drag.
type BoardHandler struct {
	Store  BoardReader
	MoveUC *usecase.MoveLeadUseCase
}

func NewBoardHandler(store BoardReader, moveUC *usecase.MoveLeadUseCase) *BoardHandler {
	return &BoardHandler{
		Store:  store,
		MoveUC: moveUC,
	}
}

func (h *BoardHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	view := usecase.BuildBoardView(h.Store.Leads(), h.Store.ResolveSalespersonName)
	writeJSON(w, http.StatusOK, view)
}

func (h *BoardHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	view := usecase.BuildAnalyticsView(h.Store.Leads())
	writeJSON(w, http.StatusOK, view)
}

type moveLeadBody struct {
	LeadID  string `json:"leadId"`
	ToStage string `json:"toStage"`
}

// HandleMove reproduz o gesto completo do drag: arma o controller a partir
// do board corrente e solta na coluna alvo. Soltar na própria coluna não é
// erro, só não move.
func (h *BoardHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var body moveLeadBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if body.LeadID == "" || body.ToStage == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "leadId and toStage are required")
		return
	}

	board := usecase.PartitionLeads(h.Store.Leads())

	controller := usecase.NewDragController()
	if !controller.DragStart(body.LeadID, board) {
		writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead não encontrado")
		return
	}

	cmd := controller.Drop(entity.Stage(body.ToStage))
	if cmd == nil {
		// Mesma coluna: gesto ignorado em silêncio, estado já zerado.
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "moved": false})
		return
	}

	lead, err := h.MoveUC.Execute(r.Context(), *cmd)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead não encontrado")
			return
		}
		if usecase.IsDomainError(err) {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_STAGE", err.Error())
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	middleware.RecordLeadMove(string(cmd.From), string(cmd.To))

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"moved":   true,
		"lead":    lead,
	})
}

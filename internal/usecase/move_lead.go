package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishStageChange(ctx context.Context, payload queue.StageChangePayload) error
}

// MoveLeadUseCase executa o comando emitido pelo DragController: valida a
// coluna alvo, persiste a troca de stage e publica o evento para o worker
// de notificação.
type MoveLeadUseCase struct {
	Store entity.LeadStore
	Queue QueueProducerInterface // opcional; sem RabbitMQ o move segue funcionando
}

func NewMoveLeadUseCase(store entity.LeadStore, producer QueueProducerInterface) *MoveLeadUseCase {
	return &MoveLeadUseCase{
		Store: store,
		Queue: producer,
	}
}

func (uc *MoveLeadUseCase) Execute(ctx context.Context, cmd MoveLeadCommand) (*entity.Lead, error) {
	if !entity.IsValidStage(string(cmd.To)) {
		return nil, &DomainError{
			Code:    "INVALID_STAGE",
			Message: "stage desconhecida: " + string(cmd.To),
		}
	}

	status := string(cmd.To)
	lead, err := uc.Store.UpdateLead(cmd.LeadID, entity.LeadPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	// Evento é best-effort: falha na fila não desfaz o move.
	if uc.Queue != nil {
		payload := queue.StageChangePayload{
			LeadID:     lead.ID,
			LeadName:   lead.Name,
			Company:    lead.Company,
			FromStage:  string(cmd.From),
			ToStage:    string(cmd.To),
			AssignedTo: lead.AssignedTo,
			MovedAt:    time.Now().Format(time.RFC3339),
		}
		if err := uc.Queue.PublishStageChange(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar mudança de stage do lead %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}

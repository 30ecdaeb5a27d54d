package usecase

import (
	"github.com/xavierca1/ligue-crm/internal/entity"
)

// MoveLeadCommand é o comando de troca de coluna emitido por um gesto de
// drag completo.
type MoveLeadCommand struct {
	LeadID string
	To     entity.Stage
	From   entity.Stage
}

// DragController rastreia qual lead está sendo arrastado e de qual coluna
// saiu. Máquina de estados minúscula: DragStart arma, Drop emite no máximo
// um comando e sempre desarma.
//
// Estado inicial: nada arrastado (draggedLeadID vazio). Um gesto
// interrompido deixa estado velho para trás; o próximo DragStart ou Drop
// limpa, então nada vaza entre gestos.
type DragController struct {
	draggedLeadID string
	sourceStage   entity.Stage
}

func NewDragController() *DragController {
	return &DragController{}
}

// DragStart localiza o lead no board e arma o controller. Lead inexistente
// é no-op defensivo: sem erro, sem estado armado.
func (c *DragController) DragStart(leadID string, board Board) bool {
	c.reset()

	lead, found := board.FindLead(leadID)
	if !found {
		return false
	}

	c.draggedLeadID = leadID
	c.sourceStage = lead.ResolvedStage()
	return true
}

// DragOver não muda estado; só diz se a coluna é um alvo de drop válido
// para o gesto em andamento.
func (c *DragController) DragOver(target entity.Stage) bool {
	return c.draggedLeadID != ""
}

// Drop encerra o gesto. Emite o comando só quando há gesto armado e a
// coluna alvo difere da origem; soltar na mesma coluna é ignorado em
// silêncio (reordenar dentro da coluna não existe). O estado é zerado em
// todos os caminhos, com ou sem comando.
func (c *DragController) Drop(target entity.Stage) *MoveLeadCommand {
	defer c.reset()

	if c.draggedLeadID == "" {
		return nil
	}
	if target == c.sourceStage {
		return nil
	}

	return &MoveLeadCommand{
		LeadID: c.draggedLeadID,
		To:     target,
		From:   c.sourceStage,
	}
}

// Dragging expõe o estado corrente para a camada de apresentação.
func (c *DragController) Dragging() (string, entity.Stage, bool) {
	return c.draggedLeadID, c.sourceStage, c.draggedLeadID != ""
}

func (c *DragController) reset() {
	c.draggedLeadID = ""
	c.sourceStage = ""
}

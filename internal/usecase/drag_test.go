package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

func testBoard() Board {
	return PartitionLeads([]entity.Lead{
		lead("l1", "Acme", "Negotiation"),
		lead("l2", "Beta", "Proposal"),
		lead("l3", "Gamma", ""),
	})
}

// TestDragSuccessPath - gesto completo emite exatamente um comando
func TestDragSuccessPath(t *testing.T) {
	c := NewDragController()

	ok := c.DragStart("l1", testBoard())
	assert.True(t, ok)

	_, source, active := c.Dragging()
	assert.True(t, active)
	assert.Equal(t, entity.StageNegotiation, source)

	cmd := c.Drop(entity.StageEvaluation)
	assert.NotNil(t, cmd)
	assert.Equal(t, "l1", cmd.LeadID)
	assert.Equal(t, entity.StageEvaluation, cmd.To)
	assert.Equal(t, entity.StageNegotiation, cmd.From)

	// Estado zerado depois do drop
	_, _, active = c.Dragging()
	assert.False(t, active)

	// Aplicando o comando, o próximo particionamento coloca l1 em Evaluation
	leads := []entity.Lead{
		lead("l1", "Acme", string(cmd.To)),
		lead("l2", "Beta", "Proposal"),
	}
	board := PartitionLeads(leads)
	assert.Len(t, board[entity.StageEvaluation], 1)
	assert.Equal(t, "l1", board[entity.StageEvaluation][0].ID)
	assert.Empty(t, board[entity.StageNegotiation])
}

// TestDropSameColumnIsNoOp - soltar na própria coluna não emite comando
func TestDropSameColumnIsNoOp(t *testing.T) {
	c := NewDragController()

	assert.True(t, c.DragStart("l2", testBoard()))

	cmd := c.Drop(entity.StageProposal)
	assert.Nil(t, cmd)

	// Mesmo sem comando, o estado é zerado
	_, _, active := c.Dragging()
	assert.False(t, active)
}

// TestDragStartUnknownLead - lead inexistente é no-op defensivo
func TestDragStartUnknownLead(t *testing.T) {
	c := NewDragController()

	ok := c.DragStart("nope", testBoard())
	assert.False(t, ok)

	_, _, active := c.Dragging()
	assert.False(t, active)

	assert.Nil(t, c.Drop(entity.StageResult))
}

func TestDropWithoutDragStart(t *testing.T) {
	c := NewDragController()
	assert.Nil(t, c.Drop(entity.StageProposal))
}

// TestDragStartClearsStaleGesture - gesto interrompido não vaza para o próximo
func TestDragStartClearsStaleGesture(t *testing.T) {
	c := NewDragController()
	board := testBoard()

	// Gesto interrompido: start sem drop
	assert.True(t, c.DragStart("l1", board))

	// Novo gesto em outro lead
	assert.True(t, c.DragStart("l3", board))

	cmd := c.Drop(entity.StageAppointment)
	assert.NotNil(t, cmd)
	assert.Equal(t, "l3", cmd.LeadID)
	assert.Equal(t, entity.StageNone, cmd.From)
}

func TestDragOverOnlyValidWhileDragging(t *testing.T) {
	c := NewDragController()

	assert.False(t, c.DragOver(entity.StageProposal))

	c.DragStart("l1", testBoard())
	assert.True(t, c.DragOver(entity.StageProposal))

	c.Drop(entity.StageProposal)
	assert.False(t, c.DragOver(entity.StageProposal))
}

// Lead sem stage reconhecida é arrastável a partir de "No Stage"
func TestDragStartResolvesUnknownStatus(t *testing.T) {
	board := PartitionLeads([]entity.Lead{lead("lx", "Lixo", "whatever")})

	c := NewDragController()
	assert.True(t, c.DragStart("lx", board))

	cmd := c.Drop(entity.StageProposal)
	assert.NotNil(t, cmd)
	assert.Equal(t, entity.StageNone, cmd.From)
}

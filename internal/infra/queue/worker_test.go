package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// MockStageNotifier
type MockStageNotifier struct {
	mock.Mock
}

func (m *MockStageNotifier) SendStageResult(to, salespersonName, leadName, company string) error {
	args := m.Called(to, salespersonName, leadName, company)
	return args.Error(0)
}

// MockSalespersonDirectory
type MockSalespersonDirectory struct {
	mock.Mock
}

func (m *MockSalespersonDirectory) FindSalesperson(id string) (*entity.Salesperson, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entity.Salesperson), args.Bool(1)
}

func resultPayload(assignedTo string) StageChangePayload {
	return StageChangePayload{
		LeadID:     "l1",
		LeadName:   "Acme Corp Lead",
		Company:    "Acme Corp",
		FromStage:  string(entity.StageEvaluation),
		ToStage:    string(entity.StageResult),
		AssignedTo: assignedTo,
	}
}

// Lead chegando em Result notifica o vendedor atribuído
func TestProcessStageChangeNotifiesOnResult(t *testing.T) {
	notifier := new(MockStageNotifier)
	directory := new(MockSalespersonDirectory)

	sp := &entity.Salesperson{
		ID:    "sp1",
		Name:  "Maria Souza",
		Email: "maria@liguemedicina.com",
	}
	directory.On("FindSalesperson", "sp1").Return(sp, true)
	notifier.On("SendStageResult", "maria@liguemedicina.com", "Maria Souza", "Acme Corp Lead", "Acme Corp").Return(nil)

	w := NewWorker(nil, notifier, directory)

	err := w.processStageChange(resultPayload("sp1"))

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
	directory.AssertExpectations(t)
}

// Qualquer coluna que não seja Result é ack silencioso, sem lookup nem email
func TestProcessStageChangeIgnoresOtherStages(t *testing.T) {
	notifier := new(MockStageNotifier)
	directory := new(MockSalespersonDirectory)

	w := NewWorker(nil, notifier, directory)

	payload := resultPayload("sp1")
	payload.FromStage = string(entity.StageProposal)
	payload.ToStage = string(entity.StageNegotiation)

	err := w.processStageChange(payload)

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendStageResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	directory.AssertNotCalled(t, "FindSalesperson", mock.Anything)
}

// Lead fechado sem vendedor atribuído não manda nada
func TestProcessStageChangeUnassignedLead(t *testing.T) {
	notifier := new(MockStageNotifier)
	directory := new(MockSalespersonDirectory)

	w := NewWorker(nil, notifier, directory)

	err := w.processStageChange(resultPayload(""))

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendStageResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	directory.AssertNotCalled(t, "FindSalesperson", mock.Anything)
}

// Vendedor deletado entre o publish e o consume: referência pendurada vira
// ack com warning, não erro (não há o que retentar)
func TestProcessStageChangeDanglingSalesperson(t *testing.T) {
	notifier := new(MockStageNotifier)
	directory := new(MockSalespersonDirectory)

	directory.On("FindSalesperson", "sp-deletado").Return(nil, false)

	w := NewWorker(nil, notifier, directory)

	err := w.processStageChange(resultPayload("sp-deletado"))

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendStageResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	directory.AssertExpectations(t)
}

// Falha de envio sobe para o caller: é o caminho que vira Nack sem requeue
func TestProcessStageChangeSendFailurePropagates(t *testing.T) {
	notifier := new(MockStageNotifier)
	directory := new(MockSalespersonDirectory)

	sp := &entity.Salesperson{ID: "sp1", Name: "Maria Souza", Email: "maria@liguemedicina.com"}
	directory.On("FindSalesperson", "sp1").Return(sp, true)
	notifier.On("SendStageResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp indisponível"))

	w := NewWorker(nil, notifier, directory)

	err := w.processStageChange(resultPayload("sp1"))

	assert.Error(t, err)
}

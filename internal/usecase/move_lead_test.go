package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

// MockLeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Leads() []entity.Lead {
	args := m.Called()
	return args.Get(0).([]entity.Lead)
}

func (m *MockLeadStore) AddLead(input entity.LeadInput) (*entity.Lead, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadStore) UpdateLead(id string, patch entity.LeadPatch) (*entity.Lead, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadStore) DeleteLead(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockStageProducer
type MockStageProducer struct {
	mock.Mock
}

func (m *MockStageProducer) PublishStageChange(ctx context.Context, payload queue.StageChangePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestMoveLeadPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	mockProducer := new(MockStageProducer)

	moved := &entity.Lead{
		ID:         "l1",
		Name:       "Acme Corp Lead",
		Company:    "Acme Corp",
		Status:     "Evaluation",
		AssignedTo: "sp1",
	}
	mockStore.On("UpdateLead", "l1", mock.Anything).Return(moved, nil)
	mockProducer.On("PublishStageChange", ctx, mock.Anything).Return(nil)

	uc := NewMoveLeadUseCase(mockStore, mockProducer)

	lead, err := uc.Execute(ctx, MoveLeadCommand{
		LeadID: "l1",
		To:     entity.StageEvaluation,
		From:   entity.StageNegotiation,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Evaluation", lead.Status)

	// O patch só mexe no status
	patch := mockStore.Calls[0].Arguments.Get(1).(entity.LeadPatch)
	assert.NotNil(t, patch.Status)
	assert.Equal(t, "Evaluation", *patch.Status)
	assert.Nil(t, patch.Name)

	payload := mockProducer.Calls[0].Arguments.Get(1).(queue.StageChangePayload)
	assert.Equal(t, "l1", payload.LeadID)
	assert.Equal(t, "Negotiation", payload.FromStage)
	assert.Equal(t, "Evaluation", payload.ToStage)
	assert.Equal(t, "sp1", payload.AssignedTo)

	mockStore.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestMoveLeadRejectsUnknownStage(t *testing.T) {
	mockStore := new(MockLeadStore)
	uc := NewMoveLeadUseCase(mockStore, nil)

	_, err := uc.Execute(context.Background(), MoveLeadCommand{
		LeadID: "l1",
		To:     entity.Stage("Fechado"),
		From:   entity.StageProposal,
	})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	mockStore.AssertNotCalled(t, "UpdateLead", mock.Anything, mock.Anything)
}

func TestMoveLeadNotFoundPassthrough(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("UpdateLead", "ghost", mock.Anything).Return(nil, entity.ErrLeadNotFound)

	uc := NewMoveLeadUseCase(mockStore, nil)

	_, err := uc.Execute(context.Background(), MoveLeadCommand{
		LeadID: "ghost",
		To:     entity.StageResult,
		From:   entity.StageProposal,
	})

	assert.True(t, errors.Is(err, entity.ErrLeadNotFound))
}

// Falha na fila não desfaz o move
func TestMoveLeadQueueFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockLeadStore)
	mockProducer := new(MockStageProducer)

	moved := &entity.Lead{ID: "l1", Name: "Acme", Status: "Result"}
	mockStore.On("UpdateLead", "l1", mock.Anything).Return(moved, nil)
	mockProducer.On("PublishStageChange", ctx, mock.Anything).Return(errors.New("rabbit down"))

	uc := NewMoveLeadUseCase(mockStore, mockProducer)

	lead, err := uc.Execute(ctx, MoveLeadCommand{
		LeadID: "l1",
		To:     entity.StageResult,
		From:   entity.StageEvaluation,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Result", lead.Status)
}

package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"personality-backend/application/commands"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"
	apperrors "personality-backend/pkg/errors"
)

type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) UpdateClassification(ctx context.Context, userID string, result personality.Classification) error {
	args := m.Called(ctx, userID, result)
	return args.Error(0)
}

func (m *mockProfileStore) GetClassification(ctx context.Context, userID string) (*personality.Classification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personality.Classification), args.Error(1)
}

type mockEventBus struct {
	mock.Mock
}

func (m *mockEventBus) PublishPersonalityScored(ctx context.Context, event ports.PersonalityScoredEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestScoreSubmissionHandler_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	profiles.On("UpdateClassification", ctx, "user-1", mock.Anything).Return(nil).Once()
	eventBus.On("PublishPersonalityScored", ctx, mock.Anything).Return(errors.New("event bus down")).Once()

	handler := NewScoreSubmissionHandler(profiles, eventBus, zap.NewNop())
	catalog := personality.NewCatalog([]personality.Question{
		{ID: "q1", Category: personality.AxisEI, Score: 1},
	})
	cmd := commands.ScoreSubmissionCommand{
		UserID:  "user-1",
		Answers: []personality.Answer{{QuestionID: "q1", Value: 1}},
	}

	err := handler.Handle(ctx, catalog, cmd)

	assert.NoError(t, err)
	profiles.AssertExpectations(t)
	eventBus.AssertExpectations(t)
}

func TestScoreSubmissionHandler_PersistFailure(t *testing.T) {
	ctx := context.Background()
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	profiles.On("UpdateClassification", ctx, "user-1", mock.Anything).Return(errors.New("throttled")).Once()

	handler := NewScoreSubmissionHandler(profiles, eventBus, zap.NewNop())
	cmd := commands.ScoreSubmissionCommand{
		UserID:  "user-1",
		Answers: []personality.Answer{},
	}

	err := handler.Handle(ctx, personality.NewCatalog(nil), cmd)

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypePersistence, apperrors.TypeOf(err))
	eventBus.AssertNotCalled(t, "PublishPersonalityScored", mock.Anything, mock.Anything)
}

func TestScoreSubmissionHandler_RejectsMalformedCommand(t *testing.T) {
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)
	handler := NewScoreSubmissionHandler(profiles, eventBus, zap.NewNop())

	err := handler.Handle(context.Background(), personality.NewCatalog(nil), commands.ScoreSubmissionCommand{})

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeMalformedEvent, apperrors.TypeOf(err))
	profiles.AssertNotCalled(t, "UpdateClassification", mock.Anything, mock.Anything, mock.Anything)
}

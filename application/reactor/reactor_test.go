package reactor

import (
	"context"
	"errors"
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"personality-backend/application/commands/handlers"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"
	apperrors "personality-backend/pkg/errors"
	"personality-backend/pkg/observability"
)

type mockQuestionCatalog struct {
	mock.Mock
}

func (m *mockQuestionCatalog) ScanAll(ctx context.Context) ([]personality.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]personality.Question), args.Error(1)
}

func (m *mockQuestionCatalog) Save(ctx context.Context, question personality.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

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

func newTestReactor(catalog *mockQuestionCatalog, profiles *mockProfileStore, eventBus *mockEventBus) *Reactor {
	logger := zap.NewNop()
	handler := handlers.NewScoreSubmissionHandler(profiles, eventBus, logger)
	metrics := observability.NewMetrics("PersonalityBackend/test", nil)
	return NewReactor(catalog, handler, metrics, logger)
}

func submissionRecord(eventName, userID string, answers ...awsevents.DynamoDBAttributeValue) awsevents.DynamoDBEventRecord {
	return awsevents.DynamoDBEventRecord{
		EventID:   "evt-" + userID,
		EventName: eventName,
		Change: awsevents.DynamoDBStreamRecord{
			NewImage: map[string]awsevents.DynamoDBAttributeValue{
				"UserID":  awsevents.NewStringAttribute(userID),
				"Answers": awsevents.NewListAttribute(answers),
			},
		},
	}
}

func answerEntry(questionID, value string) awsevents.DynamoDBAttributeValue {
	return awsevents.NewMapAttribute(map[string]awsevents.DynamoDBAttributeValue{
		"QuestionID": awsevents.NewStringAttribute(questionID),
		"Value":      awsevents.NewNumberAttribute(value),
	})
}

func TestHandleBatch_ScoresAndPersists(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockQuestionCatalog)
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	catalog.On("ScanAll", ctx).Return([]personality.Question{
		{ID: "q1", Category: personality.AxisEI, Score: 1},
	}, nil).Once()
	profiles.On("UpdateClassification", ctx, "user-1", mock.MatchedBy(func(c personality.Classification) bool {
		return c.PersonalityType == "ESTJ" && c.Status == personality.StatusComplete
	})).Return(nil).Once()
	eventBus.On("PublishPersonalityScored", ctx, mock.AnythingOfType("ports.PersonalityScoredEvent")).Return(nil).Once()

	r := newTestReactor(catalog, profiles, eventBus)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		submissionRecord("INSERT", "user-1", answerEntry("q1", "2")),
	}}

	err := r.HandleBatch(ctx, event)

	assert.NoError(t, err)
	catalog.AssertExpectations(t)
	profiles.AssertExpectations(t)
	eventBus.AssertExpectations(t)
}

func TestHandleBatch_CatalogLoadFailureIsBatchFatal(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockQuestionCatalog)
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	catalog.On("ScanAll", ctx).Return(nil, errors.New("scan throttled")).Once()

	r := newTestReactor(catalog, profiles, eventBus)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		submissionRecord("INSERT", "user-1", answerEntry("q1", "1")),
	}}

	err := r.HandleBatch(ctx, event)

	assert.Error(t, err)
	assert.True(t, apperrors.IsBatchFatal(err))
	profiles.AssertNotCalled(t, "UpdateClassification", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleBatch_PersistFailureDoesNotAbortBatch(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockQuestionCatalog)
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	catalog.On("ScanAll", ctx).Return([]personality.Question{
		{ID: "q1", Category: personality.AxisEI, Score: 1},
	}, nil).Once()
	profiles.On("UpdateClassification", ctx, "user-1", mock.Anything).Return(nil).Once()
	profiles.On("UpdateClassification", ctx, "user-2", mock.Anything).Return(errors.New("conditional check failed")).Once()
	profiles.On("UpdateClassification", ctx, "user-3", mock.Anything).Return(nil).Once()
	eventBus.On("PublishPersonalityScored", ctx, mock.Anything).Return(nil).Twice()

	r := newTestReactor(catalog, profiles, eventBus)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		submissionRecord("INSERT", "user-1", answerEntry("q1", "1")),
		submissionRecord("MODIFY", "user-2", answerEntry("q1", "1")),
		submissionRecord("INSERT", "user-3", answerEntry("q1", "-1")),
	}}

	err := r.HandleBatch(ctx, event)

	assert.NoError(t, err)
	profiles.AssertExpectations(t)
	eventBus.AssertExpectations(t)
}

func TestHandleBatch_FiltersIrrelevantEvents(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockQuestionCatalog)
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	catalog.On("ScanAll", ctx).Return([]personality.Question{}, nil).Once()

	r := newTestReactor(catalog, profiles, eventBus)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		submissionRecord("REMOVE", "user-1", answerEntry("q1", "1")),
	}}

	err := r.HandleBatch(ctx, event)

	assert.NoError(t, err)
	profiles.AssertNotCalled(t, "UpdateClassification", mock.Anything, mock.Anything, mock.Anything)
	eventBus.AssertNotCalled(t, "PublishPersonalityScored", mock.Anything, mock.Anything)
}

func TestHandleBatch_SkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockQuestionCatalog)
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	catalog.On("ScanAll", ctx).Return([]personality.Question{
		{ID: "q1", Category: personality.AxisEI, Score: 1},
	}, nil).Once()
	profiles.On("UpdateClassification", ctx, "user-2", mock.Anything).Return(nil).Once()
	eventBus.On("PublishPersonalityScored", ctx, mock.Anything).Return(nil).Once()

	noImage := awsevents.DynamoDBEventRecord{
		EventID:   "evt-no-image",
		EventName: "MODIFY",
		Change:    awsevents.DynamoDBStreamRecord{},
	}
	noUser := awsevents.DynamoDBEventRecord{
		EventID:   "evt-no-user",
		EventName: "INSERT",
		Change: awsevents.DynamoDBStreamRecord{
			NewImage: map[string]awsevents.DynamoDBAttributeValue{
				"Answers": awsevents.NewListAttribute([]awsevents.DynamoDBAttributeValue{answerEntry("q1", "1")}),
			},
		},
	}

	r := newTestReactor(catalog, profiles, eventBus)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		noImage,
		noUser,
		submissionRecord("INSERT", "user-2", answerEntry("q1", "1")),
	}}

	err := r.HandleBatch(ctx, event)

	assert.NoError(t, err)
	profiles.AssertExpectations(t)
}

func TestHandleBatch_RedeliveryConverges(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockQuestionCatalog)
	profiles := new(mockProfileStore)
	eventBus := new(mockEventBus)

	questions := []personality.Question{{ID: "q1", Category: personality.AxisEI, Score: 1}}
	catalog.On("ScanAll", ctx).Return(questions, nil).Twice()

	var written []personality.Classification
	profiles.On("UpdateClassification", ctx, "user-1", mock.Anything).Run(func(args mock.Arguments) {
		written = append(written, args.Get(2).(personality.Classification))
	}).Return(nil).Twice()
	eventBus.On("PublishPersonalityScored", ctx, mock.Anything).Return(nil).Twice()

	r := newTestReactor(catalog, profiles, eventBus)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		submissionRecord("INSERT", "user-1", answerEntry("q1", "3")),
	}}

	assert.NoError(t, r.HandleBatch(ctx, event))
	assert.NoError(t, r.HandleBatch(ctx, event))

	assert.Len(t, written, 2)
	assert.Equal(t, written[0], written[1])
}

package handlers

import (
	"context"
	"time"

	"personality-backend/application/commands"
	"personality-backend/application/ports"
	"personality-backend/domain/personality"
	"personality-backend/pkg/errors"

	"go.uber.org/zap"
)

// ScoreSubmissionHandler scores one user's answer set against a catalog
// snapshot and writes the classification back onto the user's profile.
// The write is a full overwrite of the classification fields, so
// redelivery of the same answer set converges on the same profile state.
type ScoreSubmissionHandler struct {
	profiles ports.ProfileStore
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewScoreSubmissionHandler creates a new score submission handler
func NewScoreSubmissionHandler(
	profiles ports.ProfileStore,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *ScoreSubmissionHandler {
	return &ScoreSubmissionHandler{
		profiles: profiles,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle scores the command's answers against the given catalog snapshot.
// The snapshot is loaded once per batch by the caller so every record in
// the batch is scored against the same catalog state.
func (h *ScoreSubmissionHandler) Handle(
	ctx context.Context,
	catalog personality.Catalog,
	cmd commands.ScoreSubmissionCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result := personality.Score(catalog, cmd.Answers)

	if err := h.profiles.UpdateClassification(ctx, cmd.UserID, result); err != nil {
		return errors.NewPersistenceError(err)
	}

	h.logger.Info("Persisted classification",
		zap.String("userID", cmd.UserID),
		zap.String("personalityType", result.PersonalityType),
		zap.Int("answerCount", len(cmd.Answers)),
	)

	// The profile write already succeeded; a publish failure must not
	// fail the record.
	event := ports.PersonalityScoredEvent{
		UserID:          cmd.UserID,
		PersonalityType: result.PersonalityType,
		ScoredAt:        time.Now().UTC(),
	}
	if err := h.eventBus.PublishPersonalityScored(ctx, event); err != nil {
		h.logger.Warn("Failed to publish scored event",
			zap.String("userID", cmd.UserID),
			zap.Error(err),
		)
	}

	return nil
}

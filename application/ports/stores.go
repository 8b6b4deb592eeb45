package ports

import (
	"context"
	"time"

	"personality-backend/domain/personality"
)

// QuestionCatalog defines the interface for reading and administering the
// scoring-question catalog.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type QuestionCatalog interface {
	// ScanAll retrieves the full catalog. The reactor calls this once per
	// batch so every record in the batch is scored against one snapshot.
	ScanAll(ctx context.Context) ([]personality.Question, error)

	// Save persists a catalog question (create or update)
	Save(ctx context.Context, question personality.Question) error
}

// ProfileStore defines the interface for the user profile record that
// receives the computed classification.
type ProfileStore interface {
	// UpdateClassification overwrites the classification fields of the
	// user's profile, leaving unrelated profile attributes untouched.
	UpdateClassification(ctx context.Context, userID string, result personality.Classification) error

	// GetClassification retrieves the user's current classification
	GetClassification(ctx context.Context, userID string) (*personality.Classification, error)
}

// SubmissionStore defines the interface for raw answer-set persistence.
// Writes to this store feed the change stream that triggers scoring.
type SubmissionStore interface {
	// Save persists a submission (full overwrite per user)
	Save(ctx context.Context, submission personality.Submission) error
}

// PersonalityScoredEvent announces that a user's classification was
// computed and persisted.
type PersonalityScoredEvent struct {
	UserID          string    `json:"user_id"`
	PersonalityType string    `json:"personality_type"`
	ScoredAt        time.Time `json:"scored_at"`
}

// EventBus defines the interface for publishing integration events.
type EventBus interface {
	// PublishPersonalityScored emits a scored event for downstream
	// consumers (notifications, analytics).
	PublishPersonalityScored(ctx context.Context, event PersonalityScoredEvent) error
}

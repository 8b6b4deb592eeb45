package personality

import "time"

// Submission is one user's raw answer set as written to storage. Scoring
// is not performed at submit time; the storage table's change stream
// triggers it asynchronously.
type Submission struct {
	ID          string
	UserID      string
	Answers     []Answer
	SubmittedAt time.Time
}

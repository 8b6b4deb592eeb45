package personality

// Answer is one user response to one catalog question. Both the sign and
// the magnitude of Value count: it is multiplied against the question's
// polarity weight.
type Answer struct {
	QuestionID string
	Value      float64
}

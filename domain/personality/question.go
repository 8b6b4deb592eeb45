package personality

// Question is one item of the scoring catalog. Score is the polarity
// weight (+1 or -1) telling which pole of the axis agreement reinforces.
type Question struct {
	ID       string
	Category Axis
	Score    int
}

// Catalog indexes questions by ID for answer lookups during scoring.
type Catalog map[string]Question

// NewCatalog builds a catalog from a question list. Later duplicates of
// the same question ID win.
func NewCatalog(questions []Question) Catalog {
	catalog := make(Catalog, len(questions))
	for _, q := range questions {
		catalog[q.ID] = q
	}
	return catalog
}

// Get looks up a question by ID.
func (c Catalog) Get(id string) (Question, bool) {
	q, ok := c[id]
	return q, ok
}

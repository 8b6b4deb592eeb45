package personality

// StatusComplete marks a profile whose classification has been computed
// and written back.
const StatusComplete = "complete"

// Classification is the scored outcome of one answer set: the four-letter
// type code plus a per-axis confidence ratio in [0,1] toward the positive
// pole. A ratio of 0.5 means the axis carried no signal either way.
type Classification struct {
	PersonalityType string
	Ratios          map[Axis]float64
	Status          string
}

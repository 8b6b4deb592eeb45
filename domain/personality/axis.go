package personality

// Axis identifies one of the four MBTI dichotomies.
type Axis string

const (
	AxisEI Axis = "EI"
	AxisSN Axis = "SN"
	AxisTF Axis = "TF"
	AxisJP Axis = "JP"
)

// Axes lists the axes in the order their letters appear in a type code.
var Axes = [4]Axis{AxisEI, AxisSN, AxisTF, AxisJP}

// IsValid reports whether the axis is one of the four known dichotomies.
func (a Axis) IsValid() bool {
	switch a {
	case AxisEI, AxisSN, AxisTF, AxisJP:
		return true
	}
	return false
}

// PositivePole returns the letter a positive axis total resolves to.
func (a Axis) PositivePole() string {
	switch a {
	case AxisEI:
		return "E"
	case AxisSN:
		return "S"
	case AxisTF:
		return "T"
	case AxisJP:
		return "J"
	}
	return ""
}

// NegativePole returns the letter a negative axis total resolves to.
func (a Axis) NegativePole() string {
	switch a {
	case AxisEI:
		return "I"
	case AxisSN:
		return "N"
	case AxisTF:
		return "F"
	case AxisJP:
		return "P"
	}
	return ""
}

// Letter resolves an accumulated total to the axis letter.
// A zero total always resolves to the positive pole.
func (a Axis) Letter(total float64) string {
	if total < 0 {
		return a.NegativePole()
	}
	return a.PositivePole()
}

package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisLetter_TieBreaksToPositivePole(t *testing.T) {
	tests := []struct {
		axis     Axis
		positive string
		negative string
	}{
		{AxisEI, "E", "I"},
		{AxisSN, "S", "N"},
		{AxisTF, "T", "F"},
		{AxisJP, "J", "P"},
	}

	for _, tt := range tests {
		t.Run(string(tt.axis), func(t *testing.T) {
			assert.Equal(t, tt.positive, tt.axis.Letter(1))
			assert.Equal(t, tt.positive, tt.axis.Letter(0))
			assert.Equal(t, tt.negative, tt.axis.Letter(-1))
		})
	}
}

func TestAxisIsValid(t *testing.T) {
	for _, axis := range Axes {
		assert.True(t, axis.IsValid())
	}
	assert.False(t, Axis("XY").IsValid())
	assert.False(t, Axis("").IsValid())
}

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventCodeWidth(t *testing.T) {
	tests := []struct {
		name           string
		numProductions int
		want           int
	}{
		{"zero productions", 0, 0},
		{"one production", 1, 0},
		{"two productions", 2, 1},
		{"three productions", 3, 2},
		{"four productions", 4, 2},
		{"five productions", 5, 3},
		{"eighteen productions", 18, 5},
		{"sixty four productions", 64, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EventCodeWidth(tt.numProductions))
		})
	}
}

func TestStateWidth(t *testing.T) {
	s := State{ID: 1, Label: "test", NumProductions: 18}
	assert.Equal(t, 5, s.Width())
}

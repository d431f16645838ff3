package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxIdleConns(t *testing.T) {
	tests := []struct {
		name    string
		maxOpen int
		want    int
	}{
		{name: "DefaultBudget", maxOpen: 25, want: 5},
		{name: "LargeBudget", maxOpen: 100, want: 20},
		{name: "TinyBudgetKeepsFloor", maxOpen: 4, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maxIdleConns(tt.maxOpen))
		})
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		count   int
		want    int
	}{
		{"zero workers", 0, 10, 1},
		{"negative workers", -3, 10, 1},
		{"within count", 4, 10, 4},
		{"more workers than items", 8, 3, 3},
		{"empty run", 5, 0, 1},
		{"empty run with no workers", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampWorkers(tt.workers, tt.count))
		})
	}
}

func TestSplitCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		n     int
		want  []int
	}{
		{"even", 9, 3, []int{3, 3, 3}},
		{"remainder goes first", 10, 4, []int{3, 3, 2, 2}},
		{"single worker", 7, 1, []int{7}},
		{"empty", 0, 2, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCount(tt.count, tt.n)
			assert.Equal(t, tt.want, got)

			total := 0
			for _, c := range got {
				total += c
			}

			assert.Equal(t, tt.count, total)
		})
	}
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want []any
	}{
		{
			name: "numeric order, not lexicographic",
			in:   map[string]any{"10": "x", "2": "y"},
			want: []any{"y", "x"},
		},
		{
			name: "already ordered",
			in:   map[string]any{"0": "a", "1": "b", "2": "c"},
			want: []any{"a", "b", "c"},
		},
		{
			name: "sparse indexes",
			in:   map[string]any{"3": 1, "100": 2, "7": 3},
			want: []any{1, 3, 2},
		},
		{
			name: "empty",
			in:   map[string]any{},
			want: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sequence(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequence_NonNumericKey(t *testing.T) {
	_, err := Sequence(map[string]any{"0": "a", "first": "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"first"`)
}

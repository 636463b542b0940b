package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name            string
		fields          Fields
		wantAssignments string
		wantArgs        []any
	}{
		{
			name:            "multiple assignments",
			fields:          Fields{F("firstName", "Jo"), F("age", 5)},
			wantAssignments: "first_name=$1, age=$2",
			wantArgs:        []any{"Jo", 5},
		},
		{
			name:            "single assignment",
			fields:          Fields{F("status", "active")},
			wantAssignments: "status=$1",
			wantArgs:        []any{"active"},
		},
		{
			name:            "empty",
			fields:          nil,
			wantAssignments: "",
			wantArgs:        []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause := b.Set(tt.fields)
			assert.Equal(t, tt.wantAssignments, clause.Assignments)
			assert.Equal(t, tt.wantArgs, clause.Args)
		})
	}
}

func TestSet_MySQLPlaceholders(t *testing.T) {
	b := NewBuilder(WithDialect("mysql"))

	clause := b.Set(Fields{F("firstName", "Jo"), F("age", 5)})
	assert.Equal(t, "first_name=?, age=?", clause.Assignments)
	assert.Equal(t, []any{"Jo", 5}, clause.Args)
}

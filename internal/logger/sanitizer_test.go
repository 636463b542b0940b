package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskArgs_SensitiveClause(t *testing.T) {
	s := NewSanitizer(nil)

	args := []any{"alice", "hunter2-long-secret"}
	masked := s.MaskArgs("name = $1\nAND\npassword = $2", args)

	assert.Equal(t, []any{"***REDACTED***", "***REDACTED***"}, masked)
	// original untouched
	assert.Equal(t, "alice", args[0])
}

func TestMaskArgs_PlainClause(t *testing.T) {
	s := NewSanitizer(nil)

	args := []any{"alice", 30}
	masked := s.MaskArgs("name = $1\nAND\nage < $2", args)

	assert.Equal(t, args, masked)
}

func TestMaskArgs_CustomFields(t *testing.T) {
	s := NewSanitizer([]string{"pin_code"})

	masked := s.MaskArgs("pin_code = $1", []any{"0000"})
	assert.Equal(t, []any{"***REDACTED***"}, masked)

	// default fields no longer apply
	masked = s.MaskArgs("password = $1", []any{"x"})
	assert.Equal(t, []any{"x"}, masked)
}

func TestMaskArgs_Empty(t *testing.T) {
	s := NewSanitizer(nil)
	assert.Empty(t, s.MaskArgs("password = $1", nil))
}

func TestFormatArgs(t *testing.T) {
	s := NewSanitizer(nil)

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"empty", nil, "[]"},
		{"scalars", []any{1, "a"}, "[1, a]"},
		{"nil value", []any{nil}, "[NULL]"},
		{"slice value", []any{[]string{"a", "b"}}, "[[a b]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.FormatArgs(tt.args))
		})
	}
}

func TestFormatArgs_TruncatesLongValues(t *testing.T) {
	s := NewSanitizer(nil)

	long := strings.Repeat("x", 200)
	got := s.FormatArgs([]any{long})

	assert.Contains(t, got, "...")
	assert.Less(t, len(got), 120)
}

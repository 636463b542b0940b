package logger

import (
	"fmt"
	"regexp"
	"strings"
)

// Sanitizer masks argument values before fragments are logged, so secrets
// bound to sensitive columns never reach the log stream. Detection is based
// on column names appearing in the generated clause text.
type Sanitizer struct {
	sensitiveFields []string
	maskValue       string
	patterns        []*regexp.Regexp
}

// NewSanitizer creates a sanitizer for the given sensitive column names.
// If no names are provided, a default set of common sensitive columns is used.
func NewSanitizer(sensitiveFields []string) *Sanitizer {
	if len(sensitiveFields) == 0 {
		sensitiveFields = []string{
			"password", "passwd", "pwd",
			"token", "api_key", "apikey", "api_token",
			"secret", "auth", "authorization",
			"credit_card", "card_number", "cvv", "cvc",
			"ssn", "social_security",
			"private_key", "priv_key",
		}
	}

	patterns := make([]*regexp.Regexp, 0, len(sensitiveFields))
	for _, field := range sensitiveFields {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(field)+`\b`))
	}

	return &Sanitizer{
		sensitiveFields: sensitiveFields,
		maskValue:       "***REDACTED***",
		patterns:        patterns,
	}
}

// MaskArgs returns a copy of args with every value replaced by the mask when
// the clause mentions a sensitive column. The original slice is not modified.
// Masking is clause-wide: the builders do not track which placeholder belongs
// to which column, so one sensitive column masks all values in the fragment.
func (s *Sanitizer) MaskArgs(clause string, args []any) []any {
	if len(args) == 0 || !s.containsSensitive(clause) {
		return args
	}

	masked := make([]any, len(args))
	for i := range args {
		masked[i] = s.maskValue
	}
	return masked
}

func (s *Sanitizer) containsSensitive(clause string) bool {
	lower := strings.ToLower(clause)
	for _, pattern := range s.patterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// FormatArgs converts argument values to a safe string representation for
// logging. Sensitive values should be masked with MaskArgs first.
func (s *Sanitizer) FormatArgs(args []any) string {
	if len(args) == 0 {
		return "[]"
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = s.formatValue(a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatValue formats a single argument value, truncating very long strings
// to keep log lines bounded.
func (s *Sanitizer) formatValue(v any) string {
	if v == nil {
		return "NULL"
	}

	str := fmt.Sprintf("%v", v)

	const maxLen = 100
	if len(str) > maxLen {
		return str[:maxLen] + "..."
	}
	return str
}

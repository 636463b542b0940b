// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package core implements the fragment builders behind sqlfrag: WHERE, INSERT,
// and SET clause generation from ordered field lists, plus the comparison
// operator table and supporting helpers.
package core

import (
	"context"

	"github.com/coregx/sqlfrag/internal/dialects"
	"github.com/coregx/sqlfrag/internal/logger"
	"github.com/coregx/sqlfrag/internal/tracer"
)

// Builder generates SQL fragments for one dialect. It is immutable after
// construction and safe for concurrent use; every method is a pure function
// of its inputs.
type Builder struct {
	dialect   dialects.Dialect
	log       logger.Logger
	sanitizer *logger.Sanitizer
	tracer    tracer.Tracer
	ctx       context.Context
}

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithDialect selects the placeholder dialect by driver name
// (postgres, mysql, sqlite). The default is postgres ($1, $2, ...).
func WithDialect(name string) Option {
	return func(b *Builder) {
		b.dialect = dialects.GetDialect(name)
	}
}

// WithLogger sets the logger used to debug-log generated fragments.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// WithSensitiveFields overrides the column names whose argument values are
// masked before fragments are logged.
func WithSensitiveFields(fields []string) Option {
	return func(b *Builder) {
		b.sanitizer = logger.NewSanitizer(fields)
	}
}

// WithTracer sets the tracer used to record fragment-build spans.
func WithTracer(t tracer.Tracer) Option {
	return func(b *Builder) {
		b.tracer = t
	}
}

// NewBuilder creates a Builder. Without options it renders PostgreSQL
// placeholders and neither logs nor traces.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		dialect:   dialects.GetDialect("postgres"),
		log:       &logger.NoopLogger{},
		sanitizer: logger.NewSanitizer(nil),
		tracer:    &tracer.NoopTracer{},
		ctx:       context.Background(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithContext returns a copy of the Builder whose tracing spans start from ctx.
func (b *Builder) WithContext(ctx context.Context) *Builder {
	nb := *b
	nb.ctx = ctx
	return &nb
}

// logFragment debug-logs a generated fragment with sensitive args masked.
func (b *Builder) logFragment(op, clause string, args []any) {
	b.log.Debug("built fragment",
		"op", op,
		"clause", clause,
		"args", b.sanitizer.FormatArgs(b.sanitizer.MaskArgs(clause, args)),
	)
}

// defaultBuilder backs the package-level convenience functions.
var defaultBuilder = NewBuilder()

// Where builds a WHERE fragment using the default builder.
func Where(fields Fields) (WhereClause, error) {
	return defaultBuilder.Where(fields)
}

// WhereOffset builds a WHERE fragment with a placeholder offset using the
// default builder.
func WhereOffset(fields Fields, offset int) (WhereClause, error) {
	return defaultBuilder.WhereOffset(fields, offset)
}

// Insert builds an INSERT fragment using the default builder.
func Insert(fields Fields) InsertClause {
	return defaultBuilder.Insert(fields)
}

// Set builds a SET fragment using the default builder.
func Set(fields Fields) SetClause {
	return defaultBuilder.Set(fields)
}

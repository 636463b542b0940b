// Package sqlfrag builds parameterized SQL fragments from ordered key/value
// field lists: WHERE conditions with a suffix operator syntax ("age:gte"),
// INSERT column/placeholder lists, and UPDATE SET assignments. It also ships
// camelCase to snake_case conversion helpers to bridge application naming and
// column naming. It is not a query builder, ORM, or driver: callers assemble
// the returned fragments into their own statements and pass the argument
// slices to their own database client.
package sqlfrag

import (
	"github.com/coregx/sqlfrag/internal/core"
	"github.com/coregx/sqlfrag/internal/logger"
	"github.com/coregx/sqlfrag/internal/naming"
	"github.com/coregx/sqlfrag/internal/tracer"
)

type (
	// Builder generates SQL fragments for one dialect; safe for concurrent use.
	Builder = core.Builder
	// Option is a functional option for configuring a Builder.
	Option = core.Option
	// Field is a single column/value pair.
	Field = core.Field
	// Fields is an ordered list of column/value pairs.
	Fields = core.Fields
	// WhereClause is a WHERE fragment: condition text plus bound arguments.
	WhereClause = core.WhereClause
	// InsertClause is the column list, placeholder list, and values of an INSERT.
	InsertClause = core.InsertClause
	// SetClause is the assignment list and values of an UPDATE SET.
	SetClause = core.SetClause
	// InvalidOperatorError reports an operator token outside the operator table.
	InvalidOperatorError = core.InvalidOperatorError

	// Logger is the structured logging interface accepted by WithLogger.
	Logger = logger.Logger
	// Tracer is the span-producing interface accepted by WithTracer.
	Tracer = tracer.Tracer
)

// ErrInvalidOperator matches every InvalidOperatorError via errors.Is.
var ErrInvalidOperator = core.ErrInvalidOperator

// Re-export core functions.
var (
	New = core.NewBuilder
	F   = core.F
	Map = core.Map

	// Fragment builders on the default (postgres) builder
	Where       = core.Where
	WhereOffset = core.WhereOffset
	Insert      = core.Insert
	Set         = core.Set

	// Builder options
	WithDialect         = core.WithDialect
	WithLogger          = core.WithLogger
	WithSensitiveFields = core.WithSensitiveFields
	WithTracer          = core.WithTracer

	// Logger and tracer adapters
	NewSlogLogger = logger.NewSlogAdapter
	NewOtelTracer = tracer.NewOtelTracer

	// Array-column normalization and the raw SQL passthrough
	Sequence = core.Sequence
	SQL      = core.SQL

	// Case conversion helpers
	CamelToSnake     = naming.CamelToSnake
	SnakeToCamel     = naming.SnakeToCamel
	CamelToSnakeKeys = naming.CamelToSnakeKeys
	SnakeToCamelKeys = naming.SnakeToCamelKeys
)

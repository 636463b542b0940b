// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"strings"

	"github.com/coregx/sqlfrag/internal/naming"
	"github.com/coregx/sqlfrag/internal/tracer"
)

// SetClause is the SET portion of an UPDATE statement: comma-joined
// column=placeholder assignments and the values in assignment order.
//
//	UPDATE users SET <Assignments> ...  -- exec with Args
type SetClause struct {
	Assignments string
	Args        []any
}

// Set builds a SET fragment. Keys are converted to snake_case; placeholders
// number from 1 in field order.
func (b *Builder) Set(fields Fields) SetClause {
	_, span := b.tracer.StartSpan(b.ctx, "sqlfrag.set")
	defer span.End()

	assignments := make([]string, len(fields))
	args := make([]any, len(fields))

	for i, f := range fields {
		assignments[i] = naming.CamelToSnake(f.Key) + "=" + b.dialect.Placeholder(i+1)
		args[i] = f.Value
	}

	clause := SetClause{
		Assignments: strings.Join(assignments, ", "),
		Args:        args,
	}

	tracer.AddFragmentAttributes(span, &tracer.FragmentMetadata{
		Op:       "set",
		Clause:   clause.Assignments,
		ArgCount: len(args),
	})
	b.logFragment("set", clause.Assignments, args)

	return clause
}

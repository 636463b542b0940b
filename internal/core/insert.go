// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"strings"

	"github.com/coregx/sqlfrag/internal/naming"
	"github.com/coregx/sqlfrag/internal/tracer"
)

// InsertClause is the reusable middle of an INSERT statement: the column
// list, the matching placeholder list, and the values in column order.
//
//	INSERT INTO users (<Columns>) VALUES (<Placeholders>)  -- exec with Args
type InsertClause struct {
	Columns      string
	Placeholders string
	Args         []any
}

// Insert builds an INSERT fragment from plain column keys. Keys are converted
// to snake_case; no operator parsing happens here. Field order is column
// order.
func (b *Builder) Insert(fields Fields) InsertClause {
	_, span := b.tracer.StartSpan(b.ctx, "sqlfrag.insert")
	defer span.End()

	cols := make([]string, len(fields))
	placeholders := make([]string, len(fields))
	args := make([]any, len(fields))

	for i, f := range fields {
		cols[i] = naming.CamelToSnake(f.Key)
		placeholders[i] = b.dialect.Placeholder(i + 1)
		args[i] = f.Value
	}

	clause := InsertClause{
		Columns:      strings.Join(cols, ", "),
		Placeholders: strings.Join(placeholders, ", "),
		Args:         args,
	}

	tracer.AddFragmentAttributes(span, &tracer.FragmentMetadata{
		Op:       "insert",
		Clause:   clause.Columns,
		ArgCount: len(args),
	})
	b.logFragment("insert", clause.Columns, args)

	return clause
}

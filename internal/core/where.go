// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"github.com/coregx/sqlfrag/internal/naming"
	"github.com/coregx/sqlfrag/internal/tracer"
)

// WhereClause is a WHERE fragment: condition text without the WHERE keyword,
// plus the argument values bound to its placeholders. Callers prefix WHERE
// themselves and pass Args to their own execution call in the order emitted.
type WhereClause struct {
	Clause string
	Args   []any
}

// Where builds a WHERE fragment with placeholder numbering starting at 1.
//
// Each field key selects a column and, after an optional colon, a comparison
// operator token ("age:gte"); a bare key means equality. Column names are
// converted to snake_case. Conditions are joined with "\nAND\n".
//
//	Where(Fields{F("age:gte", 18), F("deletedAt:isNull", nil)})
//	// "age >= $1\nAND\ndeleted_at IS NULL", args [18]
func (b *Builder) Where(fields Fields) (WhereClause, error) {
	return b.WhereOffset(fields, 0)
}

// WhereOffset builds a WHERE fragment whose placeholder numbering starts at
// offset+1, so several fragments can share one argument slice without
// colliding placeholder numbers.
//
// IS NULL and IS NOT NULL consume no argument. IN and NOT IN treat the value
// as a comma-separated string: one placeholder is reserved per element, while
// Args gains a single entry holding the whole element slice, for drivers that
// expand slice arguments into the reserved placeholders. An operator token
// outside the table returns an error wrapping ErrInvalidOperator; no partial
// fragment is returned. An empty field list yields an empty clause and no
// args.
func (b *Builder) WhereOffset(fields Fields, offset int) (WhereClause, error) {
	_, span := b.tracer.StartSpan(b.ctx, "sqlfrag.where")
	defer span.End()

	conds := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	n := offset

	for _, f := range fields {
		field, token := splitOperator(f.Key)
		op, ok := operators[token]
		if !ok {
			err := &InvalidOperatorError{Token: token}
			tracer.AddFragmentAttributes(span, &tracer.FragmentMetadata{Op: "where", Error: err})
			return WhereClause{}, err
		}

		col := naming.CamelToSnake(field)

		switch op {
		case opIsNull, opIsNotNull:
			conds = append(conds, col+" "+op)

		case opIn, opNotIn:
			elems := strings.Split(fmt.Sprint(f.Value), ",")
			placeholders := make([]string, len(elems))
			for i := range elems {
				n++
				placeholders[i] = b.dialect.Placeholder(n)
			}
			conds = append(conds, col+" "+op+" ("+strings.Join(placeholders, ", ")+")")
			// One arg entry for the whole list; the reserved placeholders are
			// filled by drivers that expand slice arguments.
			args = append(args, elems)

		default:
			n++
			conds = append(conds, col+" "+op+" "+b.dialect.Placeholder(n))
			args = append(args, f.Value)
		}
	}

	clause := strings.Join(conds, "\nAND\n")
	tracer.AddFragmentAttributes(span, &tracer.FragmentMetadata{
		Op:       "where",
		Clause:   clause,
		ArgCount: len(args),
	})
	b.logFragment("where", clause, args)

	return WhereClause{Clause: clause, Args: args}, nil
}

// splitOperator splits a key on the first colon into column and operator
// token. A key without a colon selects equality.
func splitOperator(key string) (field, token string) {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, "eq"
}

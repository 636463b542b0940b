// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

// Operators that take no argument or an expanded list get their own branch in
// the WHERE builder.
const (
	opIsNull    = "IS NULL"
	opIsNotNull = "IS NOT NULL"
	opIn        = "IN"
	opNotIn     = "NOT IN"
)

// operators maps each key-suffix token to its SQL operator text. The table is
// closed: any token outside it fails the build with InvalidOperatorError.
var operators = map[string]string{
	"eq":        "=",
	"neq":       "<>",
	"lt":        "<",
	"lte":       "<=",
	"gt":        ">",
	"gte":       ">=",
	"like":      "LIKE",
	"notLike":   "NOT LIKE",
	"ilike":     "ILIKE",
	"notIlike":  "NOT ILIKE",
	"in":        opIn,
	"notIn":     opNotIn,
	"isNull":    opIsNull,
	"isNotNull": opIsNotNull,
}

// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import "sort"

// Field is a single column/value pair. The key may carry an operator suffix
// ("age:gte") when used in a WHERE fragment.
type Field struct {
	Key   string
	Value any
}

// F constructs a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Fields is an ordered list of column/value pairs. Order is significant: it
// determines both the generated SQL text and the argument order.
type Fields []Field

// Map converts a plain map into Fields. Keys are sorted so the generated SQL
// is deterministic regardless of map iteration order.
func Map(m map[string]any) Fields {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(Fields, 0, len(m))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: m[k]})
	}
	return fields
}

// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"sort"
	"strconv"
)

// Sequence converts an indexed map, the shape some drivers decode array
// columns into, to a slice ordered by the numeric value of the keys. Keys
// compare numerically, so "2" precedes "10". A key that does not parse as an
// integer is an error; there is no meaningful position for it.
func Sequence(m map[string]any) ([]any, error) {
	indexes := make([]int, 0, len(m))
	byIndex := make(map[int]any, len(m))

	for k, v := range m {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, WrapError(err, "sequence: non-numeric index "+strconv.Quote(k))
		}
		indexes = append(indexes, i)
		byIndex[i] = v
	}

	sort.Ints(indexes)

	out := make([]any, 0, len(m))
	for _, i := range indexes {
		out = append(out, byIndex[i])
	}
	return out, nil
}

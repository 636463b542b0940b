// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"
)

// SQL concatenates literal segments and interpolated values into a raw string
// with no escaping or transformation. It exists so editor and linter tooling
// can be pointed at inline SQL literals; it is not an injection barrier and
// must never be used as one. Interpolate identifiers you control, never user
// input.
func SQL(parts ...any) string {
	var b strings.Builder
	for _, p := range parts {
		if s, ok := p.(string); ok {
			b.WriteString(s)
			continue
		}
		fmt.Fprint(&b, p)
	}
	return b.String()
}

// Copyright (c) 2025 COREGX. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import "errors"

// ErrInvalidOperator is the sentinel matched by errors.Is for any
// InvalidOperatorError. An operator suffix outside the comparison operator
// table is the only failure mode of the fragment builders.
var ErrInvalidOperator = errors.New("invalid operator")

// InvalidOperatorError reports the offending operator token from a
// "field:operator" key.
type InvalidOperatorError struct {
	Token string
}

func (e *InvalidOperatorError) Error() string {
	return "invalid operator: " + e.Token
}

// Is matches ErrInvalidOperator so callers can use errors.Is without keeping
// the token.
func (e *InvalidOperatorError) Is(target error) bool {
	return target == ErrInvalidOperator
}

// WrapError wraps an error with additional context message.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

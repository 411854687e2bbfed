// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fmterr accumulates errors raised while processing IR statements.
//
// A pass that must keep going past its first failure appends its errors
// to an [Errors] set and reports the combined error once done. Contexts
// can be pushed onto the set so that errors raised deep in a traversal
// name the statement being processed.
package fmterr

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/gx-org/fuser/ir"
)

type contextError struct {
	frame func(error) error
	errs  error
}

// Errors is a set of errors collected by a pass.
type Errors struct {
	stack []contextError
	errs  error
}

// Push a new context in the error stack. Errors appended until the
// matching Pop are wrapped by the frame function.
func (e *Errors) Push(frame func(error) error) {
	e.stack = append(e.stack, contextError{frame: frame})
}

// PushStatement pushes a context naming the statement being processed.
func (e *Errors) PushStatement(stmt ir.Statement) {
	e.Push(func(err error) error {
		return errors.Wrapf(err, "cannot process %s", stmt)
	})
}

// Pop removes the last context in the stack, folding its errors into the
// enclosing context.
func (e *Errors) Pop() {
	last := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if last.errs == nil {
		return
	}
	e.Append(last.frame(last.errs))
}

// Append an error to the set. Always returns false so that a handler can
// return the result of Append to stop processing the current statement.
func (e *Errors) Append(err error) bool {
	if len(e.stack) == 0 {
		e.errs = multierr.Append(e.errs, err)
	} else {
		last := &e.stack[len(e.stack)-1]
		last.errs = multierr.Append(last.errs, err)
	}
	return false
}

// Empty returns true if no error has been appended.
func (e *Errors) Empty() bool {
	if e.errs != nil {
		return false
	}
	for _, ctx := range e.stack {
		if ctx.errs != nil {
			return false
		}
	}
	return true
}

// Err returns the combined error, or nil if the set is empty.
func (e *Errors) Err() error {
	errs := e.errs
	for _, ctx := range e.stack {
		if ctx.errs != nil {
			errs = multierr.Append(errs, ctx.frame(ctx.errs))
		}
	}
	return errs
}

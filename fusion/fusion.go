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

// Package fusion owns the statements of a fusion being scheduled.
//
// A fusion registers IR statements under stable indices. Rewrites never
// mutate a registered node in place: a mutator returns a replacement and
// the fusion splices it back by swapping the index, so the parent side
// of a rewrite is a single index update.
package fusion

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"

	"github.com/gx-org/fuser/base/ordered"
	"github.com/gx-org/fuser/fmterr"
	"github.com/gx-org/fuser/ir"
	"github.com/gx-org/fuser/ir/irstring"
)

// StmtIndex identifies a statement registered in a fusion.
type StmtIndex int

// Fusion owns a set of IR statements in registration order.
type Fusion struct {
	stmts *ordered.Map[StmtIndex, ir.Statement]
	next  StmtIndex
}

// New returns a new empty fusion.
func New() *Fusion {
	return &Fusion{stmts: ordered.NewMap[StmtIndex, ir.Statement]()}
}

func (f *Fusion) add(stmt ir.Statement) StmtIndex {
	idx := f.next
	f.next++
	f.stmts.Store(idx, stmt)
	return idx
}

// AddVal registers a value in the fusion.
func (f *Fusion) AddVal(val ir.Val) StmtIndex {
	return f.add(val)
}

// AddExpr registers an expression in the fusion.
func (f *Fusion) AddExpr(expr ir.Expr) StmtIndex {
	return f.add(expr)
}

// Statement returns a registered statement given its index.
func (f *Fusion) Statement(idx StmtIndex) (ir.Statement, bool) {
	return f.stmts.Load(idx)
}

// Statements returns an iterator over the registered statements
// in registration order.
func (f *Fusion) Statements() iter.Seq[ir.Statement] {
	return f.stmts.Values()
}

// Size returns the number of registered statements.
func (f *Fusion) Size() int {
	return f.stmts.Size()
}

// Replace swaps the statement registered at an index for a replacement.
// The replacement must belong to the same category as the statement it
// replaces: a value stays a value and an expression stays an expression.
func (f *Fusion) Replace(idx StmtIndex, repl ir.Statement) error {
	prev, ok := f.stmts.Load(idx)
	if !ok {
		return errors.Errorf("no statement registered at index %d", idx)
	}
	if prev.IsVal() != repl.IsVal() {
		return errors.Errorf("cannot replace %s with %s: statement category mismatch", prev, repl)
	}
	return f.stmts.Swap(idx, repl)
}

// Rewrite dispatches every registered statement to a mutator and splices
// the replacements back into the fusion. Statements for which the
// mutator fails are left in place; their errors are reported together
// once every statement has been processed.
func (f *Fusion) Rewrite(mutator ir.Mutator) error {
	var errs fmterr.Errors
	for idx, stmt := range f.stmts.Iter() {
		errs.PushStatement(stmt)
		repl, err := ir.MutatorDispatch(mutator, stmt)
		if err != nil {
			errs.Append(err)
		} else if repl != stmt {
			if err := f.Replace(idx, repl); err != nil {
				errs.Append(err)
			}
		}
		errs.Pop()
	}
	return errs.Err()
}

// String returns a string representation of the registered statements
// in registration order.
func (f *Fusion) String() string {
	s, err := irstring.Statements(f.Statements())
	if err != nil {
		return fmt.Sprintf("cannot print fusion: %v", err)
	}
	return s
}

// Summary returns the number of registered statements per kind,
// one "kind: count" line per kind, sorted by kind name.
func (f *Fusion) Summary() string {
	counts := make(map[string]int)
	for stmt := range f.stmts.Values() {
		counts[kindName(stmt)]++
	}
	names := maps.Keys(counts)
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %d", name, counts[name])
	}
	return strings.Join(lines, "\n")
}

func kindName(stmt ir.Statement) string {
	switch n := stmt.(type) {
	case ir.Scalar:
		return n.DataType().String()
	case ir.Val:
		return n.ValKind().String()
	case ir.Expr:
		return n.ExprKind().String()
	}
	return "invalid"
}

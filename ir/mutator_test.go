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

package ir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/gx-org/fuser/ir"
	"github.com/gx-org/fuser/ir/irhelper"
)

// identityMutator declares no kind method: every statement degrades to
// the category defaults returning the input unchanged.
type identityMutator struct {
	ir.OptOutMutator
}

func TestMutatorIdentityRoundTrip(t *testing.T) {
	for _, test := range statementsByKind() {
		repl, err := ir.MutatorDispatch(&identityMutator{}, test.stmt)
		if err != nil {
			t.Errorf("cannot dispatch %s: %v", test.kind, err)
			continue
		}
		if repl != test.stmt {
			t.Errorf("identity mutation of %s returned a different statement", test.kind)
			continue
		}
		if repl.IsVal() != test.stmt.IsVal() || repl.IsExpr() != test.stmt.IsExpr() {
			t.Errorf("identity mutation of %s changed the statement category", test.kind)
		}
	}
}

// mutRecorder declares a mutator method for every concrete kind,
// recording the invocation and returning the input unchanged.
type mutRecorder struct {
	ir.OptInMutator
	got []string
}

func (r *mutRecorder) record(kind string, stmt ir.Statement) (ir.Statement, error) {
	r.got = append(r.got, kind)
	return stmt, nil
}

func (r *mutRecorder) MutateIterDomain(n *ir.IterDomain) (ir.Statement, error) {
	return r.record("iterdomain", n)
}

func (r *mutRecorder) MutateTensorDomain(n *ir.TensorDomain) (ir.Statement, error) {
	return r.record("tensordomain", n)
}

func (r *mutRecorder) MutateTensor(n *ir.Tensor) (ir.Statement, error) {
	return r.record("tensor", n)
}

func (r *mutRecorder) MutateTensorView(n *ir.TensorView) (ir.Statement, error) {
	return r.record("tensorview", n)
}

func (r *mutRecorder) MutateFloat(n *ir.Float) (ir.Statement, error) {
	return r.record("float", n)
}

func (r *mutRecorder) MutateInt(n *ir.Int) (ir.Statement, error) {
	return r.record("int", n)
}

func (r *mutRecorder) MutateSplit(n *ir.Split) (ir.Statement, error) {
	return r.record("split", n)
}

func (r *mutRecorder) MutateMerge(n *ir.Merge) (ir.Statement, error) {
	return r.record("merge", n)
}

func (r *mutRecorder) MutateReorder(n *ir.Reorder) (ir.Statement, error) {
	return r.record("reorder", n)
}

func (r *mutRecorder) MutateUnaryOp(n *ir.UnaryOp) (ir.Statement, error) {
	return r.record("unaryop", n)
}

func (r *mutRecorder) MutateBinaryOp(n *ir.BinaryOp) (ir.Statement, error) {
	return r.record("binaryop", n)
}

func (r *mutRecorder) MutateForLoop(n *ir.ForLoop) (ir.Statement, error) {
	return r.record("forloop", n)
}

func (r *mutRecorder) MutateIfThenElse(n *ir.IfThenElse) (ir.Statement, error) {
	return r.record("ifthenelse", n)
}

func TestMutatorDispatchExactKind(t *testing.T) {
	for _, test := range statementsByKind() {
		mutator := &mutRecorder{}
		if _, err := ir.MutatorDispatch(mutator, test.stmt); err != nil {
			t.Errorf("cannot dispatch %s: %v", test.kind, err)
			continue
		}
		if diff := cmp.Diff([]string{test.kind}, mutator.got); diff != "" {
			t.Errorf("dispatch of %s invoked the wrong method(s):\n%s", test.kind, diff)
		}
	}
}

// loopOrBranchMutator rewrites loops and conditionals to distinguishable
// replacements.
type loopOrBranchMutator struct {
	ir.OptOutMutator

	loopRepl   ir.Statement
	branchRepl ir.Statement
}

func (m *loopOrBranchMutator) MutateForLoop(*ir.ForLoop) (ir.Statement, error) {
	return m.loopRepl, nil
}

func (m *loopOrBranchMutator) MutateIfThenElse(*ir.IfThenElse) (ir.Statement, error) {
	return m.branchRepl, nil
}

// TestMutatorRoutesIfThenElseToOwnMethod checks that a conditional is
// rewritten by the conditional method and never by the loop method.
func TestMutatorRoutesIfThenElseToOwnMethod(t *testing.T) {
	mutator := &loopOrBranchMutator{
		loopRepl:   &ir.ForLoop{},
		branchRepl: &ir.IfThenElse{},
	}
	repl, err := ir.MutatorDispatch(mutator, irhelper.IfThenElse(irhelper.Int(1)))
	if err != nil {
		t.Fatalf("cannot dispatch the conditional: %v", err)
	}
	if repl != mutator.branchRepl {
		t.Errorf("the conditional has been rewritten by the loop method")
	}
	repl, err = ir.MutatorDispatch(mutator, irhelper.ForLoop(irhelper.IterDomain(4)))
	if err != nil {
		t.Fatalf("cannot dispatch the loop: %v", err)
	}
	if repl != mutator.loopRepl {
		t.Errorf("the loop has been rewritten by the conditional method")
	}
}

// strictIdentity declares no kind method over the exhaustive-required
// policy.
type strictIdentity struct {
	ir.OptInMutator
}

func TestOptInMutatorRequiresKindMethods(t *testing.T) {
	for _, test := range statementsByKind() {
		_, err := ir.MutatorDispatch(&strictIdentity{}, test.stmt)
		if !errors.Is(err, ir.ErrUnhandledKind) {
			t.Errorf("dispatch of %s returned %v but want an unhandled kind error", test.kind, err)
		}
	}
}

// scalarRewriter replaces symbolic integers with a concrete extent.
type scalarRewriter struct {
	ir.OptOutMutator
	extent int64
}

func (m *scalarRewriter) MutateInt(n *ir.Int) (ir.Statement, error) {
	if !n.IsSymbolic() {
		return n, nil
	}
	return irhelper.Int(m.extent), nil
}

func TestMutatorReturnsReplacement(t *testing.T) {
	symbolic := irhelper.SymbolicInt()
	repl, err := ir.MutatorDispatch(&scalarRewriter{extent: 128}, symbolic)
	if err != nil {
		t.Fatalf("cannot dispatch the scalar: %v", err)
	}
	if repl == ir.Statement(symbolic) {
		t.Fatalf("the symbolic scalar has not been replaced")
	}
	replInt, ok := repl.(*ir.Int)
	if !ok {
		t.Fatalf("the replacement is a %T but want *ir.Int", repl)
	}
	if replInt.IsSymbolic() || *replInt.Value != 128 {
		t.Errorf("the replacement is %s but want int(128)", replInt)
	}
	if !repl.IsVal() {
		t.Errorf("the replacement is not a value")
	}
}

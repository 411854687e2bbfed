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

package ir

import (
	"github.com/pkg/errors"

	"github.com/gx-org/fuser/ir/irkind"
)

// ----------------------------------------------------------------------------
// Mutator dispatch, for handlers rewriting the tree.
//
// The routing is the same as Dispatch, but a kind method returns a
// replacement statement: the input node unchanged, or a freshly
// constructed node whose ownership passes to whatever splices it back
// into the tree. A rewrite never mutates the input node in place.
//
// The dispatcher does not check that the replacement's category matches
// the input's: a mutator method for a value must return a value and a
// mutator method for an expression must return an expression. Whatever
// splices the replacement back into the tree enforces that invariant.
type (
	// Mutator is the target of the mutator dispatch.
	Mutator interface {
		// MutateVal rewrites a value as its category.
		MutateVal(Val) (Statement, error)

		// MutateExpr rewrites an expression as its category.
		MutateExpr(Expr) (Statement, error)

		// unhandledMutate is the policy applied to a statement for which
		// the mutator declares no kind-specific method. It is provided
		// by OptOutMutator or OptInMutator.
		unhandledMutate(Mutator, Statement) (Statement, error)
	}

	// IterDomainMutator rewrites iteration axes.
	IterDomainMutator interface {
		MutateIterDomain(*IterDomain) (Statement, error)
	}

	// TensorDomainMutator rewrites tensor domains.
	TensorDomainMutator interface {
		MutateTensorDomain(*TensorDomain) (Statement, error)
	}

	// TensorMutator rewrites tensors.
	TensorMutator interface {
		MutateTensor(*Tensor) (Statement, error)
	}

	// TensorViewMutator rewrites tensor views.
	TensorViewMutator interface {
		MutateTensorView(*TensorView) (Statement, error)
	}

	// FloatMutator rewrites float scalars.
	FloatMutator interface {
		MutateFloat(*Float) (Statement, error)
	}

	// IntMutator rewrites integer scalars.
	IntMutator interface {
		MutateInt(*Int) (Statement, error)
	}

	// SplitMutator rewrites splits.
	SplitMutator interface {
		MutateSplit(*Split) (Statement, error)
	}

	// MergeMutator rewrites merges.
	MergeMutator interface {
		MutateMerge(*Merge) (Statement, error)
	}

	// ReorderMutator rewrites reorders.
	ReorderMutator interface {
		MutateReorder(*Reorder) (Statement, error)
	}

	// UnaryOpMutator rewrites unary operations.
	UnaryOpMutator interface {
		MutateUnaryOp(*UnaryOp) (Statement, error)
	}

	// BinaryOpMutator rewrites binary operations.
	BinaryOpMutator interface {
		MutateBinaryOp(*BinaryOp) (Statement, error)
	}

	// ForLoopMutator rewrites for loops.
	ForLoopMutator interface {
		MutateForLoop(*ForLoop) (Statement, error)
	}

	// IfThenElseMutator rewrites conditionals.
	IfThenElseMutator interface {
		MutateIfThenElse(*IfThenElse) (Statement, error)
	}
)

// MutatorDispatch routes a statement to the mutator method for its exact
// kind and returns the replacement statement.
func MutatorDispatch(mutator Mutator, stmt Statement) (Statement, error) {
	switch {
	case stmt.IsVal():
		return MutatorDispatchVal(mutator, stmt.(Val))
	case stmt.IsExpr():
		return MutatorDispatchExpr(mutator, stmt.(Expr))
	}
	return nil, errors.Wrapf(ErrUnrecognizedCategory, "cannot dispatch %T", stmt)
}

// MutatorDispatchVal routes a value to the mutator method for its exact
// kind and returns the replacement statement.
func MutatorDispatchVal(mutator Mutator, val Val) (Statement, error) {
	switch val.ValKind() {
	case irkind.IterDomainVal:
		if m, ok := mutator.(IterDomainMutator); ok {
			return m.MutateIterDomain(val.(*IterDomain))
		}
	case irkind.TensorDomainVal:
		if m, ok := mutator.(TensorDomainMutator); ok {
			return m.MutateTensorDomain(val.(*TensorDomain))
		}
	case irkind.TensorVal:
		if m, ok := mutator.(TensorMutator); ok {
			return m.MutateTensor(val.(*Tensor))
		}
	case irkind.TensorViewVal:
		if m, ok := mutator.(TensorViewMutator); ok {
			return m.MutateTensorView(val.(*TensorView))
		}
	case irkind.ScalarVal:
		switch dt := val.(Scalar).DataType(); dt {
		case irkind.Float:
			if m, ok := mutator.(FloatMutator); ok {
				return m.MutateFloat(val.(*Float))
			}
		case irkind.Int:
			if m, ok := mutator.(IntMutator); ok {
				return m.MutateInt(val.(*Int))
			}
		default:
			return nil, errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch scalar data type %s", dt)
		}
	default:
		return nil, errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch value kind %s", val.ValKind())
	}
	return mutator.unhandledMutate(mutator, val)
}

// MutatorDispatchExpr routes an expression to the mutator method for its
// exact kind and returns the replacement statement.
func MutatorDispatchExpr(mutator Mutator, expr Expr) (Statement, error) {
	switch expr.ExprKind() {
	case irkind.SplitExpr:
		if m, ok := mutator.(SplitMutator); ok {
			return m.MutateSplit(expr.(*Split))
		}
	case irkind.MergeExpr:
		if m, ok := mutator.(MergeMutator); ok {
			return m.MutateMerge(expr.(*Merge))
		}
	case irkind.ReorderExpr:
		if m, ok := mutator.(ReorderMutator); ok {
			return m.MutateReorder(expr.(*Reorder))
		}
	case irkind.UnaryOpExpr:
		if m, ok := mutator.(UnaryOpMutator); ok {
			return m.MutateUnaryOp(expr.(*UnaryOp))
		}
	case irkind.BinaryOpExpr:
		if m, ok := mutator.(BinaryOpMutator); ok {
			return m.MutateBinaryOp(expr.(*BinaryOp))
		}
	case irkind.ForLoopExpr:
		if m, ok := mutator.(ForLoopMutator); ok {
			return m.MutateForLoop(expr.(*ForLoop))
		}
	case irkind.IfThenElseExpr:
		if m, ok := mutator.(IfThenElseMutator); ok {
			return m.MutateIfThenElse(expr.(*IfThenElse))
		}
	default:
		return nil, errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch expression kind %s", expr.ExprKind())
	}
	return mutator.unhandledMutate(mutator, expr)
}

// ----------------------------------------------------------------------------
// Mutator dispatch policies.

// OptOutMutator is the safe-default mutate policy.
//
// A mutator embedding OptOutMutator declares only the kind methods it
// needs. A kind without a method falls back to the mutator's category
// method, MutateVal or MutateExpr, which default to returning the input
// unchanged.
type OptOutMutator struct{}

// MutateVal rewrites a value as its category.
// It returns the value unchanged.
func (OptOutMutator) MutateVal(val Val) (Statement, error) { return val, nil }

// MutateExpr rewrites an expression as its category.
// It returns the expression unchanged.
func (OptOutMutator) MutateExpr(expr Expr) (Statement, error) { return expr, nil }

func (OptOutMutator) unhandledMutate(mutator Mutator, stmt Statement) (Statement, error) {
	switch {
	case stmt.IsVal():
		return mutator.MutateVal(stmt.(Val))
	case stmt.IsExpr():
		return mutator.MutateExpr(stmt.(Expr))
	}
	return nil, errors.Wrapf(ErrUnrecognizedCategory, "cannot dispatch %T", stmt)
}

// OptInMutator is the exhaustive-required mutate policy.
//
// A mutator embedding OptInMutator must declare a method for every kind
// it is dispatched: a kind without a method fails with ErrUnhandledKind.
type OptInMutator struct{}

// MutateVal rewrites a value as its category. It fails: an exhaustive
// mutator declares a method for each value kind.
func (OptInMutator) MutateVal(val Val) (Statement, error) {
	return nil, errors.Wrapf(ErrUnhandledKind, "value kind %s", val.ValKind())
}

// MutateExpr rewrites an expression as its category. It fails: an
// exhaustive mutator declares a method for each expression kind.
func (OptInMutator) MutateExpr(expr Expr) (Statement, error) {
	return nil, errors.Wrapf(ErrUnhandledKind, "expression kind %s", expr.ExprKind())
}

func (OptInMutator) unhandledMutate(_ Mutator, stmt Statement) (Statement, error) {
	return nil, errors.Wrapf(ErrUnhandledKind, "no mutator method for %s", kindOf(stmt))
}

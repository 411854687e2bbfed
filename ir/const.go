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
// Const dispatch, for pure observers such as printers and analyzers.
//
// The routing is the same as Dispatch, but a kind method receives a copy
// of the node: the handler cannot write to the fields of the statement
// being visited. Children are shared references, as with a shallow
// immutable view.
type (
	// ConstHandler is the target of the const dispatch.
	ConstHandler interface {
		// HandleVal handles a value as its category.
		HandleVal(Val) error

		// HandleExpr handles an expression as its category.
		HandleExpr(Expr) error

		// unhandledConst is the policy applied to a statement for which
		// the handler declares no kind-specific method. It is provided
		// by OptInConstDispatch.
		unhandledConst(ConstHandler, Statement) error
	}

	// ConstIterDomainHandler observes iteration axes.
	ConstIterDomainHandler interface {
		HandleIterDomain(IterDomain) error
	}

	// ConstTensorDomainHandler observes tensor domains.
	ConstTensorDomainHandler interface {
		HandleTensorDomain(TensorDomain) error
	}

	// ConstTensorHandler observes tensors.
	ConstTensorHandler interface {
		HandleTensor(Tensor) error
	}

	// ConstTensorViewHandler observes tensor views.
	ConstTensorViewHandler interface {
		HandleTensorView(TensorView) error
	}

	// ConstFloatHandler observes float scalars.
	ConstFloatHandler interface {
		HandleFloat(Float) error
	}

	// ConstIntHandler observes integer scalars.
	ConstIntHandler interface {
		HandleInt(Int) error
	}

	// ConstSplitHandler observes splits.
	ConstSplitHandler interface {
		HandleSplit(Split) error
	}

	// ConstMergeHandler observes merges.
	ConstMergeHandler interface {
		HandleMerge(Merge) error
	}

	// ConstReorderHandler observes reorders.
	ConstReorderHandler interface {
		HandleReorder(Reorder) error
	}

	// ConstUnaryOpHandler observes unary operations.
	ConstUnaryOpHandler interface {
		HandleUnaryOp(UnaryOp) error
	}

	// ConstBinaryOpHandler observes binary operations.
	ConstBinaryOpHandler interface {
		HandleBinaryOp(BinaryOp) error
	}

	// ConstForLoopHandler observes for loops.
	ConstForLoopHandler interface {
		HandleForLoop(ForLoop) error
	}

	// ConstIfThenElseHandler observes conditionals.
	ConstIfThenElseHandler interface {
		HandleIfThenElse(IfThenElse) error
	}
)

// ConstDispatch routes a statement to the handler method for its exact
// kind, through an immutable view of the node.
func ConstDispatch(handler ConstHandler, stmt Statement) error {
	switch {
	case stmt.IsVal():
		return ConstDispatchVal(handler, stmt.(Val))
	case stmt.IsExpr():
		return ConstDispatchExpr(handler, stmt.(Expr))
	}
	return errors.Wrapf(ErrUnrecognizedCategory, "cannot dispatch %T", stmt)
}

// ConstDispatchVal routes a value to the handler method for its exact
// kind, through an immutable view of the node.
func ConstDispatchVal(handler ConstHandler, val Val) error {
	switch val.ValKind() {
	case irkind.IterDomainVal:
		if h, ok := handler.(ConstIterDomainHandler); ok {
			return h.HandleIterDomain(*val.(*IterDomain))
		}
	case irkind.TensorDomainVal:
		if h, ok := handler.(ConstTensorDomainHandler); ok {
			return h.HandleTensorDomain(*val.(*TensorDomain))
		}
	case irkind.TensorVal:
		if h, ok := handler.(ConstTensorHandler); ok {
			return h.HandleTensor(*val.(*Tensor))
		}
	case irkind.TensorViewVal:
		if h, ok := handler.(ConstTensorViewHandler); ok {
			return h.HandleTensorView(*val.(*TensorView))
		}
	case irkind.ScalarVal:
		switch dt := val.(Scalar).DataType(); dt {
		case irkind.Float:
			if h, ok := handler.(ConstFloatHandler); ok {
				return h.HandleFloat(*val.(*Float))
			}
		case irkind.Int:
			if h, ok := handler.(ConstIntHandler); ok {
				return h.HandleInt(*val.(*Int))
			}
		default:
			return errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch scalar data type %s", dt)
		}
	default:
		return errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch value kind %s", val.ValKind())
	}
	return handler.unhandledConst(handler, val)
}

// ConstDispatchExpr routes an expression to the handler method for its
// exact kind, through an immutable view of the node.
func ConstDispatchExpr(handler ConstHandler, expr Expr) error {
	switch expr.ExprKind() {
	case irkind.SplitExpr:
		if h, ok := handler.(ConstSplitHandler); ok {
			return h.HandleSplit(*expr.(*Split))
		}
	case irkind.MergeExpr:
		if h, ok := handler.(ConstMergeHandler); ok {
			return h.HandleMerge(*expr.(*Merge))
		}
	case irkind.ReorderExpr:
		if h, ok := handler.(ConstReorderHandler); ok {
			return h.HandleReorder(*expr.(*Reorder))
		}
	case irkind.UnaryOpExpr:
		if h, ok := handler.(ConstUnaryOpHandler); ok {
			return h.HandleUnaryOp(*expr.(*UnaryOp))
		}
	case irkind.BinaryOpExpr:
		if h, ok := handler.(ConstBinaryOpHandler); ok {
			return h.HandleBinaryOp(*expr.(*BinaryOp))
		}
	case irkind.ForLoopExpr:
		if h, ok := handler.(ConstForLoopHandler); ok {
			return h.HandleForLoop(*expr.(*ForLoop))
		}
	case irkind.IfThenElseExpr:
		if h, ok := handler.(ConstIfThenElseHandler); ok {
			return h.HandleIfThenElse(*expr.(*IfThenElse))
		}
	default:
		return errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch expression kind %s", expr.ExprKind())
	}
	return handler.unhandledConst(handler, expr)
}

// OptInConstDispatch is the exhaustive-required const policy.
//
// A handler embedding OptInConstDispatch must declare a method for every
// kind it is dispatched: a kind without a method fails with
// ErrUnhandledKind.
type OptInConstDispatch struct{}

// HandleVal handles a value as its category. It fails: an exhaustive
// handler declares a method for each value kind.
func (OptInConstDispatch) HandleVal(val Val) error {
	return errors.Wrapf(ErrUnhandledKind, "value kind %s", val.ValKind())
}

// HandleExpr handles an expression as its category. It fails: an
// exhaustive handler declares a method for each expression kind.
func (OptInConstDispatch) HandleExpr(expr Expr) error {
	return errors.Wrapf(ErrUnhandledKind, "expression kind %s", expr.ExprKind())
}

func (OptInConstDispatch) unhandledConst(_ ConstHandler, stmt Statement) error {
	return errors.Wrapf(ErrUnhandledKind, "no handler method for %s", kindOf(stmt))
}

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

// Dispatch failures.
var (
	// ErrUnrecognizedCategory reports a statement that is neither a
	// value nor an expression.
	ErrUnrecognizedCategory = errors.New("unrecognized statement category")

	// ErrUnrecognizedKind reports a kind tag missing from a routing
	// table. The set of kinds is closed: this signals either a corrupted
	// tag or a kind added without its dispatch case.
	ErrUnrecognizedKind = errors.New("unrecognized kind")

	// ErrUnhandledKind reports a kind not handled by an
	// exhaustive-required handler.
	ErrUnhandledKind = errors.New("unhandled kind")
)

// ----------------------------------------------------------------------------
// Read dispatch.
//
// A handler embeds OptOutDispatch or OptInDispatch and declares a method
// for each kind it handles. Dispatch routes a statement to the method for
// its exact kind; the embedded base decides what happens to kinds the
// handler does not declare. A handler method may recurse into children by
// calling Dispatch again.
type (
	// Handler is the target of the read dispatch.
	Handler interface {
		// HandleVal handles a value as its category.
		HandleVal(Val) error

		// HandleExpr handles an expression as its category.
		HandleExpr(Expr) error

		// unhandled is the policy applied to a statement for which the
		// handler declares no kind-specific method. It is provided by
		// OptOutDispatch or OptInDispatch.
		unhandled(Handler, Statement) error
	}

	// IterDomainHandler handles iteration axes.
	IterDomainHandler interface {
		HandleIterDomain(*IterDomain) error
	}

	// TensorDomainHandler handles tensor domains.
	TensorDomainHandler interface {
		HandleTensorDomain(*TensorDomain) error
	}

	// TensorHandler handles tensors.
	TensorHandler interface {
		HandleTensor(*Tensor) error
	}

	// TensorViewHandler handles tensor views.
	TensorViewHandler interface {
		HandleTensorView(*TensorView) error
	}

	// FloatHandler handles float scalars.
	FloatHandler interface {
		HandleFloat(*Float) error
	}

	// IntHandler handles integer scalars.
	IntHandler interface {
		HandleInt(*Int) error
	}

	// SplitHandler handles splits.
	SplitHandler interface {
		HandleSplit(*Split) error
	}

	// MergeHandler handles merges.
	MergeHandler interface {
		HandleMerge(*Merge) error
	}

	// ReorderHandler handles reorders.
	ReorderHandler interface {
		HandleReorder(*Reorder) error
	}

	// UnaryOpHandler handles unary operations.
	UnaryOpHandler interface {
		HandleUnaryOp(*UnaryOp) error
	}

	// BinaryOpHandler handles binary operations.
	BinaryOpHandler interface {
		HandleBinaryOp(*BinaryOp) error
	}

	// ForLoopHandler handles for loops.
	ForLoopHandler interface {
		HandleForLoop(*ForLoop) error
	}

	// IfThenElseHandler handles conditionals.
	IfThenElseHandler interface {
		HandleIfThenElse(*IfThenElse) error
	}
)

// Dispatch routes a statement to the handler method for its exact kind.
func Dispatch(handler Handler, stmt Statement) error {
	switch {
	case stmt.IsVal():
		return DispatchVal(handler, stmt.(Val))
	case stmt.IsExpr():
		return DispatchExpr(handler, stmt.(Expr))
	}
	return errors.Wrapf(ErrUnrecognizedCategory, "cannot dispatch %T", stmt)
}

// DispatchVal routes a value to the handler method for its exact kind.
func DispatchVal(handler Handler, val Val) error {
	switch val.ValKind() {
	case irkind.IterDomainVal:
		if h, ok := handler.(IterDomainHandler); ok {
			return h.HandleIterDomain(val.(*IterDomain))
		}
	case irkind.TensorDomainVal:
		if h, ok := handler.(TensorDomainHandler); ok {
			return h.HandleTensorDomain(val.(*TensorDomain))
		}
	case irkind.TensorVal:
		if h, ok := handler.(TensorHandler); ok {
			return h.HandleTensor(val.(*Tensor))
		}
	case irkind.TensorViewVal:
		if h, ok := handler.(TensorViewHandler); ok {
			return h.HandleTensorView(val.(*TensorView))
		}
	case irkind.ScalarVal:
		switch dt := val.(Scalar).DataType(); dt {
		case irkind.Float:
			if h, ok := handler.(FloatHandler); ok {
				return h.HandleFloat(val.(*Float))
			}
		case irkind.Int:
			if h, ok := handler.(IntHandler); ok {
				return h.HandleInt(val.(*Int))
			}
		default:
			return errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch scalar data type %s", dt)
		}
	default:
		return errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch value kind %s", val.ValKind())
	}
	return handler.unhandled(handler, val)
}

// DispatchExpr routes an expression to the handler method for its exact kind.
func DispatchExpr(handler Handler, expr Expr) error {
	switch expr.ExprKind() {
	case irkind.SplitExpr:
		if h, ok := handler.(SplitHandler); ok {
			return h.HandleSplit(expr.(*Split))
		}
	case irkind.MergeExpr:
		if h, ok := handler.(MergeHandler); ok {
			return h.HandleMerge(expr.(*Merge))
		}
	case irkind.ReorderExpr:
		if h, ok := handler.(ReorderHandler); ok {
			return h.HandleReorder(expr.(*Reorder))
		}
	case irkind.UnaryOpExpr:
		if h, ok := handler.(UnaryOpHandler); ok {
			return h.HandleUnaryOp(expr.(*UnaryOp))
		}
	case irkind.BinaryOpExpr:
		if h, ok := handler.(BinaryOpHandler); ok {
			return h.HandleBinaryOp(expr.(*BinaryOp))
		}
	case irkind.ForLoopExpr:
		if h, ok := handler.(ForLoopHandler); ok {
			return h.HandleForLoop(expr.(*ForLoop))
		}
	case irkind.IfThenElseExpr:
		if h, ok := handler.(IfThenElseHandler); ok {
			return h.HandleIfThenElse(expr.(*IfThenElse))
		}
	default:
		return errors.Wrapf(ErrUnrecognizedKind, "cannot dispatch expression kind %s", expr.ExprKind())
	}
	return handler.unhandled(handler, expr)
}

// ----------------------------------------------------------------------------
// Read dispatch policies.

// OptOutDispatch is the safe-default read policy.
//
// A handler embedding OptOutDispatch declares only the kind methods it
// needs. A kind without a method falls back to the handler's category
// method, HandleVal or HandleExpr, which default to doing nothing.
type OptOutDispatch struct{}

// HandleVal handles a value as its category. It does nothing.
func (OptOutDispatch) HandleVal(Val) error { return nil }

// HandleExpr handles an expression as its category. It does nothing.
func (OptOutDispatch) HandleExpr(Expr) error { return nil }

func (OptOutDispatch) unhandled(handler Handler, stmt Statement) error {
	switch {
	case stmt.IsVal():
		return handler.HandleVal(stmt.(Val))
	case stmt.IsExpr():
		return handler.HandleExpr(stmt.(Expr))
	}
	return errors.Wrapf(ErrUnrecognizedCategory, "cannot dispatch %T", stmt)
}

// OptInDispatch is the exhaustive-required read policy.
//
// A handler embedding OptInDispatch must declare a method for every kind
// it is dispatched: a kind without a method fails with ErrUnhandledKind,
// whether or not a category method has been declared.
type OptInDispatch struct{}

// HandleVal handles a value as its category. It fails: an exhaustive
// handler declares a method for each value kind.
func (OptInDispatch) HandleVal(val Val) error {
	return errors.Wrapf(ErrUnhandledKind, "value kind %s", val.ValKind())
}

// HandleExpr handles an expression as its category. It fails: an
// exhaustive handler declares a method for each expression kind.
func (OptInDispatch) HandleExpr(expr Expr) error {
	return errors.Wrapf(ErrUnhandledKind, "expression kind %s", expr.ExprKind())
}

func (OptInDispatch) unhandled(_ Handler, stmt Statement) error {
	return errors.Wrapf(ErrUnhandledKind, "no handler method for %s", kindOf(stmt))
}

func kindOf(stmt Statement) string {
	switch n := stmt.(type) {
	case Scalar:
		return "scalar data type " + n.DataType().String()
	case Val:
		return "value kind " + n.ValKind().String()
	case Expr:
		return "expression kind " + n.ExprKind().String()
	}
	return "statement"
}

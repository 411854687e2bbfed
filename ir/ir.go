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

// Package ir is the fuser Intermediate Representation (IR) tree.
//
// Every node of the tree is a Statement and belongs to exactly one of
// two categories: Val for value nodes and Expr for expression nodes.
// Each node carries an immutable kind tag fixed at construction
// (see [github.com/gx-org/fuser/ir/irkind]). Dispatch routes a node to
// a handler method for its exact kind from that tag alone.
package ir

import "github.com/gx-org/fuser/ir/irkind"

// ----------------------------------------------------------------------------
// Categories of node in the tree.
type (
	// Statement is a node of the IR tree.
	// A statement is exactly one of Val or Expr.
	Statement interface {
		// IsVal reports whether the statement is a value node.
		IsVal() bool

		// IsExpr reports whether the statement is an expression node.
		IsExpr() bool

		// String representation of the statement.
		String() string

		// statement prevents external implementations of the interface,
		// keeping the set of node kinds closed.
		statement()
	}

	// Val is a value node of the IR tree.
	Val interface {
		Statement

		// ValKind returns the kind tag of the value.
		ValKind() irkind.ValKind

		val()
	}

	// Scalar is a value node holding a single scalar,
	// refined by a secondary data type tag.
	Scalar interface {
		Val

		// DataType returns the data type tag of the scalar.
		DataType() irkind.DataType
	}

	// Expr is an expression node of the IR tree,
	// relating or producing values.
	Expr interface {
		Statement

		// ExprKind returns the kind tag of the expression.
		ExprKind() irkind.ExprKind

		expr()
	}
)

// valNode marks a structure as a value node.
type valNode struct{}

func (valNode) IsVal() bool  { return true }
func (valNode) IsExpr() bool { return false }
func (valNode) statement()   {}
func (valNode) val()         {}

// exprNode marks a structure as an expression node.
type exprNode struct{}

func (exprNode) IsVal() bool  { return false }
func (exprNode) IsExpr() bool { return true }
func (exprNode) statement()   {}
func (exprNode) expr()        {}

// ----------------------------------------------------------------------------
// Value nodes.
type (
	// IterDomain is a single iteration axis of a tensor domain.
	IterDomain struct {
		valNode

		// Size is the extent of the axis.
		Size *Int

		// Parallel is how the axis is scheduled.
		Parallel irkind.ParallelKind

		// Reduction marks the axis as a reduction axis.
		Reduction bool
	}

	// TensorDomain is the ordered list of iteration axes of a tensor.
	TensorDomain struct {
		valNode

		Domain []*IterDomain
	}

	// Tensor is a value backed by memory,
	// with a data type and an iteration domain.
	Tensor struct {
		valNode

		DType  irkind.DataType
		Domain *TensorDomain
	}

	// TensorView is a scheduled view on a tensor.
	// The view shares the tensor's memory but carries its own domain.
	TensorView struct {
		valNode

		Tensor *Tensor
		Domain *TensorDomain
	}

	// Float is a 32-bit floating point scalar.
	// A nil value is symbolic.
	Float struct {
		valNode

		Value *float32
	}

	// Int is a 64-bit integer scalar.
	// A nil value is symbolic.
	Int struct {
		valNode

		Value *int64
	}
)

// ValKind returns the kind tag of the value.
func (*IterDomain) ValKind() irkind.ValKind { return irkind.IterDomainVal }

// ValKind returns the kind tag of the value.
func (*TensorDomain) ValKind() irkind.ValKind { return irkind.TensorDomainVal }

// ValKind returns the kind tag of the value.
func (*Tensor) ValKind() irkind.ValKind { return irkind.TensorVal }

// ValKind returns the kind tag of the value.
func (*TensorView) ValKind() irkind.ValKind { return irkind.TensorViewVal }

// ValKind returns the kind tag of the value.
func (*Float) ValKind() irkind.ValKind { return irkind.ScalarVal }

// ValKind returns the kind tag of the value.
func (*Int) ValKind() irkind.ValKind { return irkind.ScalarVal }

// DataType returns the data type tag of the scalar.
func (*Float) DataType() irkind.DataType { return irkind.Float }

// DataType returns the data type tag of the scalar.
func (*Int) DataType() irkind.DataType { return irkind.Int }

// IsSymbolic reports whether the scalar has no concrete value.
func (f *Float) IsSymbolic() bool { return f.Value == nil }

// IsSymbolic reports whether the scalar has no concrete value.
func (i *Int) IsSymbolic() bool { return i.Value == nil }

// ----------------------------------------------------------------------------
// Expression nodes.
type (
	// Split divides an axis of a tensor domain by a factor,
	// producing a domain with one more axis.
	Split struct {
		exprNode

		Out    *TensorDomain
		In     *TensorDomain
		Axis   int
		Factor *Int
	}

	// Merge fuses an axis of a tensor domain with the following one,
	// producing a domain with one less axis.
	Merge struct {
		exprNode

		Out  *TensorDomain
		In   *TensorDomain
		Axis int
	}

	// Reorder permutes the axes of a tensor domain.
	// Pos2Axis maps a position in the output domain to an axis of the
	// input domain.
	Reorder struct {
		exprNode

		Out      *TensorDomain
		In       *TensorDomain
		Pos2Axis []int
	}

	// UnaryOp computes a value from a single operand.
	UnaryOp struct {
		exprNode

		Op  irkind.UnaryOpKind
		Out Val
		In  Val
	}

	// BinaryOp computes a value from two operands.
	BinaryOp struct {
		exprNode

		Op  irkind.BinaryOpKind
		Out Val
		LHS Val
		RHS Val
	}

	// ForLoop iterates an index over an iteration domain,
	// running its body once per iteration.
	ForLoop struct {
		exprNode

		Index *Int
		Range *IterDomain
		Body  []Expr
	}

	// IfThenElse guards expressions with a predicate.
	IfThenElse struct {
		exprNode

		Cond Val
		Then []Expr
		Else []Expr
	}
)

// ExprKind returns the kind tag of the expression.
func (*Split) ExprKind() irkind.ExprKind { return irkind.SplitExpr }

// ExprKind returns the kind tag of the expression.
func (*Merge) ExprKind() irkind.ExprKind { return irkind.MergeExpr }

// ExprKind returns the kind tag of the expression.
func (*Reorder) ExprKind() irkind.ExprKind { return irkind.ReorderExpr }

// ExprKind returns the kind tag of the expression.
func (*UnaryOp) ExprKind() irkind.ExprKind { return irkind.UnaryOpExpr }

// ExprKind returns the kind tag of the expression.
func (*BinaryOp) ExprKind() irkind.ExprKind { return irkind.BinaryOpExpr }

// ExprKind returns the kind tag of the expression.
func (*ForLoop) ExprKind() irkind.ExprKind { return irkind.ForLoopExpr }

// ExprKind returns the kind tag of the expression.
func (*IfThenElse) ExprKind() irkind.ExprKind { return irkind.IfThenElseExpr }

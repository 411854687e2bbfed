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

// Package irhelper provides helper functions to build IR programmatically.
package irhelper

import (
	"github.com/gx-org/fuser/ir"
	"github.com/gx-org/fuser/ir/irkind"
)

// Float returns a float scalar literal.
func Float(v float32) *ir.Float {
	return &ir.Float{Value: &v}
}

// Int returns an integer scalar literal.
func Int(v int64) *ir.Int {
	return &ir.Int{Value: &v}
}

// SymbolicInt returns an integer scalar with no concrete value.
func SymbolicInt() *ir.Int {
	return &ir.Int{}
}

// IterDomain returns a serial iteration axis of a given size.
func IterDomain(size int64) *ir.IterDomain {
	return &ir.IterDomain{Size: Int(size)}
}

// TensorDomain returns a domain with one serial axis per size.
func TensorDomain(sizes ...int64) *ir.TensorDomain {
	domain := make([]*ir.IterDomain, len(sizes))
	for i, size := range sizes {
		domain[i] = IterDomain(size)
	}
	return &ir.TensorDomain{Domain: domain}
}

// Tensor returns a tensor of a given data type and shape.
func Tensor(dt irkind.DataType, sizes ...int64) *ir.Tensor {
	return &ir.Tensor{DType: dt, Domain: TensorDomain(sizes...)}
}

// TensorView returns a view on a tensor sharing the tensor's domain.
func TensorView(t *ir.Tensor) *ir.TensorView {
	return &ir.TensorView{Tensor: t, Domain: t.Domain}
}

// Split returns a split of an axis of a domain by a factor.
// The output domain replaces the axis with an outer axis of the
// remaining extent and an inner axis of the factor's extent.
func Split(in *ir.TensorDomain, axis int, factor int64) *ir.Split {
	out := &ir.TensorDomain{Domain: make([]*ir.IterDomain, 0, len(in.Domain)+1)}
	for i, d := range in.Domain {
		if i != axis {
			out.Domain = append(out.Domain, d)
			continue
		}
		out.Domain = append(out.Domain,
			&ir.IterDomain{Size: SymbolicInt(), Parallel: d.Parallel, Reduction: d.Reduction},
			&ir.IterDomain{Size: Int(factor), Reduction: d.Reduction},
		)
	}
	return &ir.Split{Out: out, In: in, Axis: axis, Factor: Int(factor)}
}

// Merge returns a merge of an axis of a domain with the following one.
func Merge(in *ir.TensorDomain, axis int) *ir.Merge {
	out := &ir.TensorDomain{Domain: make([]*ir.IterDomain, 0, len(in.Domain)-1)}
	for i, d := range in.Domain {
		if i == axis {
			out.Domain = append(out.Domain, &ir.IterDomain{
				Size:      SymbolicInt(),
				Reduction: d.Reduction,
			})
			continue
		}
		if i == axis+1 {
			continue
		}
		out.Domain = append(out.Domain, d)
	}
	return &ir.Merge{Out: out, In: in, Axis: axis}
}

// Reorder returns a permutation of the axes of a domain.
// pos2Axis maps a position in the output domain to an axis of the input.
func Reorder(in *ir.TensorDomain, pos2Axis ...int) *ir.Reorder {
	out := &ir.TensorDomain{Domain: make([]*ir.IterDomain, len(pos2Axis))}
	for pos, axis := range pos2Axis {
		out.Domain[pos] = in.Domain[axis]
	}
	return &ir.Reorder{Out: out, In: in, Pos2Axis: pos2Axis}
}

// UnaryOp returns a unary operation producing out from in.
func UnaryOp(op irkind.UnaryOpKind, out, in ir.Val) *ir.UnaryOp {
	return &ir.UnaryOp{Op: op, Out: out, In: in}
}

// BinaryOp returns a binary operation producing out from lhs and rhs.
func BinaryOp(op irkind.BinaryOpKind, out, lhs, rhs ir.Val) *ir.BinaryOp {
	return &ir.BinaryOp{Op: op, Out: out, LHS: lhs, RHS: rhs}
}

// ForLoop returns a loop of a symbolic index over an axis.
func ForLoop(rng *ir.IterDomain, body ...ir.Expr) *ir.ForLoop {
	return &ir.ForLoop{Index: SymbolicInt(), Range: rng, Body: body}
}

// IfThenElse returns a conditional guarding a body of expressions.
func IfThenElse(cond ir.Val, then ...ir.Expr) *ir.IfThenElse {
	return &ir.IfThenElse{Cond: cond, Then: then}
}

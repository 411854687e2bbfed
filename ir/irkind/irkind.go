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

// Package irkind defines the kind tags of the fuser intermediate
// representation (IR).
//
// A kind tag is fixed when a node is constructed and is the only
// information dispatch uses to route a node to a handler.
package irkind

import "github.com/gx-org/backend/dtype"

// ValKind is the kind of a value node.
type ValKind uint

// Kinds of value nodes.
const (
	InvalidVal ValKind = iota
	IterDomainVal
	TensorDomainVal
	TensorVal
	TensorViewVal
	ScalarVal
)

// String returns a string representation of a value kind.
func (k ValKind) String() string {
	switch k {
	case IterDomainVal:
		return "iterdomain"
	case TensorDomainVal:
		return "tensordomain"
	case TensorVal:
		return "tensor"
	case TensorViewVal:
		return "tensorview"
	case ScalarVal:
		return "scalar"
	default:
		return "invalid"
	}
}

// ExprKind is the kind of an expression node.
type ExprKind uint

// Kinds of expression nodes.
const (
	InvalidExpr ExprKind = iota
	SplitExpr
	MergeExpr
	ReorderExpr
	UnaryOpExpr
	BinaryOpExpr
	ForLoopExpr
	IfThenElseExpr
)

// String returns a string representation of an expression kind.
func (k ExprKind) String() string {
	switch k {
	case SplitExpr:
		return "split"
	case MergeExpr:
		return "merge"
	case ReorderExpr:
		return "reorder"
	case UnaryOpExpr:
		return "unaryop"
	case BinaryOpExpr:
		return "binaryop"
	case ForLoopExpr:
		return "forloop"
	case IfThenElseExpr:
		return "ifthenelse"
	default:
		return "invalid"
	}
}

// DataType refines the kind of a scalar value.
type DataType uint

// Data types of scalar values.
const (
	InvalidDataType = DataType(dtype.Invalid)
	Float           = DataType(dtype.Float32)
	Int             = DataType(dtype.Int64)
)

// String returns a string representation of a data type.
func (t DataType) String() string {
	switch t {
	case Float:
		return "float"
	case Int:
		return "int"
	default:
		return "invalid"
	}
}

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

package irkind

// UnaryOpKind is the operator of a unary operation expression.
type UnaryOpKind uint

// Unary operators.
const (
	InvalidUnaryOp UnaryOpKind = iota
	Neg
	Cast
)

// String returns a string representation of a unary operator.
func (k UnaryOpKind) String() string {
	switch k {
	case Neg:
		return "neg"
	case Cast:
		return "cast"
	default:
		return "invalid"
	}
}

// BinaryOpKind is the operator of a binary operation expression.
type BinaryOpKind uint

// Binary operators.
const (
	InvalidBinaryOp BinaryOpKind = iota
	Add
	Sub
	Mul
	Div
	Mod
	LT
	CeilDiv
)

// String returns a string representation of a binary operator.
func (k BinaryOpKind) String() string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Mod:
		return "mod"
	case LT:
		return "lt"
	case CeilDiv:
		return "ceildiv"
	default:
		return "invalid"
	}
}

// ParallelKind is the parallelization of an iteration domain.
type ParallelKind uint

// Parallelization of an iteration domain.
const (
	Serial ParallelKind = iota
	BIDx
	BIDy
	BIDz
	TIDx
	TIDy
	TIDz
	Vectorize
	Unroll
)

// String returns a string representation of a parallel kind.
func (k ParallelKind) String() string {
	switch k {
	case BIDx:
		return "blockIdx.x"
	case BIDy:
		return "blockIdx.y"
	case BIDz:
		return "blockIdx.z"
	case TIDx:
		return "threadIdx.x"
	case TIDy:
		return "threadIdx.y"
	case TIDz:
		return "threadIdx.z"
	case Vectorize:
		return "vectorize"
	case Unroll:
		return "unroll"
	default:
		return "serial"
	}
}

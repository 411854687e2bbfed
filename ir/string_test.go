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

	"github.com/gx-org/fuser/ir"
	"github.com/gx-org/fuser/ir/irhelper"
	"github.com/gx-org/fuser/ir/irkind"
)

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		stmt ir.Statement
		want string
	}{
		{stmt: irhelper.Int(3), want: "int(3)"},
		{stmt: irhelper.SymbolicInt(), want: "int(?)"},
		{stmt: irhelper.Float(1.5), want: "float(1.5)"},
		{
			stmt: &ir.IterDomain{Size: irhelper.Int(8), Reduction: true},
			want: "r{int(8)}",
		},
		{
			stmt: &ir.IterDomain{Size: irhelper.Int(8), Parallel: irkind.TIDx},
			want: "i{int(8)}@threadIdx.x",
		},
		{
			stmt: irhelper.TensorDomain(16, 8),
			want: "[i{int(16)}, i{int(8)}]",
		},
		{
			stmt: irhelper.Tensor(irkind.Float, 16),
			want: "tensor<float>[i{int(16)}]",
		},
		{
			stmt: irhelper.Merge(irhelper.TensorDomain(16, 8), 0),
			want: "[i{int(?)}] = merge([i{int(16)}, i{int(8)}], axis=0)",
		},
		{
			stmt: irhelper.BinaryOp(irkind.Add, irhelper.Float(0), irhelper.Float(1), irhelper.Float(2)),
			want: "float(0) = add(float(1), float(2))",
		},
		{
			stmt: irhelper.ForLoop(irhelper.IterDomain(4),
				irhelper.UnaryOp(irkind.Neg, irhelper.Float(0), irhelper.Float(1)),
			),
			want: "for int(?) in i{int(4)} {\n\tfloat(0) = neg(float(1))\n}",
		},
	}
	for _, test := range tests {
		if got := test.stmt.String(); got != test.want {
			t.Errorf("statement string is %q but want %q", got, test.want)
		}
	}
}

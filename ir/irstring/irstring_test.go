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

package irstring_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gx-org/fuser/ir"
	"github.com/gx-org/fuser/ir/irhelper"
	"github.com/gx-org/fuser/ir/irkind"
	"github.com/gx-org/fuser/ir/irstring"
)

func TestStringNestedTree(t *testing.T) {
	domain := irhelper.TensorDomain(16, 8)
	loop := irhelper.ForLoop(irhelper.IterDomain(4),
		irhelper.Split(domain, 1, 4),
		irhelper.IfThenElse(irhelper.Int(1),
			irhelper.UnaryOp(irkind.Neg, irhelper.Float(0), irhelper.Float(1)),
		),
	)
	got, err := irstring.String(loop)
	if err != nil {
		t.Fatalf("cannot print the loop: %v", err)
	}
	want := "for int(?) in i{int(4)} {\n" +
		"\t[i{int(16)}, i{int(?)}, i{int(4)}] = split([i{int(16)}, i{int(8)}], axis=1, factor=int(4))\n" +
		"\tif int(1) {\n" +
		"\t\tfloat(0) = neg(float(1))\n" +
		"\t}\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("printed tree:\n%s", diff)
	}
}

func TestStringElseBranch(t *testing.T) {
	branch := &ir.IfThenElse{
		Cond: irhelper.Int(0),
		Then: []ir.Expr{irhelper.UnaryOp(irkind.Neg, irhelper.Float(0), irhelper.Float(1))},
		Else: []ir.Expr{irhelper.UnaryOp(irkind.Cast, irhelper.Float(0), irhelper.Int(1))},
	}
	got, err := irstring.String(branch)
	if err != nil {
		t.Fatalf("cannot print the conditional: %v", err)
	}
	want := "if int(0) {\n" +
		"\tfloat(0) = neg(float(1))\n" +
		"} else {\n" +
		"\tfloat(0) = cast(int(1))\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("printed conditional:\n%s", diff)
	}
}

func TestStatements(t *testing.T) {
	stmts := []ir.Statement{
		irhelper.Float(1.5),
		irhelper.Tensor(irkind.Int, 16),
	}
	got, err := irstring.Statements(slices.Values(stmts))
	if err != nil {
		t.Fatalf("cannot print the statements: %v", err)
	}
	want := "float(1.5)\ntensor<int>[i{int(16)}]\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("printed statements:\n%s", diff)
	}
}

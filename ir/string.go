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
	"fmt"
	"strings"

	"github.com/gx-org/fuser/ir/irkind"
)

// String returns a string representation of the scalar.
func (f *Float) String() string {
	if f.Value == nil {
		return "float(?)"
	}
	return fmt.Sprintf("float(%v)", *f.Value)
}

// String returns a string representation of the scalar.
func (i *Int) String() string {
	if i.Value == nil {
		return "int(?)"
	}
	return fmt.Sprintf("int(%d)", *i.Value)
}

// String returns a string representation of the iteration axis.
func (d *IterDomain) String() string {
	prefix := "i"
	if d.Reduction {
		prefix = "r"
	}
	s := prefix + "{" + d.Size.String() + "}"
	if d.Parallel != irkind.Serial {
		s += "@" + d.Parallel.String()
	}
	return s
}

// String returns a string representation of the domain.
func (d *TensorDomain) String() string {
	axes := make([]string, len(d.Domain))
	for i, axis := range d.Domain {
		axes[i] = axis.String()
	}
	return "[" + strings.Join(axes, ", ") + "]"
}

// String returns a string representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("tensor<%s>%s", t.DType, t.Domain)
}

// String returns a string representation of the view.
func (v *TensorView) String() string {
	return fmt.Sprintf("view(%s)%s", v.Tensor, v.Domain)
}

func (s *Split) String() string {
	return fmt.Sprintf("%s = split(%s, axis=%d, factor=%s)", s.Out, s.In, s.Axis, s.Factor)
}

func (m *Merge) String() string {
	return fmt.Sprintf("%s = merge(%s, axis=%d)", m.Out, m.In, m.Axis)
}

func (r *Reorder) String() string {
	pos := make([]string, len(r.Pos2Axis))
	for i, axis := range r.Pos2Axis {
		pos[i] = fmt.Sprintf("%d", axis)
	}
	return fmt.Sprintf("%s = reorder(%s, {%s})", r.Out, r.In, strings.Join(pos, ", "))
}

func (o *UnaryOp) String() string {
	return fmt.Sprintf("%s = %s(%s)", o.Out, o.Op, o.In)
}

func (o *BinaryOp) String() string {
	return fmt.Sprintf("%s = %s(%s, %s)", o.Out, o.Op, o.LHS, o.RHS)
}

func indent(s string) string {
	var lines []string
	for line := range strings.Lines(s) {
		lines = append(lines, "\t"+line)
	}
	return strings.Join(lines, "")
}

func blockString(exprs []Expr) string {
	stmts := make([]string, len(exprs))
	for i, expr := range exprs {
		stmts[i] = expr.String()
	}
	return strings.Join(stmts, "\n")
}

func (l *ForLoop) String() string {
	header := fmt.Sprintf("for %s in %s {", l.Index, l.Range)
	if len(l.Body) == 0 {
		return header + "}"
	}
	return header + "\n" + indent(blockString(l.Body)) + "\n}"
}

func (i *IfThenElse) String() string {
	s := fmt.Sprintf("if %s {", i.Cond)
	if len(i.Then) > 0 {
		s += "\n" + indent(blockString(i.Then)) + "\n"
	}
	s += "}"
	if len(i.Else) == 0 {
		return s
	}
	return s + " else {\n" + indent(blockString(i.Else)) + "\n}"
}

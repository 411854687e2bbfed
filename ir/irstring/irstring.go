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

// Package irstring builds a string representation of an IR tree.
//
// The printer is a pure observer: it covers every node kind through the
// const dispatch and recurses into loop and branch bodies by
// re-entering the dispatch on children.
package irstring

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gx-org/fuser/ir"
)

type printer struct {
	ir.OptInConstDispatch

	w     strings.Builder
	depth int
}

func (p *printer) line(s string) {
	p.w.WriteString(strings.Repeat("\t", p.depth))
	p.w.WriteString(s)
	p.w.WriteString("\n")
}

func (p *printer) block(exprs []ir.Expr) error {
	p.depth++
	defer func() { p.depth-- }()
	for _, expr := range exprs {
		if err := ir.ConstDispatchExpr(p, expr); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) HandleIterDomain(d ir.IterDomain) error {
	p.line(d.String())
	return nil
}

func (p *printer) HandleTensorDomain(d ir.TensorDomain) error {
	p.line(d.String())
	return nil
}

func (p *printer) HandleTensor(t ir.Tensor) error {
	p.line(t.String())
	return nil
}

func (p *printer) HandleTensorView(v ir.TensorView) error {
	p.line(v.String())
	return nil
}

func (p *printer) HandleFloat(f ir.Float) error {
	p.line(f.String())
	return nil
}

func (p *printer) HandleInt(i ir.Int) error {
	p.line(i.String())
	return nil
}

func (p *printer) HandleSplit(s ir.Split) error {
	p.line(s.String())
	return nil
}

func (p *printer) HandleMerge(m ir.Merge) error {
	p.line(m.String())
	return nil
}

func (p *printer) HandleReorder(r ir.Reorder) error {
	p.line(r.String())
	return nil
}

func (p *printer) HandleUnaryOp(o ir.UnaryOp) error {
	p.line(o.String())
	return nil
}

func (p *printer) HandleBinaryOp(o ir.BinaryOp) error {
	p.line(o.String())
	return nil
}

func (p *printer) HandleForLoop(l ir.ForLoop) error {
	p.line(fmt.Sprintf("for %s in %s {", l.Index, l.Range))
	if err := p.block(l.Body); err != nil {
		return err
	}
	p.line("}")
	return nil
}

func (p *printer) HandleIfThenElse(i ir.IfThenElse) error {
	p.line(fmt.Sprintf("if %s {", i.Cond))
	if err := p.block(i.Then); err != nil {
		return err
	}
	if len(i.Else) == 0 {
		p.line("}")
		return nil
	}
	p.line("} else {")
	if err := p.block(i.Else); err != nil {
		return err
	}
	p.line("}")
	return nil
}

// String returns a string representation of a statement,
// one line per node, with loop and branch bodies indented.
func String(stmt ir.Statement) (string, error) {
	p := &printer{}
	if err := ir.ConstDispatch(p, stmt); err != nil {
		return "", err
	}
	return p.w.String(), nil
}

// Statements returns a string representation of a sequence of statements.
func Statements(stmts iter.Seq[ir.Statement]) (string, error) {
	p := &printer{}
	for stmt := range stmts {
		if err := ir.ConstDispatch(p, stmt); err != nil {
			return "", err
		}
	}
	return p.w.String(), nil
}

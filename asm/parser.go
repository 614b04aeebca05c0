// This file is part of intcode - https://github.com/eliminmax/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package asm

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/eliminmax/intcode/vm"
)

const maxErrors = 10

// parser states
const (
	stStatement = iota // accept anything
	stOperand          // need an instruction operand
	stOrg              // need an integer or const (.org)
	stDat              // need an integer, const or label (.dat)
	stEqu              // need an integer or const (.equ value)
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type labelUse struct {
	labelSite
	offset vm.Cell
}

type label struct {
	labelSite
	uses []labelUse
}

type parser struct {
	i      []vm.Cell
	pc     int
	end    int
	s      scanner.Scanner
	state  int
	labels map[string]*label
	consts map[string]labelSite
	locals map[string]int
	fwd    map[string][]labelUse
	errs   ErrAsm

	cstName string
	cstPos  scanner.Position

	// instruction being assembled
	ins   vm.Instruction
	insPC int
	arg   int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	p.locals = make(map[string]int)
	p.fwd = make(map[string][]labelUse)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validName reports whether s can be used as a label or constant name.
func validName(s string) bool {
	if s == "" || strings.ContainsAny(s[:1], "#@:.'(") {
		return false
	}
	_, err := strconv.ParseInt(s, 0, 64)
	return err != nil
}

// value parses an integer, a char literal or a constant.
func (p *parser) value(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(p.s.Position, "Invalid char literal "+s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// splitOffset splits label references of the form name+n or name-n.
func splitOffset(s string) (name string, offset vm.Cell) {
	k := strings.LastIndexAny(s, "+-")
	if k <= 0 || !isNumber(s[k+1:]) || isNumber(s[:k]) {
		return s, 0
	}
	n, err := strconv.ParseInt(s[k:], 10, 64)
	if err != nil {
		return s, 0
	}
	return s[:k], vm.Cell(n)
}

// ref compiles a reference to a label: the label address plus an optional
// offset. Local labels are referenced as 1+ (next definition of :1) or 1-
// (previous definition of :1).
func (p *parser) ref(s string) {
	pos := p.s.Position
	if l := len(s); l > 1 && isNumber(s[:l-1]) {
		n := s[:l-1]
		switch s[l-1] {
		case '-':
			addr, ok := p.locals[n]
			if !ok {
				p.error(pos, "Undefined local label "+s)
			}
			p.write(vm.Cell(addr))
			return
		case '+':
			p.fwd[n] = append(p.fwd[n], labelUse{labelSite{pos, p.pc}, 0})
			p.write(0)
			return
		}
	}
	name, off := splitOffset(s)
	if !validName(name) {
		p.error(pos, "Invalid label "+s)
		p.write(0)
		return
	}
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{labelSite{pos, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelUse{labelSite{pos, p.pc}, off})
	p.write(0)
}

// data compiles a raw cell: an integer, char, constant or label address.
func (p *parser) data(s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	p.ref(s)
}

func (p *parser) define(name string) {
	pos := p.s.Position
	if isNumber(name) {
		p.locals[name] = p.pc
		for _, u := range p.fwd[name] {
			p.i[u.address] = vm.Cell(p.pc)
		}
		delete(p.fwd, name)
		return
	}
	if !validName(name) {
		p.error(pos, "Invalid label name :"+name)
		return
	}
	if cst, ok := p.consts[name]; ok {
		p.error(pos, "Label redefinition, previously defined as a constant here: "+cst.pos.String()+": "+name)
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.error(pos, "Label redefinition, previous definition here: "+l.pos.String()+": "+name)
		}
		l.address = p.pc
		l.pos = pos
		return
	}
	p.labels[name] = &label{labelSite{pos, p.pc}, nil}
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		p.state = stOrg
	case ".dat":
		p.state = stDat
	case ".equ":
		t := p.s.Scan()
		name := p.s.TokenText()
		if t != scanner.Ident || !validName(name) {
			p.error(p.s.Position, ".equ: expected identifier, got "+name)
			return
		}
		if l, ok := p.labels[name]; ok {
			p.error(p.s.Position, ".equ: redefinition, previously defined/used as a label here: "+l.pos.String()+": "+name)
			return
		}
		p.cstName = name
		p.cstPos = p.s.Position
		p.state = stEqu
	default:
		p.error(p.s.Position, "Unknown directive "+s)
	}
}

func (p *parser) instruction(op vm.Opcode) {
	p.ins = vm.Instruction{Op: op}
	p.insPC = p.pc
	p.arg = 0
	p.write(p.ins.Word())
	if op.Params() > 0 {
		p.state = stOperand
	}
}

// isTarget reports whether the n-th parameter (0 based) of op is a write
// target.
func isTarget(op vm.Opcode, n int) bool {
	switch op {
	case vm.OpAdd, vm.OpMul, vm.OpLt, vm.OpEq:
		return n == 2
	case vm.OpIn:
		return n == 0
	}
	return false
}

func (p *parser) operand(s string) {
	mode := vm.Position
	switch s[0] {
	case '#':
		mode = vm.Immediate
		s = s[1:]
	case '@':
		mode = vm.Relative
		s = s[1:]
	}
	_, isOp := lookupOpcode(s)
	switch {
	case s == "":
		p.error(p.s.Position, "Missing operand value "+p.s.TokenText())
		p.write(0)
	case isOp || s[0] == ':' || s[0] == '.':
		p.error(p.s.Position, "Unexpected operand "+s)
		p.write(0)
	case mode == vm.Immediate && isTarget(p.ins.Op, p.arg):
		p.error(p.s.Position, "Immediate write target "+p.s.TokenText())
		p.write(0)
	default:
		p.data(s)
	}
	p.ins.Modes[p.arg] = mode
	p.arg++
	if p.arg == p.ins.Op.Params() {
		p.i[p.insPC] = p.ins.Word()
		p.state = stStatement
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.error(p.s.Position, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		if s == "(" {
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		switch p.state {
		case stOperand:
			p.operand(s)
			continue
		case stOrg, stEqu:
			v, ok := p.value(s)
			if !ok {
				p.error(p.s.Position, "Expected integer or constant, got "+s)
			} else if p.state == stOrg {
				if v < 0 {
					p.error(p.s.Position, "Negative .org address "+s)
				} else {
					p.pc = int(v)
				}
			} else {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
			p.state = stStatement
			continue
		case stDat:
			p.data(s)
			p.state = stStatement
			continue
		}

		switch {
		case s[0] == ':':
			p.define(s[1:])
		case s[0] == '.':
			p.directive(s)
		default:
			if op, ok := lookupOpcode(s); ok {
				p.instruction(op)
			} else {
				p.data(s)
			}
		}
	}

	if p.state != stStatement {
		p.error(p.s.Pos(), "Unexpected end of input")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address) + u.offset
		}
	}
	names = names[:0]
	for n := range p.fwd {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		p.error(p.fwd[n][0].pos, "Undefined local label "+n+"+")
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return vm.Image(p.i[:p.end]), nil
}

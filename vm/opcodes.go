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

package vm

import (
	"strconv"
	"strings"
)

// Opcode is the operation selector of an instruction: the two lowest decimal
// digits of the instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJnz
	OpJz
	OpLt
	OpEq
	OpRb
	OpHalt Opcode = 99
)

var opcodes = map[Opcode]struct {
	name   string
	params int
}{
	OpAdd:  {"add", 3},
	OpMul:  {"mul", 3},
	OpIn:   {"in", 1},
	OpOut:  {"out", 1},
	OpJnz:  {"jnz", 2},
	OpJz:   {"jz", 2},
	OpLt:   {"lt", 3},
	OpEq:   {"eq", 3},
	OpRb:   {"rb", 1},
	OpHalt: {"halt", 0},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for op, d := range opcodes {
		opcodeIndex[d.name] = op
	}
}

// LookupOpcode returns the opcode with the given mnemonic, as returned by
// Opcode.String.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Params returns the number of parameters taken by op.
func (op Opcode) Params() int {
	return opcodes[op].params
}

func (op Opcode) String() string {
	if d, ok := opcodes[op]; ok {
		return d.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Mode is a parameter addressing mode.
type Mode Cell

// Parameter modes.
const (
	Position  Mode = iota // parameter is the address of the value
	Immediate             // parameter is the value
	Relative              // parameter is an offset from the relative base
)

// Prefix returns the operand prefix used for m in assembly: none for position
// mode, '#' for immediate mode and '@' for relative mode.
func (m Mode) Prefix() string {
	switch m {
	case Immediate:
		return "#"
	case Relative:
		return "@"
	}
	return ""
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Len returns the number of cells used by the instruction, including its
// parameters.
func (in Instruction) Len() Cell {
	return Cell(1 + in.Op.Params())
}

// Word encodes in back to an instruction word. Trailing position modes are
// omitted, as is customary.
func (in Instruction) Word() Cell {
	w := Cell(in.Op)
	f := Cell(100)
	for _, m := range in.Modes[:in.Op.Params()] {
		w += Cell(m) * f
		f *= 10
	}
	return w
}

// Format returns the assembly text of in given the raw values of its
// parameters. Missing parameters are rendered as "???".
func (in Instruction) Format(params []Cell) string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	for n := 0; n < in.Op.Params(); n++ {
		b.WriteByte(' ')
		if n >= len(params) {
			b.WriteString("???")
			continue
		}
		b.WriteString(in.Modes[n].Prefix())
		b.WriteString(strconv.FormatInt(int64(params[n]), 10))
	}
	return b.String()
}

// Decode decodes an instruction word. It returns an UnknownOpcode Fault if the
// opcode is not valid, or an UnknownMode Fault if any of the three mode
// positions holds something other than 0, 1 or 2, whether or not the
// instruction uses that parameter. The third mode is everything above the
// fourth digit, so 300004 is invalid.
func Decode(word Cell) (Instruction, error) {
	in := Instruction{Op: Opcode(word % 100)}
	if !in.Op.Valid() {
		f := newFault(UnknownOpcode, Cell(in.Op))
		f.Word = word
		return in, f
	}
	m := word / 100
	for n := range in.Modes {
		d := m % 10
		if n == len(in.Modes)-1 {
			d = m
		}
		if d < 0 || d > 2 {
			f := newFault(UnknownMode, d)
			f.Word = word
			return in, f
		}
		in.Modes[n] = Mode(d)
		m /= 10
	}
	return in, nil
}

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
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/eliminmax/intcode/internal/ici"
	"github.com/eliminmax/intcode/vm"
)

// aliases are alternate mnemonics, on top of the vm opcode names.
var aliases = map[string]vm.Opcode{
	"inp": vm.OpIn,
	"jt":  vm.OpJnz,
	"jf":  vm.OpJz,
	"slt": vm.OpLt,
	"seq": vm.OpEq,
	"arb": vm.OpRb,
	"hlt": vm.OpHalt,
}

func lookupOpcode(name string) (vm.Opcode, bool) {
	if op, ok := vm.LookupOpcode(name); ok {
		return op, true
	}
	op, ok := aliases[name]
	return op, ok
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 error
// messages along with their position in the source code.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (img vm.Image, err error) {
	p := newParser()
	img, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given image to the specified io.Writer and returns the position of the next
// instruction and any write error. Cells that would not assemble back to the
// same values are written as .dat directives, one cell at a time: undecodable
// words, instructions truncated by the end of the image, and words with
// nonzero unused mode digits or immediate write targets.
func Disassemble(img vm.Image, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	in, err := vm.Decode(img[pc])
	end := pc + int(in.Len())
	if err != nil || end > len(img) || !assembles(in, img[pc]) {
		io.WriteString(ew, ".dat "+strconv.FormatInt(int64(img[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, in.Format(img[pc+1:end]))
	return end, ew.Err
}

// assembles reports whether the assembly text of in compiles back to word:
// unused mode digits must be 0 and write targets cannot be immediate.
func assembles(in vm.Instruction, word vm.Cell) bool {
	if in.Word() != word {
		return false
	}
	for n := 0; n < in.Op.Params(); n++ {
		if in.Modes[n] == vm.Immediate && isTarget(in.Op, n) {
			return false
		}
	}
	return true
}

// DisassembleAll writes a disassembly of all cells in the given image to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
func DisassembleAll(img vm.Image, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

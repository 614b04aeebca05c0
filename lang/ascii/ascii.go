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

// Package ascii provides utility functions and types to run Intcode programs
// that talk ASCII: text input is fed one character per value, terminated by a
// newline, and output values in the range [0, 127] are characters.
package ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/eliminmax/intcode/internal/ici"
	"github.com/eliminmax/intcode/vm"
)

// Encode returns the code points of s as input values.
func Encode(s string) []vm.Cell {
	c := make([]vm.Cell, 0, len(s))
	for _, r := range s {
		c = append(c, vm.Cell(r))
	}
	return c
}

// EncodeLine is like Encode, but appends a newline to s.
func EncodeLine(s string) []vm.Cell {
	return append(Encode(s), '\n')
}

// IsText reports whether v is an ASCII character.
func IsText(v vm.Cell) bool {
	return v >= 0 && v < 128
}

// Decode splits program output into text and other values. Values that are
// not ASCII characters are returned in extra, in order.
func Decode(out []vm.Cell) (text string, extra []vm.Cell) {
	var b strings.Builder
	for _, v := range out {
		if IsText(v) {
			b.WriteByte(byte(v))
		} else {
			extra = append(extra, v)
		}
	}
	return b.String(), extra
}

// Console runs an ASCII program interactively. Program output is written as
// text, non-ASCII values in decimal on a line of their own, and whenever the
// program needs input a line is read from the input.
type Console struct {
	i *vm.Instance
	r *bufio.Reader
	w *ici.ErrWriter
}

// NewConsole returns a new Console running i with the given input and output.
func NewConsole(i *vm.Instance, r io.Reader, w io.Writer) *Console {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Console{i, br, ici.NewErrWriter(w)}
}

func (c *Console) write(out []vm.Cell) {
	var b []byte
	for _, v := range out {
		if IsText(v) {
			b = append(b, byte(v))
			continue
		}
		if len(b) > 0 && b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, '\n')
	}
	c.w.Write(b)
}

// Run runs the program until it halts, starting with the given input values.
// Lines of input are read only when the program asks for more. A last line
// without a terminating newline is sent as if it had one.
//
// Run returns io.EOF if the input is exhausted before the program halts, the
// Fault if the program fails, or any write error.
func (c *Console) Run(in ...vm.Cell) error {
	for {
		out, st, err := c.i.Run(in...)
		c.write(out)
		if err != nil {
			return err
		}
		if c.w.Err != nil {
			return c.w.Err
		}
		if st == vm.Halted {
			return nil
		}
		line, err := c.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return err
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		in = Encode(line)
	}
}

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
	"io"
	"strconv"

	"github.com/eliminmax/intcode/internal/ici"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode machine: memory, instruction pointer and
// relative base. Everything needed to resume a paused program is held in the
// Instance.
type Instance struct {
	PC       Cell // Program Counter (aka. Instruction Pointer)
	mem      *Memory
	rb       Cell
	halted   bool
	insCount int64
	trace    *ici.ErrWriter
}

// Option interface
type Option func(*Instance) error

// Trace enables execution tracing to w. Each executed instruction writes one
// line with the PC, the relative base, the raw instruction word and its
// disassembly. A nil writer disables tracing. Write errors stop the trace but
// do not affect execution.
func Trace(w io.Writer) Option {
	return func(i *Instance) error {
		i.SetTrace(w)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine instance running the given program image.
// The image is copied, so the caller may reuse it.
//
// Options will be set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{mem: NewMemory(img)}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// SetTrace switches execution tracing on (w != nil) or off (w == nil).
func (i *Instance) SetTrace(w io.Writer) {
	if w == nil {
		i.trace = nil
		return
	}
	i.trace = ici.NewErrWriter(w)
}

// Fork returns a copy of i that shares no state with it. Running either one
// never affects the other. The trace setting is not inherited.
func (i *Instance) Fork() *Instance {
	return &Instance{
		PC:       i.PC,
		mem:      i.mem.Clone(),
		rb:       i.rb,
		halted:   i.halted,
		insCount: i.insCount,
	}
}

// Poke writes v at address addr, e.g. to patch the program before running it,
// or between two calls to Run.
func (i *Instance) Poke(addr, v Cell) error {
	return i.mem.Write(addr, v)
}

// Peek returns the value at address addr.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.mem.Read(addr)
}

// Image returns a copy of the memory contents up to the high-water mark.
func (i *Instance) Image() Image {
	return i.mem.Image()
}

// RelativeBase returns the current relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// Halted reports whether the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Equal reports whether i and o are in the same state: same PC, relative
// base, halt status and memory contents.
func (i *Instance) Equal(o *Instance) bool {
	return i.PC == o.PC && i.rb == o.rb && i.halted == o.halted && i.mem.Equal(o.mem)
}

// Dump writes the machine state to w in a line based format:
//
//	pc 4
//	rb 0
//	halted true
//	mem 2,0,0,0,99
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "pc "+strconv.FormatInt(int64(i.PC), 10)+"\n")
	io.WriteString(ew, "rb "+strconv.FormatInt(int64(i.rb), 10)+"\n")
	io.WriteString(ew, "halted "+strconv.FormatBool(i.halted)+"\n")
	io.WriteString(ew, "mem ")
	ici.WriteInts(ew, ",", i.Image().Ints())
	_, err := ew.Write([]byte{'\n'})
	return err
}

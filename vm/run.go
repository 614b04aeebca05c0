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
	"fmt"
	"strconv"
)

// Status tells why a call to Run returned.
type Status int

// Run return status.
const (
	AwaitingInput Status = iota // the program needs more input
	Halted                      // the program executed a halt instruction
	Faulted                     // the program is malformed, see the returned Fault
)

var statusNames = [...]string{
	AwaitingInput: "awaiting input",
	Halted:        "halted",
	Faulted:       "faulted",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// fetch decodes the instruction at PC.
func (i *Instance) fetch() (Cell, Instruction, error) {
	word, err := i.mem.Read(i.PC)
	if err != nil {
		return word, Instruction{}, i.fault(err, word)
	}
	in, err := Decode(word)
	if err != nil {
		return word, in, i.fault(err, word)
	}
	return word, in, nil
}

// fault sets the execution context of a Fault.
func (i *Instance) fault(err error, word Cell) error {
	if f, ok := err.(*Fault); ok {
		f.PC, f.Word = i.PC, word
	}
	return err
}

// read returns the value of the n-th parameter (1 based) of in.
func (i *Instance) read(in Instruction, n int) (Cell, error) {
	p, err := i.mem.Read(i.PC + Cell(n))
	if err != nil {
		return 0, err
	}
	switch in.Modes[n-1] {
	case Immediate:
		return p, nil
	case Relative:
		return i.mem.Read(i.rb + p)
	default:
		return i.mem.Read(p)
	}
}

// target returns the address designated by the n-th parameter (1 based) of in.
func (i *Instance) target(in Instruction, n int) (Cell, error) {
	p, err := i.mem.Read(i.PC + Cell(n))
	if err != nil {
		return 0, err
	}
	var addr Cell
	switch in.Modes[n-1] {
	case Immediate:
		return 0, newFault(ImmediateWrite, p)
	case Relative:
		addr = i.rb + p
	default:
		addr = p
	}
	if addr < 0 {
		return 0, newFault(NegativeAddress, addr)
	}
	return addr, nil
}

// exec executes in. Parameters are resolved before anything is written to
// memory, so that a faulting instruction leaves the machine untouched.
func (i *Instance) exec(in Instruction, input, output *[]Cell) error {
	switch in.Op {
	case OpAdd, OpMul, OpLt, OpEq:
		a, err := i.read(in, 1)
		if err != nil {
			return err
		}
		b, err := i.read(in, 2)
		if err != nil {
			return err
		}
		dst, err := i.target(in, 3)
		if err != nil {
			return err
		}
		var v Cell
		switch in.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLt:
			if a < b {
				v = 1
			}
		case OpEq:
			if a == b {
				v = 1
			}
		}
		if err = i.mem.Write(dst, v); err != nil {
			return err
		}
		i.PC += 4
	case OpIn:
		dst, err := i.target(in, 1)
		if err != nil {
			return err
		}
		if err = i.mem.Write(dst, (*input)[0]); err != nil {
			return err
		}
		*input = (*input)[1:]
		i.PC += 2
	case OpOut:
		v, err := i.read(in, 1)
		if err != nil {
			return err
		}
		*output = append(*output, v)
		i.PC += 2
	case OpJnz, OpJz:
		v, err := i.read(in, 1)
		if err != nil {
			return err
		}
		if (v != 0) == (in.Op == OpJnz) {
			to, err := i.read(in, 2)
			if err != nil {
				return err
			}
			if to < 0 {
				return newFault(NegativeAddress, to)
			}
			i.PC = to
		} else {
			i.PC += 3
		}
	case OpRb:
		v, err := i.read(in, 1)
		if err != nil {
			return err
		}
		i.rb += v
		i.PC += 2
	case OpHalt:
		i.halted = true
	}
	return nil
}

// Run executes the program, starting at the current PC, until it halts, faults
// or needs input that is not available. The input values are consumed in
// order by input instructions; values left over when the program halts are
// discarded. Run returns the values output during this call.
//
// When Run returns with status AwaitingInput, the PC points to the input
// instruction that could not proceed. Calling Run again with more input
// resumes execution as if that input had been available in the first place.
//
// Once the program has halted, Run is a no-op that returns (nil, Halted, nil).
//
// If the program is malformed, Run returns the values output so far, status
// Faulted and a *Fault. The instruction that triggered it has not modified the
// machine state.
//
// Run does not return until one of the above conditions is met. Bounding
// programs that loop forever without any I/O is up to the caller.
func (i *Instance) Run(input ...Cell) ([]Cell, Status, error) {
	if i.halted {
		return nil, Halted, nil
	}
	var output []Cell
	for {
		word, in, err := i.fetch()
		if err != nil {
			return output, Faulted, err
		}
		if in.Op == OpIn && len(input) == 0 {
			return output, AwaitingInput, nil
		}
		if i.trace != nil {
			i.traceOp(word, in)
		}
		if err = i.exec(in, &input, &output); err != nil {
			return output, Faulted, i.fault(err, word)
		}
		i.insCount++
		if i.halted {
			return output, Halted, nil
		}
	}
}

// Lookahead runs the program with no input. It is typically used right after
// New to execute the program's initialization code.
func (i *Instance) Lookahead() ([]Cell, Status, error) {
	return i.Run()
}

// Precompute executes all instructions up to, but not including, the first in,
// out or halt instruction.
func (i *Instance) Precompute() error {
	for !i.halted {
		word, in, err := i.fetch()
		if err != nil {
			return err
		}
		switch in.Op {
		case OpIn, OpOut, OpHalt:
			return nil
		}
		if i.trace != nil {
			i.traceOp(word, in)
		}
		if err = i.exec(in, nil, nil); err != nil {
			return i.fault(err, word)
		}
		i.insCount++
	}
	return nil
}

func (i *Instance) traceOp(word Cell, in Instruction) {
	params := make([]Cell, in.Op.Params())
	for n := range params {
		params[n], _ = i.mem.Read(i.PC + Cell(n+1))
	}
	fmt.Fprintf(i.trace, "%8d\trb %-6d\t%05d\t%s\n", i.PC, i.rb, word, in.Format(params))
}

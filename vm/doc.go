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

// Package vm implements the Intcode virtual machine.
//
// An Instance holds the complete state of a machine: its memory, the
// instruction pointer (PC) and the relative base. Programs communicate with Go
// code through two ordered streams of Cells: the input values passed to Run and
// the output values it returns.
//
// Execution is resumable. When the program executes an input instruction and
// no input value is left, Run returns with status AwaitingInput, leaving the PC
// on that same instruction. The next call to Run picks up where the previous
// one stopped, so feeding input in several batches produces exactly the same
// outputs as feeding it all at once:
//
//	i, _ := vm.New(img)
//	out, st, err := i.Run()      // run init code until input is needed
//	for err == nil && st == vm.AwaitingInput {
//		out, st, err = i.Run(nextInput(out)...)
//	}
//
// Fork makes an independent copy of an Instance, for instance to explore
// several futures from a single checkpoint. Forking copies every non-blank
// memory page (512 cells each), so its cost grows with the amount of memory the
// program has touched, not with the highest address used.
//
// The Instance type is not safe for concurrent use. Separate instances, forked
// or not, share no state and can be run from different goroutines.
//
// The PC is not incremented in a single place, rather each opcode deals with
// the PC as needed. When a Fault is returned, the PC points to the instruction
// that triggered it.
package vm

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

	"github.com/pkg/errors"
)

// FaultKind describes the nature of a Fault.
type FaultKind int

// Fault kinds.
const (
	NegativeAddress FaultKind = iota + 1 // a resolved address was negative
	UnknownOpcode                        // invalid operation selector
	UnknownMode                          // parameter mode digit not in {0, 1, 2}
	ImmediateWrite                       // immediate mode used as a write target
)

var faultNames = [...]string{
	NegativeAddress: "negative address",
	UnknownOpcode:   "unknown opcode",
	UnknownMode:     "unknown parameter mode",
	ImmediateWrite:  "write to immediate parameter",
}

func (k FaultKind) String() string {
	if k > 0 && int(k) < len(faultNames) {
		return faultNames[k]
	}
	return fmt.Sprintf("FaultKind(%d)", int(k))
}

// Fault is returned by Run when the program being executed is malformed. A
// Fault is not recoverable: the Instance should be discarded.
type Fault struct {
	Kind  FaultKind
	PC    Cell // address of the faulting instruction, -1 outside of Run
	Word  Cell // instruction word at PC
	Value Cell // offending address, opcode, mode digit or parameter
}

func newFault(kind FaultKind, v Cell) *Fault {
	return &Fault{Kind: kind, PC: -1, Value: v}
}

func (f *Fault) Error() string {
	var msg string
	switch f.Kind {
	case ImmediateWrite:
		msg = fmt.Sprintf("%v #%d", f.Kind, f.Value)
	default:
		msg = fmt.Sprintf("%v %d", f.Kind, f.Value)
	}
	if f.PC < 0 {
		return msg
	}
	return fmt.Sprintf("@pc=%d [%d]: %s", f.PC, f.Word, msg)
}

// IsFault reports whether the cause of err is a Fault of the given kind. A
// kind of 0 matches any Fault.
func IsFault(err error, kind FaultKind) bool {
	f, ok := errors.Cause(err).(*Fault)
	return ok && (kind == 0 || f.Kind == kind)
}

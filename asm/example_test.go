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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/eliminmax/intcode/asm"
	"github.com/eliminmax/intcode/vm"
)

// Shows off some of the assembler features.
func ExampleAssemble() {
	code := `
		( a constant definition. Does not generate any code on its own )
		.equ ANSWER 42

		in   x				( read a value into x )
		add  x #ANSWER @0	( relative base is 0, so this overwrites the in instruction )
		out  @0
		rb   #-3
		jz   #0 #end
		.dat 'z'			( never executed )
:end	halt
:x							( variable past the end of the image )
`

	img, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(img)
	asm.DisassembleAll(img, 0, os.Stdout)

	i, err := vm.New(img)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, st, err := i.Run(5)
	fmt.Println(out, st, err)

	// Output:
	// 3,15,21001,15,42,0,204,0,109,-3,1106,0,14,122,99
	//          0	in 15
	//          2	add 15 #42 @0
	//          6	out @0
	//          8	rb #-3
	//         10	jz #0 #14
	//         13	.dat 122
	//         14	halt
	// [47] halted <nil>
}

func ExampleDisassemble() {
	img, _ := vm.ParseString("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	for pc := 0; pc < len(img); {
		fmt.Printf("% 4d\t", pc)
		pc, _ = asm.Disassemble(img, pc, os.Stdout)
		fmt.Println()
	}

	// truncated instruction
	for pc, img := 0, (vm.Image{1101, 1}); pc < len(img); {
		pc, _ = asm.Disassemble(img, pc, os.Stdout)
		fmt.Println()
	}

	// Output:
	//    0	rb #1
	//    2	out @-1
	//    4	add 100 #1 100
	//    8	eq 100 #16 101
	//   12	jz 101 #0
	//   15	halt
	// .dat 1101
	// .dat 1
}

// Local labels can be defined more than once. A reference to 1+ resolves to
// the next definition of :1, a reference to 1- to the previous one.
func Example_locals() {
	code := `
:1	jz #0 #1+
:2	jz #0 #1-
:1	jz #0 #2+
:2	jz #0 #1-
`
	img, err := asm.Assemble("locals", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	asm.DisassembleAll(img, 0, os.Stdout)

	// Output:
	//          0	jz #0 #6
	//          3	jz #0 #0
	//          6	jz #0 #9
	//          9	jz #0 #6
}

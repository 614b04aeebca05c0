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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	alias	params	description
//	------	---	-----	------	------------------------------------------------------------
//	1	add		a b c	c = a + b
//	2	mul		a b c	c = a * b
//	3	in	inp	a	read next input value into a
//	4	out		a	output a
//	5	jnz	jt	a b	jump to b if a != 0
//	6	jz	jf	a b	jump to b if a == 0
//	7	lt	slt	a b c	c = 1 if a < b, else 0
//	8	eq	seq	a b c	c = 1 if a == b, else 0
//	9	rb	arb	a	add a to the relative base
//	99	halt	hlt		stop the program
//
// Operands:
//
// The addressing mode of an operand is given by its prefix:
//
//	10	position mode: the value at address 10
//	#10	immediate mode: the value 10
//	@10	relative mode: the value at address relative base + 10
//
// The instruction word is built from the opcode and the operand modes, so
// "add #1 @-2 x" compiles as 2101 followed by the three operand values.
// Immediate operands are rejected for write targets (the last operand of add,
// mul, lt and eq, and the operand of in).
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space. That is:
//
//	( this is a valid comment )
//	( this is a
//	  rather long
//	  multiline comment )
//
// Literals and label/const identifiers:
//
// The parser behaves almost like a Forth parser: input is split at white space
// and the resulting tokens are interpreted in order. Integers are parsed with
// strconv.ParseInt with base 0, so 0x27, 0666 or -5 are valid. Char literals
// like 'a' or '\n' compile to their code point.
//
// A token that is not a mnemonic, a directive or a label definition compiles
// as a raw cell: an integer, char, constant or the address of a label.
//
// Labels:
//
// Labels are defined with a leading colon, e.g. ":loop", and referenced by
// name. References may carry an offset: "loop+1" is the address following
// loop. Labels can be used before they are defined.
//
// Local labels are labels whose name is a number. They can be defined several
// times and are referenced as "1+" (next definition of :1) or "1-" (previous
// definition of :1).
//
// Directives:
//
//	.org n		set the compilation address to n
//	.dat v		compile v as a raw cell
//	.equ NAME v	define constant NAME with value v
//
// Since memory is zero-initialized, labels defined past the end of the code
// work as variables without any .dat directive.
package asm

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

// The intcode command line tool runs Intcode programs, as found in the
// Advent of Code 2019 puzzles. It is a showcase for the package
// github.com/eliminmax/intcode/vm.
//
// Usage:
//
//	intcode [options] program
//
//	-ascii
//		  ASCII mode: input and output are text
//	-config filename
//		  load run profile from YAML file filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble the program instead of running it
//	-dump
//		  dump machine state upon exit
//	-graph filename
//		  write a Graphviz rendering of the final machine state to filename
//	-input values
//		  comma separated input values fed before anything else (can be specified multiple times)
//	-o filename
//		  save the final memory image to filename
//	-poke addr=value
//		  set memory cell before running, as addr=value (can be specified multiple times)
//	-statsview address
//		  serve runtime statistics on address, e.g. localhost:12600 (needs the statsview build tag)
//	-trace filename
//		  write an execution trace to filename (- for stderr)
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// The program file holds comma separated base 10 integers.
//
// In numeric mode, output values are printed one per line. When the program
// needs input, values from -input are used first, then values read from the
// -with files in order of appearance on the command line, then from stdin.
// Values read from files are separated by white space or commas. If stdin is a
// terminal, a "? " prompt is written to stderr before reading from it.
//
// -ascii: input and output are text. Input lines are fed one character per
// value, terminated by a newline, and output values outside of the ASCII range
// are printed in decimal on a line of their own.
//
// -poke: patch memory after loading, e.g. -poke 1=12 -poke 2=2.
//
// Running out of input while the program waits for more is not an error: the
// tool exits normally, and -dump, -o and -graph apply to the paused machine.
//
// -dump: writes the machine state to stdout upon exit:
//
//	pc 4
//	rb 0
//	halted true
//	mem 2,0,0,0,99
//	instructions 2
//
// -trace: writes one line per executed instruction with the PC, the relative
// base, the raw instruction word and its disassembly.
//
// -config: a YAML run profile. Keys are program, input, with, poke, ascii,
// trace, dump and output. Options given on the command line take precedence:
//
//	program: day02.ic
//	poke:
//	  1: 12
//	  2: 2
//	dump: true
//
// -debug: will print a full stacktrace should the program fail, along with the
// machine state.
package main

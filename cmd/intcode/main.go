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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/eliminmax/intcode/asm"
	"github.com/eliminmax/intcode/internal/statsview"
	"github.com/eliminmax/intcode/lang/ascii"
	"github.com/eliminmax/intcode/vm"
	"github.com/pkg/errors"
)

var debug bool

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if w, err := i.Peek(i.PC); err == nil {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, instructions: %v\n", i.PC, w, i.RelativeBase(), i.InstructionCount())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, RB: %v, instructions: %v\n", i.PC, i.RelativeBase(), i.InstructionCount())
		}
	}
	os.Exit(1)
}

// openTrace opens the trace output. "-" is the standard error.
func openTrace(fileName string) (io.Writer, func(), error) {
	if fileName == "-" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.Create(fileName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "trace")
	}
	w := bufio.NewWriter(f)
	return w, func() {
		w.Flush()
		f.Close()
	}, nil
}

// run runs i in numeric mode: output values are printed one per line, and
// when the program needs input, values are read from src.
func run(i *vm.Instance, in []vm.Cell, src *source, w *bufio.Writer) error {
	b := make([]byte, 0, 24)
	for {
		out, st, err := i.Run(in...)
		for _, v := range out {
			b = strconv.AppendInt(b[:0], int64(v), 10)
			b = append(b, '\n')
			w.Write(b)
		}
		if err != nil {
			return err
		}
		if st == vm.Halted {
			return nil
		}
		// make sure any prompt from the program is visible
		if err = w.Flush(); err != nil {
			return errors.Wrap(err, "write failed")
		}
		v, err := src.next()
		if err != nil {
			return err
		}
		in = []vm.Cell{v}
	}
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		atExit(i, err)
	}()

	var o options
	flag.StringVar(&o.config, "config", "", "load run profile from YAML file `filename`")
	flag.Var(&o.input, "input", "comma separated input `values` fed before anything else (can be specified multiple times)")
	flag.Var(&o.with, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.Var(&o.poke, "poke", "set memory cell before running, as `addr=value` (can be specified multiple times)")
	flag.BoolVar(&o.ascii, "ascii", false, "ASCII mode: input and output are text")
	flag.StringVar(&o.trace, "trace", "", "write an execution trace to `filename` (- for stderr)")
	flag.BoolVar(&o.dump, "dump", false, "dump machine state upon exit")
	flag.StringVar(&o.out, "o", "", "save the final memory image to `filename`")
	flag.BoolVar(&o.disasm, "disasm", false, "disassemble the program instead of running it")
	flag.StringVar(&o.graph, "graph", "", "write a Graphviz rendering of the final machine state to `filename`")
	flag.StringVar(&o.stats, "statsview", "", "serve runtime statistics on `address`, e.g. localhost:12600 (needs the statsview build tag)")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] program\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if flag.NArg() > 0 {
		o.program = flag.Arg(0)
	}
	if o.config != "" {
		var p *profile
		if p, err = loadProfile(o.config); err != nil {
			return
		}
		p.apply(&o, set)
	}
	if o.program == "" {
		flag.Usage()
		err = errors.New("no program file")
		return
	}

	if o.stats != "" {
		if serr := statsview.Launch(o.stats); serr != nil {
			fmt.Fprintln(os.Stderr, serr)
		} else {
			fmt.Fprintf(os.Stderr, "stats server available at %s\n", statsview.URL(o.stats))
		}
	}

	img, err := vm.Load(o.program)
	if err != nil {
		return
	}
	if o.disasm {
		err = asm.DisassembleAll(img, 0, stdout)
		return
	}

	var opts []vm.Option
	if o.trace != "" {
		var w io.Writer
		var closeFn func()
		if w, closeFn, err = openTrace(o.trace); err != nil {
			return
		}
		defer closeFn()
		opts = append(opts, vm.Trace(w))
	}
	if i, err = vm.New(img, opts...); err != nil {
		return
	}
	for _, p := range o.poke {
		if err = i.Poke(p.addr, p.v); err != nil {
			return
		}
	}

	// input files first, in order of appearance on the command line, then stdin.
	var readers []io.Reader
	for _, fn := range o.with {
		var f *os.File
		if f, err = os.Open(fn); err != nil {
			return
		}
		defer f.Close()
		readers = append(readers, bufio.NewReader(f))
	}
	readers = append(readers, os.Stdin)
	interactive := isTerminal(os.Stdin.Fd())

	if o.ascii {
		var w io.Writer = stdout
		if interactive {
			w = os.Stdout
		}
		err = ascii.NewConsole(i, io.MultiReader(readers...), w).Run(o.input...)
	} else {
		var prompt io.Writer
		if interactive {
			prompt = os.Stderr
		}
		err = run(i, o.input, newSource(prompt, readers...), stdout)
	}
	// running out of input is a normal exit condition
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return
	}

	if o.dump {
		if err = dumpVM(i, stdout); err != nil {
			return
		}
	}
	if o.out != "" {
		if err = vm.Save(o.out, i.Image()); err != nil {
			return
		}
	}
	if o.graph != "" {
		err = writeGraph(o.graph, i)
	}
}

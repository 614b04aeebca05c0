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
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/eliminmax/intcode/vm"
	"github.com/pkg/errors"
)

// dumpVM dumps the machine state and instruction count to the specified
// io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	if err := i.Dump(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "instructions %d\n", i.InstructionCount())
	return err
}

// writeGraph writes a Graphviz rendering of the machine to file fileName.
func writeGraph(fileName string, i *vm.Instance) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
	}()
	memviz.Map(w, i)
	return nil
}

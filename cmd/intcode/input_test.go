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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/eliminmax/intcode/vm"
)

func TestSource(t *testing.T) {
	var prompt bytes.Buffer
	src := newSource(&prompt,
		strings.NewReader("1, 2\n3"),
		strings.NewReader(""),
		strings.NewReader("  -4\n"))
	var got []vm.Cell
	for {
		v, err := src.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if s := vm.Image(got).String(); s != "1,2,3,-4" {
		t.Errorf("expected 1,2,3,-4, got %s", s)
	}
	// prompts are only written for the last reader
	if prompt.String() != "? ? " {
		t.Errorf("expected 2 prompts, got %q", prompt.String())
	}
	if _, err := newSource(nil, strings.NewReader("x")).next(); err == nil || err == io.EOF {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestRunNumeric(t *testing.T) {
	img, _ := vm.ParseString("3,20,3,21,1,20,21,22,3,23,1,22,23,22,4,22,99")
	i, _ := vm.New(img)
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	err := run(i, []vm.Cell{1}, newSource(nil, strings.NewReader("2 3")), w)
	w.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != "6\n" {
		t.Errorf("expected 6, got %q", b.String())
	}

	i, _ = vm.New(img)
	err = run(i, nil, newSource(nil, strings.NewReader("1")), bufio.NewWriter(&b))
	if err != io.EOF || i.PC != 2 {
		t.Errorf("expected EOF at pc 2, got %v at %d", err, i.PC)
	}
}

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

package ascii_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/eliminmax/intcode/asm"
	"github.com/eliminmax/intcode/lang/ascii"
	"github.com/eliminmax/intcode/vm"
)

func TestEncode(t *testing.T) {
	c := ascii.EncodeLine("NOT A J")
	exp := []vm.Cell{'N', 'O', 'T', ' ', 'A', ' ', 'J', '\n'}
	if len(c) != len(exp) {
		t.Fatalf("expected %d values, got %d", len(exp), len(c))
	}
	for i := range exp {
		if c[i] != exp[i] {
			t.Errorf("at %d: expected %d, got %d", i, exp[i], c[i])
		}
	}
	if c := ascii.Encode(""); len(c) != 0 {
		t.Errorf("expected no values, got %d", c)
	}
}

func TestDecode(t *testing.T) {
	text, extra := ascii.Decode([]vm.Cell{'o', 'k', '\n', 19348359, '!', -1})
	if text != "ok\n!" {
		t.Errorf("expected %q, got %q", "ok\n!", text)
	}
	if len(extra) != 2 || extra[0] != 19348359 || extra[1] != -1 {
		t.Errorf("expected [19348359 -1], got %d", extra)
	}
}

// upcase reads characters, outputs them in upper case and halts after
// outputting a '.'. Outputs 1000 after each newline.
const upcase = `
:loop	in c
		lt c #'a' t
		jnz t #1+
		lt #'z' c t
		jnz t #1+
		add c #-32 c
:1		out c
		eq c #'\n' t
		jz t #2+
		out #1000
:2		eq c #'.' t
		jz t #loop
		halt
:c		.dat 0
:t
`

func setup(t *testing.T) *vm.Instance {
	t.Helper()
	img, err := asm.Assemble("upcase", strings.NewReader(upcase))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(img)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func TestConsole(t *testing.T) {
	var b bytes.Buffer
	c := ascii.NewConsole(setup(t), strings.NewReader("world.\nunused\n"), &b)
	if err := c.Run(ascii.EncodeLine("hello")...); err != nil {
		t.Fatal(err)
	}
	if exp := "HELLO\n1000\nWORLD."; b.String() != exp {
		t.Errorf("expected %q, got %q", exp, b.String())
	}
}

func TestConsole_eof(t *testing.T) {
	var b bytes.Buffer
	c := ascii.NewConsole(setup(t), strings.NewReader("abc"), &b)
	if err := c.Run(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
	if exp := "ABC\n1000\n"; b.String() != exp {
		t.Errorf("expected %q, got %q", exp, b.String())
	}
}

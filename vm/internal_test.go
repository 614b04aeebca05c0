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

import "testing"

func TestMemory(t *testing.T) {
	m := NewMemory(Image{1, 2, 3})
	if m.Len() != 3 || len(m.pages) != 1 {
		t.Fatalf("bad initial state: len %d, %d pages", m.Len(), len(m.pages))
	}
	// zero writes past the last page do not allocate
	if err := m.Write(10*pageSize, 0); err != nil {
		t.Fatal(err)
	}
	if len(m.pages) != 1 || m.Len() != 10*pageSize+1 {
		t.Errorf("zero write: len %d, %d pages", m.Len(), len(m.pages))
	}
	if err := m.Write(5*pageSize+7, 42); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Read(5*pageSize + 7); v != 42 || len(m.pages) != 2 {
		t.Errorf("expected 42 in a new page, got %d, %d pages", v, len(m.pages))
	}
	if v, err := m.Read(1 << 40); v != 0 || err != nil {
		t.Errorf("expected 0 far away, got %d, %v", v, err)
	}
	if m.Len() != 10*pageSize+1 {
		t.Errorf("read changed length to %d", m.Len())
	}
	img := m.Image()
	if len(img) != 10*pageSize+1 || img[2] != 3 || img[5*pageSize+7] != 42 {
		t.Errorf("bad image, length %d", len(img))
	}

	// blank pages are dropped by Clone but still compare equal
	m.Write(5*pageSize+7, 0)
	c := m.Clone()
	if len(c.pages) != 1 || !c.Equal(m) || !m.Equal(c) {
		t.Errorf("bad clone: %d pages", len(c.pages))
	}
	c.Write(1, 5)
	if c.Equal(m) || m.Equal(c) {
		t.Error("modified clone compares equal")
	}
	if v, _ := m.Read(1); v != 2 {
		t.Errorf("clone write leaked to source: %d", v)
	}
}

func TestMemory_zero(t *testing.T) {
	var m Memory
	if err := m.Write(3, 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Read(3); v != 1 || m.Len() != 4 {
		t.Errorf("expected 1 and length 4, got %d and %d", v, m.Len())
	}
	if err := m.Write(-1, 1); !IsFault(err, NegativeAddress) {
		t.Errorf("expected negative address fault, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	data := []struct {
		word Cell
		ins  Instruction
		kind FaultKind
	}{
		{1002, Instruction{OpMul, [3]Mode{Position, Immediate, Position}}, 0},
		{21101, Instruction{OpAdd, [3]Mode{Immediate, Immediate, Relative}}, 0},
		{204, Instruction{OpOut, [3]Mode{Relative}}, 0},
		{99, Instruction{Op: OpHalt}, 0},
		{1199, Instruction{OpHalt, [3]Mode{Immediate, Immediate}}, 0},
		{20099, Instruction{OpHalt, [3]Mode{Position, Position, Relative}}, 0},
		{0, Instruction{}, UnknownOpcode},
		{-1, Instruction{}, UnknownOpcode},
		{301, Instruction{}, UnknownMode},
		{30004, Instruction{}, UnknownMode},
		{30099, Instruction{}, UnknownMode},
		{300004, Instruction{}, UnknownMode},
		{-301, Instruction{}, UnknownOpcode},
	}
	for _, d := range data {
		ins, err := Decode(d.word)
		if d.kind != 0 {
			if !IsFault(err, d.kind) {
				t.Errorf("%d: expected %v, got %v", d.word, d.kind, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: %v", d.word, err)
			continue
		}
		if ins != d.ins {
			t.Errorf("%d: expected %v, got %v", d.word, d.ins, ins)
		}
		mod := Cell(100)
		for k := 0; k < ins.Op.Params(); k++ {
			mod *= 10
		}
		if ins.Word() != d.word%mod {
			t.Errorf("%d: encoded back as %d", d.word, ins.Word())
		}
	}
}

func TestOpcodes(t *testing.T) {
	for op := range opcodes {
		if l, ok := LookupOpcode(op.String()); !ok || l != op {
			t.Errorf("%v: lookup returned %v", op, l)
		}
	}
	if _, ok := LookupOpcode("nop"); ok {
		t.Error("found unknown mnemonic nop")
	}
	if s := Opcode(42).String(); s != "op(42)" {
		t.Errorf("expected op(42), got %s", s)
	}
	if OpHalt.Params() != 0 || OpEq.Params() != 3 || Opcode(42).Params() != 0 {
		t.Error("bad parameter count")
	}
}

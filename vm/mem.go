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

const (
	pageBits = 9
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

type page [pageSize]Cell

// Memory is an open-ended Cell address space. Every non-negative address is
// valid and reads as 0 until written to. Memory is split in pages of 512 cells,
// allocated on first write, so that programs writing far past their own code do
// not cost more than the pages they actually touch.
//
// The zero value is an empty memory ready to use.
type Memory struct {
	pages map[Cell]*page
	size  Cell
}

// NewMemory returns a new Memory initialized with a copy of img.
func NewMemory(img Image) *Memory {
	m := &Memory{pages: make(map[Cell]*page, len(img)/pageSize+1)}
	for base := 0; base < len(img); base += pageSize {
		p := new(page)
		copy(p[:], img[base:])
		m.pages[Cell(base>>pageBits)] = p
	}
	m.size = Cell(len(img))
	return m
}

// Read returns the value at address addr. Addresses that were never written
// read as 0.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, newFault(NegativeAddress, addr)
	}
	if p := m.pages[addr>>pageBits]; p != nil {
		return p[addr&pageMask], nil
	}
	return 0, nil
}

// Write stores v at address addr, growing the memory as needed.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return newFault(NegativeAddress, addr)
	}
	n := addr >> pageBits
	p := m.pages[n]
	if p == nil {
		if v != 0 {
			if m.pages == nil {
				m.pages = make(map[Cell]*page)
			}
			p = new(page)
			m.pages[n] = p
		}
	}
	if p != nil {
		p[addr&pageMask] = v
	}
	if addr >= m.size {
		m.size = addr + 1
	}
	return nil
}

// Len returns the memory high-water mark: one past the highest address loaded
// or written to. Reads never change it.
func (m *Memory) Len() Cell {
	return m.size
}

// Image returns a copy of the memory contents in the range [0, m.Len()).
func (m *Memory) Image() Image {
	img := make(Image, m.size)
	for n, p := range m.pages {
		base := n << pageBits
		if base >= m.size {
			continue
		}
		copy(img[base:], p[:])
	}
	return img
}

// Clone returns a deep copy of m. Blank pages are not copied.
func (m *Memory) Clone() *Memory {
	c := &Memory{pages: make(map[Cell]*page, len(m.pages)), size: m.size}
	for n, p := range m.pages {
		if *p == (page{}) {
			continue
		}
		np := *p
		c.pages[n] = &np
	}
	return c
}

// Equal reports whether m and o hold the same value at every address. The
// high-water mark is not compared.
func (m *Memory) Equal(o *Memory) bool {
	for n, p := range m.pages {
		if !samePage(p, o.pages[n]) {
			return false
		}
	}
	for n, p := range o.pages {
		if _, ok := m.pages[n]; !ok && *p != (page{}) {
			return false
		}
	}
	return true
}

func samePage(a, b *page) bool {
	switch {
	case b == nil:
		return *a == page{}
	default:
		return *a == *b
	}
}

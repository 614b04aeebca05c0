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
	"io"
	"strconv"

	"github.com/eliminmax/intcode/vm"
	"github.com/pkg/errors"
)

func isSep(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// scanValues is a bufio.SplitFunc that splits its input at white space and
// commas.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSep(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSep(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// source reads numeric input values from a list of readers, in order.
type source struct {
	r      []io.Reader
	s      *bufio.Scanner
	prompt io.Writer // prompt written before reading from the last reader, if not nil
}

func newSource(prompt io.Writer, r ...io.Reader) *source {
	return &source{r: r, prompt: prompt}
}

// next returns the next input value, or io.EOF once all readers are
// exhausted.
func (s *source) next() (vm.Cell, error) {
	for {
		if s.s == nil {
			if len(s.r) == 0 {
				return 0, io.EOF
			}
			s.s = bufio.NewScanner(s.r[0])
			s.s.Split(scanValues)
			s.r = s.r[1:]
		}
		if len(s.r) == 0 && s.prompt != nil {
			io.WriteString(s.prompt, "? ")
		}
		if s.s.Scan() {
			v, err := strconv.ParseInt(s.s.Text(), 0, 64)
			if err != nil {
				return 0, errors.Wrap(err, "bad input value")
			}
			return vm.Cell(v), nil
		}
		if err := s.s.Err(); err != nil {
			return 0, errors.Wrap(err, "read failed")
		}
		s.s = nil
	}
}

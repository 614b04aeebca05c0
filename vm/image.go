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

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eliminmax/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Image is a program image: the initial contents of a machine's memory.
type Image []Cell

// scanCells is a bufio.SplitFunc that splits its input at commas.
func scanCells(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Parse reads a program in text form from r: base 10 integers separated by
// commas. White space around values is ignored, as is a trailing comma.
func Parse(r io.Reader) (Image, error) {
	var img Image
	emptyAt := -1
	s := bufio.NewScanner(r)
	s.Split(scanCells)
	for n := 0; s.Scan(); n++ {
		tok := bytes.TrimSpace(s.Bytes())
		if len(tok) == 0 {
			if emptyAt < 0 {
				emptyAt = n
			}
			continue
		}
		if emptyAt >= 0 {
			return nil, errors.Errorf("empty value at position %d", emptyAt)
		}
		v, err := strconv.ParseInt(string(tok), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value at position %d", n)
		}
		img = append(img, Cell(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return img, nil
}

// ParseString is like Parse, but reads the program from a string.
func ParseString(s string) (Image, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: parse failed", fileName)
	}
	return img, nil
}

// Save saves a program image to file fileName in text form. The file is
// removed if anything goes wrong.
func Save(fileName string, img Image) (err error) {
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
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if err = ici.WriteInts(w, ",", img.Ints()); err != nil {
		return errors.Wrap(err, "save failed")
	}
	_, err = w.WriteString("\n")
	return err
}

// Ints returns the image contents as a slice of int64.
func (img Image) Ints() []int64 {
	a := make([]int64, len(img))
	for i, v := range img {
		a[i] = int64(v)
	}
	return a
}

// String returns the image in text form, as read by Parse.
func (img Image) String() string {
	var b strings.Builder
	ici.WriteInts(&b, ",", img.Ints())
	return b.String()
}

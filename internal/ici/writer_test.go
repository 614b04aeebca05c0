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

package ici_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/eliminmax/intcode/internal/ici"
	"github.com/pkg/errors"
)

type failWriter int

func (w *failWriter) Write(p []byte) (int, error) {
	if *w == 0 {
		return 0, io.ErrShortWrite
	}
	*w--
	return len(p), nil
}

func TestWriteInts(t *testing.T) {
	var b bytes.Buffer
	if err := ici.WriteInts(&b, ",", []int64{1, -20, 300}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "1,-20,300" {
		t.Errorf("expected 1,-20,300, got %s", b.String())
	}
	fw := failWriter(2)
	err := ici.WriteInts(&fw, " ", []int64{1, 2, 3, 4})
	if errors.Cause(err) != io.ErrShortWrite {
		t.Errorf("expected short write, got %v", err)
	}
}

func TestErrWriter(t *testing.T) {
	fw := failWriter(1)
	ew := ici.NewErrWriter(&fw)
	if ici.NewErrWriter(ew) != ew {
		t.Error("ErrWriter wrapped twice")
	}
	ew.Write([]byte("ok"))
	ew.Write([]byte("fail"))
	fw = 10
	if _, err := ew.Write([]byte("sticky")); errors.Cause(err) != io.ErrShortWrite || ew.Err != err {
		t.Errorf("expected sticky short write, got %v", err)
	}
}

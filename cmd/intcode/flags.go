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
	"strconv"
	"strings"

	"github.com/eliminmax/intcode/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// cellList accumulates input values given as comma separated lists.
type cellList []vm.Cell

func (c *cellList) String() string { return vm.Image(*c).String() }
func (c *cellList) Set(s string) error {
	img, err := vm.ParseString(s)
	if err != nil {
		return err
	}
	*c = append(*c, img...)
	return nil
}
func (c *cellList) Get() interface{} { return *c }

type poke struct {
	addr, v vm.Cell
}

// pokeList accumulates addr=value memory patches.
type pokeList []poke

func (p *pokeList) String() string {
	s := make([]string, len(*p))
	for n, pk := range *p {
		s[n] = strconv.FormatInt(int64(pk.addr), 10) + "=" + strconv.FormatInt(int64(pk.v), 10)
	}
	return strings.Join(s, ",")
}

func (p *pokeList) Set(s string) error {
	k := strings.IndexByte(s, '=')
	if k < 0 {
		return errors.Errorf("expected addr=value, got %q", s)
	}
	addr, err := strconv.ParseInt(strings.TrimSpace(s[:k]), 0, 64)
	if err != nil {
		return errors.Wrap(err, "bad address")
	}
	if addr < 0 {
		return errors.Errorf("negative address %d", addr)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s[k+1:]), 0, 64)
	if err != nil {
		return errors.Wrap(err, "bad value")
	}
	*p = append(*p, poke{vm.Cell(addr), vm.Cell(v)})
	return nil
}

func (p *pokeList) Get() interface{} { return *p }

// options holds the command line settings, possibly merged with a profile.
type options struct {
	program string
	config  string
	input   cellList
	with    fileList
	poke    pokeList
	ascii   bool
	trace   string
	dump    bool
	out     string
	disasm  bool
	graph   string
	stats   string
}

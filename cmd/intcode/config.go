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
	"os"
	"sort"

	"github.com/eliminmax/intcode/vm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// profile is a run profile loaded from a YAML file with -config. It lets a
// puzzle setup (program, patches, input files) be saved once and reused:
//
//	program: day02.ic
//	poke:
//	  1: 12
//	  2: 2
//	dump: true
type profile struct {
	Program string          `yaml:"program"`
	Input   []int64         `yaml:"input"`
	With    []string        `yaml:"with"`
	Poke    map[int64]int64 `yaml:"poke"`
	ASCII   bool            `yaml:"ascii"`
	Trace   string          `yaml:"trace"`
	Dump    bool            `yaml:"dump"`
	Output  string          `yaml:"output"`
}

// loadProfile reads a profile from file fileName. Unknown keys are errors.
func loadProfile(fileName string) (*profile, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()

	var p profile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&p); err != nil {
		return nil, errors.Wrapf(err, "%s: parse failed", fileName)
	}
	for addr := range p.Poke {
		if addr < 0 {
			return nil, errors.Errorf("%s: negative poke address %d", fileName, addr)
		}
	}
	return &p, nil
}

// apply merges the profile into o. Settings whose flag is in set were given on
// the command line and take precedence.
func (p *profile) apply(o *options, set map[string]bool) {
	if o.program == "" {
		o.program = p.Program
	}
	if !set["input"] {
		for _, v := range p.Input {
			o.input = append(o.input, vm.Cell(v))
		}
	}
	if !set["with"] {
		o.with = append(o.with, p.With...)
	}
	if !set["poke"] {
		addrs := make([]int64, 0, len(p.Poke))
		for a := range p.Poke {
			addrs = append(addrs, a)
		}
		sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
		for _, a := range addrs {
			o.poke = append(o.poke, poke{vm.Cell(a), vm.Cell(p.Poke[a])})
		}
	}
	if !set["ascii"] {
		o.ascii = p.ASCII
	}
	if !set["trace"] && p.Trace != "" {
		o.trace = p.Trace
	}
	if !set["dump"] {
		o.dump = p.Dump
	}
	if !set["o"] && p.Output != "" {
		o.out = p.Output
	}
}

// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// cellList is a flag.Value accumulating comma separated integers. The flag
// can be specified multiple times.
type cellList []vm.Cell

func (l *cellList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *cellList) Set(s string) error {
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return errors.Errorf("invalid value %q", tok)
		}
		*l = append(*l, vm.Cell(v))
	}
	return nil
}

func (l *cellList) Get() interface{} { return []vm.Cell(*l) }

// patch is a memory write applied before running a program.
type patch struct {
	addr int
	v    vm.Cell
}

// patchList is a flag.Value accumulating addr=value pairs.
type patchList []patch

func (l *patchList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for k, p := range *l {
		s[k] = strconv.Itoa(p.addr) + "=" + strconv.FormatInt(int64(p.v), 10)
	}
	return strings.Join(s, ",")
}

func (l *patchList) Set(s string) error {
	for _, tok := range strings.Split(s, ",") {
		a, v, ok := strings.Cut(tok, "=")
		if !ok {
			return errors.Errorf("invalid patch %q, expected addr=value", tok)
		}
		p, err := parsePatch(a, v)
		if err != nil {
			return err
		}
		*l = append(*l, p)
	}
	return nil
}

func (l *patchList) Get() interface{} { return []patch(*l) }

func parsePatch(addr, value string) (patch, error) {
	a, err := strconv.Atoi(strings.TrimSpace(addr))
	if err != nil || a < 0 {
		return patch{}, errors.Errorf("invalid patch address %q", addr)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return patch{}, errors.Errorf("invalid patch value %q", value)
	}
	return patch{a, vm.Cell(v)}, nil
}

// addrList is a flag.Value accumulating comma separated memory addresses.
type addrList []int

func (l *addrList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for k, a := range *l {
		s[k] = strconv.Itoa(a)
	}
	return strings.Join(s, ",")
}

func (l *addrList) Set(s string) error {
	for _, tok := range strings.Split(s, ",") {
		a, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || a < 0 {
			return errors.Errorf("invalid address %q", tok)
		}
		*l = append(*l, a)
	}
	return nil
}

func (l *addrList) Get() interface{} { return []int(*l) }

// optCell is a flag.Value for an optional integer.
type optCell struct {
	v   vm.Cell
	set bool
}

func (o *optCell) String() string {
	if o == nil || !o.set {
		return ""
	}
	return strconv.FormatInt(int64(o.v), 10)
}

func (o *optCell) Set(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return errors.Errorf("invalid value %q", s)
	}
	o.v, o.set = vm.Cell(v), true
	return nil
}

func (o *optCell) Get() interface{} { return o.v }

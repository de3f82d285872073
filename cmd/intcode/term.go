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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// prompter reads input values typed by the user, one per line.
type prompter struct {
	s *bufio.Scanner
	w io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{bufio.NewScanner(r), w}
}

func (p *prompter) next() (vm.Cell, error) {
	for {
		fmt.Fprint(p.w, "input> ")
		if !p.s.Scan() {
			if err := p.s.Err(); err != nil {
				return 0, errors.Wrap(err, "read input failed")
			}
			return 0, vm.ErrInputExhausted
		}
		line := strings.TrimSpace(p.s.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintf(p.w, "invalid value %q\n", line)
			continue
		}
		return vm.Cell(v), nil
	}
}

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

package vm

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Program is an Intcode memory image as loaded from program text. A Program
// is never modified once built and can be shared by any number of instances.
type Program struct {
	cells []Cell
}

// NewProgram returns a Program holding a copy of the given cells.
func NewProgram(cells ...Cell) *Program {
	return &Program{cells: append([]Cell(nil), cells...)}
}

// Len returns the number of cells in the program.
func (p *Program) Len() int {
	return len(p.cells)
}

// At returns the value at address addr, or 0 if addr is outside the program.
func (p *Program) At(addr int) Cell {
	if addr < 0 || addr >= len(p.cells) {
		return 0
	}
	return p.cells[addr]
}

// Cells returns a copy of the program cells.
func (p *Program) Cells() []Cell {
	return append([]Cell(nil), p.cells...)
}

// String returns the program in its text form.
func (p *Program) String() string {
	var sb strings.Builder
	for k, v := range p.cells {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return sb.String()
}

// Parse parses program text: comma separated signed decimal integers, the
// n-th integer being the value at address n. White space around integers is
// ignored. The returned error, if any, is a *ParseError.
func Parse(text string) (*Program, error) {
	toks := strings.Split(strings.TrimSpace(text), ",")
	cells := make([]Cell, len(toks))
	for k, tok := range toks {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return nil, &ParseError{Pos: k, Token: tok, Err: err}
		}
		cells[k] = Cell(v)
	}
	return &Program{cells: cells}, nil
}

// Load reads program text from r and parses it.
func Load(r io.Reader) (*Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return Parse(string(b))
}

// LoadFile loads a program from the named file.
func LoadFile(fileName string) (*Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", fileName)
	}
	return p, nil
}

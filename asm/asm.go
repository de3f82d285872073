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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

func writeParam(ew *ici.ErrWriter, v vm.Cell, m vm.Mode) {
	s := strconv.FormatInt(int64(v), 10)
	switch m {
	case vm.Immediate:
		io.WriteString(ew, s)
	case vm.Relative:
		if v >= 0 {
			s = "+" + s
		}
		io.WriteString(ew, "[rb"+s+"]")
	default:
		io.WriteString(ew, "["+s+"]")
	}
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error. If pc is outside of i, nothing is written
// and the error is io.ErrUnexpectedEOF.
func Disassemble(i []vm.Cell, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(i) {
		return pc, io.ErrUnexpectedEOF
	}
	ew := ici.NewErrWriter(w)

	h := i[pc]
	op, modes, err := vm.DecodeHeader(h, pc)
	if err != nil {
		io.WriteString(ew, "dat ")
		io.WriteString(ew, strconv.FormatInt(int64(h), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, op.String())
	pc++
	for _, m := range modes {
		ew.Write([]byte{' '})
		if pc >= len(i) {
			io.WriteString(ew, "???")
			continue
		}
		writeParam(ew, i[pc], m)
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (i[0]). It will return any write error.
//
// Data cells that happen to look like valid instructions will be disassembled
// as such: Intcode images do not tell code from data.
func DisassembleAll(i []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(i); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(i, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

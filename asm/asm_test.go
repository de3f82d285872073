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

package asm_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func TestDisassembleAll(t *testing.T) {
	img := []vm.Cell{
		21101, 3, -4, 2,
		3, 0,
		1105, 1, 0,
		42,
		11101, // immediate write target
		2, 5, 6,
	}
	var buf bytes.Buffer
	if err := asm.DisassembleAll(img, 100, &buf); err != nil {
		t.Fatal(err)
	}
	expected := "       100\tadd 3 -4 [rb+2]\n" +
		"       104\tin [0]\n" +
		"       106\tjnz 1 0\n" +
		"       109\tdat 42\n" +
		"       110\tdat 11101\n" +
		"       111\tmul [5] [6] ???\n"
	if got := buf.String(); got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestDisassemble_next(t *testing.T) {
	img := []vm.Cell{1001, 4, 5, 6, 99}
	var buf bytes.Buffer
	next, err := asm.Disassemble(img, 0, &buf)
	if err != nil || next != 4 {
		t.Errorf("Expected next=4, got %d, %v", next, err)
	}
	if buf.String() != "add [4] 5 [6]" {
		t.Errorf("Bad disassembly %q", buf.String())
	}
	buf.Reset()
	if next, _ = asm.Disassemble(img, 4, &buf); next != 5 || buf.String() != "hlt" {
		t.Errorf("Bad disassembly %q, next=%d", buf.String(), next)
	}
}

func TestDisassemble_outOfRange(t *testing.T) {
	img := []vm.Cell{99}
	for _, pc := range []int{1, 5, -1} {
		var buf bytes.Buffer
		next, err := asm.Disassemble(img, pc, &buf)
		if err != io.ErrUnexpectedEOF {
			t.Errorf("pc=%d: expected %v, got %v", pc, io.ErrUnexpectedEOF, err)
		}
		if next != pc || buf.Len() != 0 {
			t.Errorf("pc=%d: next=%d, output %q", pc, next, buf.String())
		}
	}
}

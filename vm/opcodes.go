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

import "strconv"

// Opcode is the instruction code found in the two low decimal digits of an
// instruction header.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLessThan   Opcode = 7
	OpEquals     Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

type opInfo struct {
	name   string
	params int  // total parameter count
	write  bool // the last parameter is a write target
}

var opcodes = map[Opcode]opInfo{
	OpAdd:        {"add", 3, true},
	OpMul:        {"mul", 3, true},
	OpIn:         {"in", 1, true},
	OpOut:        {"out", 1, false},
	OpJumpTrue:   {"jnz", 2, false},
	OpJumpFalse:  {"jz", 2, false},
	OpLessThan:   {"lt", 3, true},
	OpEquals:     {"eq", 3, true},
	OpAdjustBase: {"arb", 1, false},
	OpHalt:       {"hlt", 0, false},
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Params returns the number of parameters following an op instruction header.
func (op Opcode) Params() int {
	return opcodes[op].params
}

// Writes reports whether the last parameter of op is a write target.
func (op Opcode) Writes() bool {
	return opcodes[op].write
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is a parameter addressing mode.
type Mode Cell

// Parameter modes.
const (
	Position  Mode = 0 // parameter is an address
	Immediate Mode = 1 // parameter is a literal value
	Relative  Mode = 2 // parameter is an address relative to the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.FormatInt(int64(m), 10) + ")"
}

// modeDecoder hands out parameter modes from the mode digits of an
// instruction header, one digit per call, least significant first. Once the
// digits are exhausted, it keeps returning Position.
type modeDecoder struct {
	digits Cell
	pc     int
}

func (d *modeDecoder) next() (Mode, error) {
	m := d.digits % 10
	d.digits /= 10
	switch Mode(m) {
	case Position, Immediate, Relative:
		return Mode(m), nil
	}
	return 0, &ModeError{Mode: m, PC: d.pc}
}

// splitHeader splits an instruction header into its opcode and a decoder for
// its mode digits. pc is only used for error reporting.
func splitHeader(h Cell, pc int) (Opcode, modeDecoder, error) {
	if h < 0 {
		return 0, modeDecoder{}, &OpcodeError{Code: h, PC: pc}
	}
	op := Opcode(h % 100)
	if !op.Valid() {
		return 0, modeDecoder{}, &OpcodeError{Code: h, PC: pc}
	}
	return op, modeDecoder{digits: h / 100, pc: pc}, nil
}

// DecodeHeader decodes the instruction header h found at address pc and
// returns its opcode and the modes of its parameters. Mode digits in excess
// of the parameter count are ignored.
func DecodeHeader(h Cell, pc int) (op Opcode, modes []Mode, err error) {
	op, md, err := splitHeader(h, pc)
	if err != nil {
		return 0, nil, err
	}
	modes = make([]Mode, op.Params())
	for k := range modes {
		if modes[k], err = md.next(); err != nil {
			return 0, nil, err
		}
	}
	if op.Writes() && modes[len(modes)-1] == Immediate {
		return 0, nil, &WriteTargetError{Op: op, PC: pc}
	}
	return op, modes, nil
}

// Instructions. Each type carries the parameter values it reads, already
// resolved according to their mode. Write targets are kept by the Instance.
type (
	instruction interface {
		opcode() Opcode
	}

	insAdd        struct{ a, b Cell }
	insMul        struct{ a, b Cell }
	insIn         struct{}
	insOut        struct{ a Cell }
	insJumpTrue   struct{ a, to Cell }
	insJumpFalse  struct{ a, to Cell }
	insLessThan   struct{ a, b Cell }
	insEquals     struct{ a, b Cell }
	insAdjustBase struct{ a Cell }
	insHalt       struct{}
)

func (insAdd) opcode() Opcode        { return OpAdd }
func (insMul) opcode() Opcode        { return OpMul }
func (insIn) opcode() Opcode         { return OpIn }
func (insOut) opcode() Opcode        { return OpOut }
func (insJumpTrue) opcode() Opcode   { return OpJumpTrue }
func (insJumpFalse) opcode() Opcode  { return OpJumpFalse }
func (insLessThan) opcode() Opcode   { return OpLessThan }
func (insEquals) opcode() Opcode     { return OpEquals }
func (insAdjustBase) opcode() Opcode { return OpAdjustBase }
func (insHalt) opcode() Opcode       { return OpHalt }

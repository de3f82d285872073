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
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotAwaitingInput is returned by SendInput when the instance is not
// waiting for an input value.
var ErrNotAwaitingInput = errors.New("instance not awaiting input")

// ErrInputExhausted is returned by Exec when the program asks for more input
// values than were supplied.
var ErrInputExhausted = errors.New("input exhausted")

// ParseError is returned by the program loaders when a token of the program
// text is not a valid integer.
type ParseError struct {
	Pos   int    // zero-based index of the offending token
	Token string // the offending token
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d: invalid integer %q: %v", e.Pos, e.Token, e.Err)
}

// OpcodeError reports an unknown instruction.
type OpcodeError struct {
	Code Cell // the offending instruction header
	PC   int  // address of the instruction
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %d @pc=%d", e.Code, e.PC)
}

// ModeError reports an unknown parameter mode digit.
type ModeError struct {
	Mode Cell // the offending mode digit
	PC   int  // address of the instruction
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid parameter mode %d @pc=%d", e.Mode, e.PC)
}

// WriteTargetError reports an instruction whose destination parameter uses
// immediate mode.
type WriteTargetError struct {
	Op Opcode // instruction opcode
	PC int    // address of the instruction
}

func (e *WriteTargetError) Error() string {
	return fmt.Sprintf("%v: immediate mode write target @pc=%d", e.Op, e.PC)
}

// AddressError reports an attempt to access a negative memory address or to
// jump to one.
type AddressError struct {
	Addr Cell // the offending address
	PC   int  // address of the instruction
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %d @pc=%d", e.Addr, e.PC)
}

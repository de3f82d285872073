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
	"log/slog"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	prog     *Program
	mem      memory
	pc       int  // instruction pointer
	rb       Cell // relative base
	wp       int  // pending write target, -1 if none
	state    State
	err      error
	insCount int64
	capacity int
	log      *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Logger sets the logger used to trace execution. Every decoded instruction
// and every Signal returned by Run is logged at debug level. Tracing is
// disabled by default.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// Capacity sets the number of memory cells allocated upfront, including the
// program itself. Memory grows as needed regardless of this setting; a
// suitable capacity only saves reallocations for programs that use a lot of
// memory past their end.
func Capacity(cells int) Option {
	return func(i *Instance) error {
		if cells < 0 {
			cells = 0
		}
		i.capacity = cells
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance running the given program.
//
// The instance works on a private copy of the program: neither the Program
// nor other instances built from it will see its memory writes.
//
// Options will be set by calling SetOptions.
func New(p *Program, opts ...Option) (*Instance, error) {
	i := &Instance{prog: p}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.capacity > p.Len() {
		i.mem.cells = make([]Cell, 0, i.capacity)
	}
	i.Reset()
	return i, nil
}

// Reset restores the instance to its initial state: memory is reloaded from
// the program, the instruction pointer and relative base are set to 0.
func (i *Instance) Reset() {
	i.mem.load(i.prog)
	i.pc = 0
	i.rb = 0
	i.wp = -1
	i.state = StateReady
	i.err = nil
	i.insCount = 0
}

// Program returns the program the instance was built from.
func (i *Instance) Program() *Program {
	return i.prog
}

// PC returns the current value of the instruction pointer.
func (i *Instance) PC() int {
	return i.pc
}

// RelativeBase returns the current value of the relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// State returns the current execution state.
func (i *Instance) State() State {
	return i.state
}

// Err returns the error that stopped the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed since the
// last reset.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Peek returns the value at address addr. Unwritten or negative addresses
// read as 0.
func (i *Instance) Peek(addr int) Cell {
	if addr < 0 {
		return 0
	}
	return i.mem.read(addr)
}

// Poke writes v at address addr. Use it to patch the program before running
// it. Negative addresses are ignored.
func (i *Instance) Poke(addr int, v Cell) {
	if addr < 0 {
		return
	}
	i.mem.write(addr, v)
}

// Mem returns a copy of the memory contents, from address 0 up to the end of
// the program or the highest written address, whichever is greater. Cells
// written at very high addresses are kept apart and are returned by HighMem.
func (i *Instance) Mem() []Cell {
	return i.mem.snapshot()
}

// HighMem returns a copy of the memory cells that lie beyond the block returned
// by Mem, indexed by address. It returns nil if there are none.
func (i *Instance) HighMem() map[int]Cell {
	return i.mem.high()
}

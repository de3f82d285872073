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
	"context"
	"log/slog"
	"strconv"
)

// State is the execution state of an instance.
type State int

// Execution states.
const (
	StateReady         State = iota // ready to run
	StateAwaitingInput              // blocked on an input instruction, see SendInput
	StateHalted                     // the program has halted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateAwaitingInput:
		return "awaiting input"
	case StateHalted:
		return "halted"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Yield tells why Run returned control to the caller.
type Yield int

// Yield values.
const (
	AwaitingInput  Yield = iota // the program needs an input value
	ProducedOutput              // the program produced an output value
	Halted                      // the program halted
)

func (y Yield) String() string {
	switch y {
	case AwaitingInput:
		return "input"
	case ProducedOutput:
		return "output"
	case Halted:
		return "halt"
	}
	return "yield(" + strconv.Itoa(int(y)) + ")"
}

// Signal is the value returned by Run.
type Signal struct {
	Yield Yield
	Value Cell // output value, only meaningful for ProducedOutput
}

func (s Signal) String() string {
	if s.Yield == ProducedOutput {
		return "output(" + strconv.FormatInt(int64(s.Value), 10) + ")"
	}
	return s.Yield.String()
}

// Run executes instructions until the program needs an input value, produces
// an output value or halts, and returns a Signal telling which.
//
// After an AwaitingInput signal, the caller must supply the value with
// SendInput before calling Run again; until then Run keeps returning
// AwaitingInput. After a ProducedOutput signal, Run can be called again right
// away to resume execution. Once halted, Run is a no-op that returns Halted.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. The error is one of *OpcodeError, *ModeError, *WriteTargetError or
// *AddressError and is returned by any further call to Run until the next
// Reset.
func (i *Instance) Run() (Signal, error) {
	if i.err != nil {
		return Signal{}, i.err
	}
	switch i.state {
	case StateHalted:
		return Signal{Yield: Halted}, nil
	case StateAwaitingInput:
		return Signal{Yield: AwaitingInput}, nil
	}
	for {
		pc := i.pc
		ins, err := i.decode()
		if err != nil {
			return Signal{}, i.fail(pc, err)
		}
		i.trace(pc, ins)
		sig, yield, err := i.execute(ins, pc)
		if err != nil {
			return Signal{}, i.fail(pc, err)
		}
		i.insCount++
		if yield {
			if i.log != nil {
				i.log.Debug("yield", "pc", pc, "signal", sig)
			}
			return sig, nil
		}
	}
}

// SendInput completes the input instruction the instance is blocked on by
// writing v to its target address. It returns ErrNotAwaitingInput if the last
// call to Run did not return AwaitingInput.
func (i *Instance) SendInput(v Cell) error {
	if i.state != StateAwaitingInput || i.wp < 0 {
		return ErrNotAwaitingInput
	}
	i.store(v)
	i.state = StateReady
	return nil
}

func (i *Instance) fail(pc int, err error) error {
	i.pc = pc
	i.wp = -1
	i.err = err
	if i.log != nil {
		i.log.Debug("fault", "pc", pc, "error", err)
	}
	return err
}

func (i *Instance) trace(pc int, ins instruction) {
	if i.log == nil || !i.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	i.log.Debug("exec", "pc", pc, "op", ins.opcode(), "args", ins, "rb", i.rb)
}

// fetch returns the value at the instruction pointer and advances it.
func (i *Instance) fetch() Cell {
	v := i.mem.read(i.pc)
	i.pc++
	return v
}

// address returns the memory address designated by parameter value v in
// position or relative mode.
func (i *Instance) address(v Cell, m Mode, pc int) (int, error) {
	if m == Relative {
		v += i.rb
	}
	if v < 0 {
		return 0, &AddressError{Addr: v, PC: pc}
	}
	return int(v), nil
}

// param fetches the next parameter of the instruction at pc and returns its
// value.
func (i *Instance) param(md *modeDecoder, pc int) (Cell, error) {
	v := i.fetch()
	m, err := md.next()
	if err != nil {
		return 0, err
	}
	if m == Immediate {
		return v, nil
	}
	addr, err := i.address(v, m, pc)
	if err != nil {
		return 0, err
	}
	return i.mem.read(addr), nil
}

func (i *Instance) params2(md *modeDecoder, pc int) (a, b Cell, err error) {
	if a, err = i.param(md, pc); err != nil {
		return 0, 0, err
	}
	b, err = i.param(md, pc)
	return a, b, err
}

// target fetches the write target parameter of the op instruction at pc and
// sets it as the pending write target.
func (i *Instance) target(op Opcode, md *modeDecoder, pc int) error {
	v := i.fetch()
	m, err := md.next()
	if err != nil {
		return err
	}
	if m == Immediate {
		return &WriteTargetError{Op: op, PC: pc}
	}
	addr, err := i.address(v, m, pc)
	if err != nil {
		return err
	}
	i.wp = addr
	return nil
}

// store writes v to the pending write target and clears it.
func (i *Instance) store(v Cell) {
	i.mem.write(i.wp, v)
	i.wp = -1
}

// decode fetches the instruction at the instruction pointer and its
// parameters. On return, the instruction pointer points to the next
// instruction.
func (i *Instance) decode() (instruction, error) {
	pc := i.pc
	op, md, err := splitHeader(i.fetch(), pc)
	if err != nil {
		return nil, err
	}
	i.wp = -1
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		a, b, err := i.params2(&md, pc)
		if err != nil {
			return nil, err
		}
		if err = i.target(op, &md, pc); err != nil {
			return nil, err
		}
		switch op {
		case OpAdd:
			return insAdd{a, b}, nil
		case OpMul:
			return insMul{a, b}, nil
		case OpLessThan:
			return insLessThan{a, b}, nil
		default:
			return insEquals{a, b}, nil
		}
	case OpIn:
		if err = i.target(op, &md, pc); err != nil {
			return nil, err
		}
		return insIn{}, nil
	case OpOut:
		a, err := i.param(&md, pc)
		if err != nil {
			return nil, err
		}
		return insOut{a}, nil
	case OpJumpTrue, OpJumpFalse:
		a, to, err := i.params2(&md, pc)
		if err != nil {
			return nil, err
		}
		if op == OpJumpTrue {
			return insJumpTrue{a, to}, nil
		}
		return insJumpFalse{a, to}, nil
	case OpAdjustBase:
		a, err := i.param(&md, pc)
		if err != nil {
			return nil, err
		}
		return insAdjustBase{a}, nil
	}
	return insHalt{}, nil
}

// execute performs the effect of a decoded instruction. It returns yield ==
// true if control must go back to the caller of Run with the returned signal.
func (i *Instance) execute(ins instruction, pc int) (sig Signal, yield bool, err error) {
	switch ins := ins.(type) {
	case insAdd:
		i.store(ins.a + ins.b)
	case insMul:
		i.store(ins.a * ins.b)
	case insIn:
		i.state = StateAwaitingInput
		return Signal{Yield: AwaitingInput}, true, nil
	case insOut:
		return Signal{Yield: ProducedOutput, Value: ins.a}, true, nil
	case insJumpTrue:
		if ins.a != 0 {
			err = i.jump(ins.to, pc)
		}
	case insJumpFalse:
		if ins.a == 0 {
			err = i.jump(ins.to, pc)
		}
	case insLessThan:
		i.store(truth(ins.a < ins.b))
	case insEquals:
		i.store(truth(ins.a == ins.b))
	case insAdjustBase:
		i.rb += ins.a
	case insHalt:
		i.state = StateHalted
		return Signal{Yield: Halted}, true, nil
	}
	return Signal{}, false, err
}

func (i *Instance) jump(to Cell, pc int) error {
	if to < 0 {
		return &AddressError{Addr: to, PC: pc}
	}
	i.pc = int(to)
	return nil
}

func truth(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

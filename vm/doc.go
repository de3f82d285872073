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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a flat sequence of signed integers. Each instruction
// starts with a header cell whose two low decimal digits select the opcode,
// the remaining digits giving the addressing mode of each parameter, least
// significant first:
//
//	opcode	name	params	description
//	------	----	------	-----------------------------------------------
//	1	add	a b >c	store a+b at c
//	2	mul	a b >c	store a*b at c
//	3	in	>a	store the next input value at a
//	4	out	a	output a
//	5	jnz	a b	jump to b if a != 0
//	6	jz	a b	jump to b if a == 0
//	7	lt	a b >c	store 1 at c if a < b, 0 otherwise
//	8	eq	a b >c	store 1 at c if a == b, 0 otherwise
//	9	arb	a	add a to the relative base
//	99	hlt		halt
//
//	mode	name		read		write
//	----	---------	----------	----------
//	0	position	mem[p]		mem[p]
//	1	immediate	p		invalid
//	2	relative	mem[rb+p]	mem[rb+p]
//
// Missing mode digits default to position mode.
//
// The VM does not perform any I/O by itself. Instead, Run executes
// instructions until the program needs an input value, produces an output
// value or halts, and returns a Signal telling the caller which one happened.
// The caller answers an AwaitingInput signal with SendInput, then calls Run
// again:
//
//	for {
//		sig, err := i.Run()
//		if err != nil {
//			return err
//		}
//		switch sig.Yield {
//		case vm.AwaitingInput:
//			i.SendInput(next())
//		case vm.ProducedOutput:
//			fmt.Println(sig.Value)
//		case vm.Halted:
//			return nil
//		}
//	}
//
// Several instances can be built from the same Program. The Program is never
// modified: each instance works on its own copy of it.
package vm

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

// Package asm provides utility functions to disassemble Intcode VM code.
//
// Instructions are written as their mnemonic followed by their parameters:
//
//	mnemonic	opcode
//	--------	------
//	add	1
//	mul	2
//	in	3
//	out	4
//	jnz	5
//	jz	6
//	lt	7
//	eq	8
//	arb	9
//	hlt	99
//
// Parameters are written according to their mode:
//
//	mode		syntax		example
//	---------	-------		-------
//	position	[addr]		[15]
//	immediate	value		-4
//	relative	[rb+off]	[rb-1]
//
// Cells that do not decode as a valid instruction are written as "dat" followed
// by their value. Parameters missing past the end of the image are written as
// "???".
package asm

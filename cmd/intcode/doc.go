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

// The intcode command line tool is a showcase for the package
// github.com/db47h/intcode/vm and can be used to run Intcode programs.
//
// Usage:
//
//	-config filename
//		  Load settings from TOML file filename
//	-debug
//		  enable debug diagnostics and execution trace
//	-disasm
//		  print a disassembly of the program and exit
//	-dump
//		  dump memory upon exit
//	-input values
//		  comma separated input values (can be specified multiple times)
//	-log filename
//		  also write JSON logs to filename
//	-patch addr=value
//		  write value to memory before running (can be specified multiple times)
//	-peek addr
//		  print the value at addr after the program halts (can be specified multiple times)
//	-phases settings
//		  run an amplifier ring and search the best permutation of phase settings
//	-program filename
//		  Load program from file filename instead of stdin
//	-target value
//		  search noun and verb (addresses 1 and 2) such that address 0 holds value on halt
//
// The program is read from the file given with -program or from stdin, which
// must then be redirected. Output values are printed one per line.
//
// -input: input values are fed to the program in order. If the program asks
// for more and stdin is a terminal, the user is prompted for the next value.
// Otherwise the program is stopped with an error.
//
// -patch, -peek: patches are applied before running the program. Once halted,
// the values at the -peek addresses are printed as "[addr] value".
//
// -phases: builds a ring of amplifiers, one per phase setting, and prints the
// highest signal the ring can produce with any permutation of the settings.
//
// -target: runs the program with every noun and verb in 0..99 and prints
// 100*noun+verb for the first pair leaving the target value at address 0.
//
// -dump: prints the memory contents after the run, in program text form. Cells
// written at very high addresses follow as "# addr=value" lines.
//
// -debug: logs every executed instruction and prints a full stacktrace should
// the VM crash.
//
// -config: flags explicitly given on the command line override the settings
// of the config file. See the Config type for the file format.
package main

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

package vm_test

import (
	"fmt"

	"github.com/db47h/intcode/vm"
)

// Drives an instance by hand, answering each signal returned by Run.
func ExampleInstance_Run() {
	// read a value, output its double, halt.
	p, err := vm.Parse("3,9,1002,9,2,9,4,9,99,0")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(p)
	if err != nil {
		panic(err)
	}
	for {
		sig, err := i.Run()
		if err != nil {
			panic(err)
		}
		fmt.Println(sig)
		switch sig.Yield {
		case vm.AwaitingInput:
			i.SendInput(21)
		case vm.Halted:
			return
		}
	}

	// Output:
	// input
	// output(42)
	// halt
}

// Patches a program before running it, then reads the result from memory.
func ExampleInstance_Peek() {
	p, err := vm.Parse("1,9,10,3,2,3,11,0,99,30,40,50")
	if err != nil {
		panic(err)
	}
	i, _ := vm.New(p)
	if _, err = i.Exec(); err != nil {
		panic(err)
	}
	fmt.Println(i.Peek(0))

	// Output:
	// 3500
}

func ExampleInstance_Exec() {
	p, _ := vm.Parse("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	i, _ := vm.New(p)
	out, err := i.Exec()
	fmt.Println(out, err)

	// Output:
	// [109 1 204 -1 1001 100 1 100 1008 100 16 101 1006 101 0 99] <nil>
}

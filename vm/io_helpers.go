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

import "github.com/pkg/errors"

// Exec runs the instance until the program halts. Input instructions are
// fed the given values in order and every output value is collected.
//
// If the program asks for more input values than supplied, Exec stops and
// returns the outputs so far along with an error whose cause is
// ErrInputExhausted. The instance is then left awaiting input and Exec can be
// called again with more values.
func (i *Instance) Exec(input ...Cell) (output []Cell, err error) {
	for {
		sig, err := i.Run()
		if err != nil {
			return output, err
		}
		switch sig.Yield {
		case AwaitingInput:
			if len(input) == 0 {
				return output, errors.Wrapf(ErrInputExhausted, "@pc=%d", i.pc)
			}
			if err = i.SendInput(input[0]); err != nil {
				return output, err
			}
			input = input[1:]
		case ProducedOutput:
			output = append(output, sig.Value)
		case Halted:
			return output, nil
		}
	}
}

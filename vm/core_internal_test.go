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

import "testing"

// A pending write target must not leak from one instruction to the next.
func TestDecode_clearsTarget(t *testing.T) {
	i, _ := New(NewProgram(1101, 1, 2, 7, 4, 7, 99, 0))
	if _, err := i.decode(); err != nil || i.wp != 7 {
		t.Fatalf("expected write target 7, got %d (%v)", i.wp, err)
	}
	i.wp = 7
	if _, err := i.decode(); err != nil || i.wp != -1 {
		t.Fatalf("write target carried over: %d (%v)", i.wp, err)
	}
}

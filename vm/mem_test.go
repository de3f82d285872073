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

func TestMemory_reuse(t *testing.T) {
	var m memory
	m.load(NewProgram(1, 2, 3))
	m.write(5, 42)
	m.write(10, 1)
	m.write(denseLimit+5, 7)
	if m.read(5) != 42 || m.read(denseLimit+5) != 7 {
		t.Fatal("write failed")
	}
	m.load(NewProgram(4))
	if len(m.cells) != 1 || m.read(5) != 0 || m.read(denseLimit+5) != 0 {
		t.Fatalf("stale memory after load: %v", m.cells)
	}
	if cap(m.cells) < 11 {
		t.Fatalf("backing array not reused: cap=%d", cap(m.cells))
	}
	// the backing array still holds 42 @5; growing must not resurrect it
	m.write(10, 2)
	if m.read(5) != 0 {
		t.Errorf("stale value @5: %d", m.read(5))
	}
	if len(m.cells) != 11 {
		t.Errorf("expected 11 cells, got %d", len(m.cells))
	}
}

func TestMemory_snapshot(t *testing.T) {
	var m memory
	m.load(NewProgram(1, 2, 3))
	s := m.snapshot()
	s[0] = 99
	if m.read(0) != 1 {
		t.Error("snapshot aliases memory")
	}
}

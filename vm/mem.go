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

import "maps"

// Cells written at or beyond this address, past the end of the contiguous
// memory block, are stored in a map instead of growing the block.
const denseLimit = 1 << 20

// memory is the working memory of an instance. Addresses that were never
// written read as zero.
type memory struct {
	cells  []Cell
	sparse map[int]Cell
}

// load replaces the memory contents with a copy of the program cells. The
// underlying storage is reused when large enough.
func (m *memory) load(p *Program) {
	m.cells = append(m.cells[:0], p.cells...)
	m.sparse = nil
}

func (m *memory) read(addr int) Cell {
	if addr < len(m.cells) {
		return m.cells[addr]
	}
	return m.sparse[addr]
}

func (m *memory) write(addr int, v Cell) {
	switch {
	case addr < len(m.cells):
		m.cells[addr] = v
	case addr < denseLimit:
		m.grow(addr + 1)
		m.cells[addr] = v
	default:
		if m.sparse == nil {
			m.sparse = make(map[int]Cell)
		}
		m.sparse[addr] = v
	}
}

// grow extends the contiguous block to n cells. Cells past the previous
// length are zeroed since a reused backing array may hold stale values.
func (m *memory) grow(n int) {
	if n <= cap(m.cells) {
		l := len(m.cells)
		m.cells = m.cells[:n]
		clear(m.cells[l:])
		return
	}
	c := 2 * cap(m.cells)
	if c < n {
		c = n
	}
	t := make([]Cell, n, c)
	copy(t, m.cells)
	m.cells = t
}

// snapshot returns a copy of the contiguous block.
func (m *memory) snapshot() []Cell {
	return append([]Cell(nil), m.cells...)
}

// high returns a copy of the cells stored outside of the contiguous block.
func (m *memory) high() map[int]Cell {
	return maps.Clone(m.sparse)
}

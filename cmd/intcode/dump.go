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

package main

import (
	"io"
	"slices"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

func dumpSlice(w *ici.ErrWriter, a []vm.Cell) error {
	l := len(a) - 1
	if l >= 0 {
		for i := 0; i < l; i++ {
			io.WriteString(w, strconv.FormatInt(int64(a[i]), 10))
			w.Write([]byte{','})
		}
		io.WriteString(w, strconv.FormatInt(int64(a[l]), 10))
	}
	return w.Err
}

// dumpVM dumps the VM memory to the specified io.Writer, in program text form.
// Cells written far past the end of the program follow on separate lines, in
// the form "# addr=value", sorted by address.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	dumpSlice(ew, i.Mem())
	ew.Write([]byte{'\n'})
	hi := i.HighMem()
	addrs := make([]int, 0, len(hi))
	for addr := range hi {
		addrs = append(addrs, addr)
	}
	slices.Sort(addrs)
	for _, addr := range addrs {
		io.WriteString(ew, "# "+strconv.Itoa(addr)+"="+strconv.FormatInt(int64(hi[addr]), 10)+"\n")
	}
	return ew.Err
}

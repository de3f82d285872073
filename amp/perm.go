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

package amp

import "github.com/db47h/intcode/vm"

// Permute calls f for every permutation of set, stopping at the first error
// returned by f. The set is permuted in place and f must not retain or modify
// the slice it is given. Permutations are generated with Heap's algorithm.
func Permute(set []vm.Cell, f func(perm []vm.Cell) error) error {
	if len(set) == 0 {
		return nil
	}
	c := make([]int, len(set))
	if err := f(set); err != nil {
		return err
	}
	for k := 1; k < len(set); {
		if c[k] < k {
			if k%2 == 0 {
				set[0], set[k] = set[k], set[0]
			} else {
				set[c[k]], set[k] = set[k], set[c[k]]
			}
			if err := f(set); err != nil {
				return err
			}
			c[k]++
			k = 1
		} else {
			c[k] = 0
			k++
		}
	}
	return nil
}

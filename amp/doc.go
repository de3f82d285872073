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

// Package amp chains Intcode VM instances into an amplifier ring.
//
// All stages of a ring run the same program. Each stage is first given its
// phase setting as its first input value. A signal, initially 0, is then
// passed around the ring in stage order: each stage in turn receives the
// current signal as input and its next output becomes the new signal. This
// goes on until every stage has halted. The result of the ring is the last
// output of the final stage.
//
// Stages communicate only through the values passed between calls to Run and
// SendInput; the whole ring runs on the caller's goroutine.
package amp

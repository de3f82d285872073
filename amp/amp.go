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

import (
	"fmt"
	"log/slog"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrNoOutput is returned when the final stage of a ring halts without having
// produced any output.
var ErrNoOutput = errors.New("final stage produced no output")

// SignalError reports a stage that returned an unexpected signal.
type SignalError struct {
	Stage int       // stage index
	Want  vm.Yield  // expected signal
	Got   vm.Signal // actual signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("stage %d: expected %v, got %v", e.Stage, e.Want, e.Got)
}

// Ring is a ring of VM instances running the same program.
type Ring struct {
	// Logger, if not nil, receives the result of each run at debug level.
	Logger *slog.Logger

	stages []*vm.Instance
}

// New returns a new ring of n stages running program p. The options are
// applied to every stage.
func New(p *vm.Program, n int, opts ...vm.Option) (*Ring, error) {
	if n <= 0 {
		return nil, errors.Errorf("invalid stage count %d", n)
	}
	r := &Ring{stages: make([]*vm.Instance, n)}
	for k := range r.stages {
		i, err := vm.New(p, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		r.stages[k] = i
	}
	return r, nil
}

// Len returns the number of stages in the ring.
func (r *Ring) Len() int {
	return len(r.stages)
}

// Stage returns the VM instance of stage k.
func (r *Ring) Stage(k int) *vm.Instance {
	return r.stages[k]
}

// Run resets every stage, configures them with the given phase settings, one
// per stage, and runs the ring until all stages have halted. It returns the
// last output of the final stage.
func (r *Ring) Run(phases []vm.Cell) (vm.Cell, error) {
	if len(phases) != len(r.stages) {
		return 0, errors.Errorf("got %d phase settings for %d stages", len(phases), len(r.stages))
	}
	for k, s := range r.stages {
		s.Reset()
		sig, err := s.Run()
		if err != nil {
			return 0, errors.Wrapf(err, "stage %d", k)
		}
		if sig.Yield != vm.AwaitingInput {
			return 0, &SignalError{Stage: k, Want: vm.AwaitingInput, Got: sig}
		}
		if err = s.SendInput(phases[k]); err != nil {
			return 0, errors.Wrapf(err, "stage %d", k)
		}
	}

	var (
		signal  vm.Cell
		last    vm.Cell
		gotLast bool
		done    = make([]bool, len(r.stages))
		running = len(r.stages)
		final   = len(r.stages) - 1
	)
	for running > 0 {
		for k, s := range r.stages {
			if done[k] {
				continue
			}
		turn:
			for {
				sig, err := s.Run()
				if err != nil {
					return 0, errors.Wrapf(err, "stage %d", k)
				}
				switch sig.Yield {
				case vm.AwaitingInput:
					if err = s.SendInput(signal); err != nil {
						return 0, errors.Wrapf(err, "stage %d", k)
					}
				case vm.ProducedOutput:
					signal = sig.Value
					if k == final {
						last, gotLast = signal, true
					}
					break turn
				case vm.Halted:
					done[k] = true
					running--
					break turn
				}
			}
		}
	}
	if !gotLast {
		return 0, ErrNoOutput
	}
	if r.Logger != nil {
		r.Logger.Debug("ring", "phases", phases, "signal", last)
	}
	return last, nil
}

// Max runs the ring once for every permutation of the given phase settings and
// returns the highest signal along with the phase settings that produced it.
// The number of phase settings must match the number of stages.
func (r *Ring) Max(phases []vm.Cell) (best vm.Cell, order []vm.Cell, err error) {
	if len(phases) != len(r.stages) {
		return 0, nil, errors.Errorf("got %d phase settings for %d stages", len(phases), len(r.stages))
	}
	set := append([]vm.Cell(nil), phases...)
	err = Permute(set, func(perm []vm.Cell) error {
		v, err := r.Run(perm)
		if err != nil {
			return errors.Wrapf(err, "phases %v", perm)
		}
		if order == nil || v > best {
			best = v
			order = append(order[:0], perm...)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return best, order, nil
}

// MaxSignal builds a ring with one stage per phase setting and returns the
// result of its Max method.
func MaxSignal(p *vm.Program, phases ...vm.Cell) (vm.Cell, []vm.Cell, error) {
	r, err := New(p, len(phases))
	if err != nil {
		return 0, nil, err
	}
	return r.Max(phases)
}

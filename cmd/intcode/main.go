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
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// errNoInput is returned when no program file is given and stdin is a
// terminal.
var errNoInput = errors.New("no input stream found: provide a program file with -program or pipe it to stdin")

type flusher interface {
	Flush() error
}

// env is the environment of a run.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	tty    bool // stdin is a terminal
	log    *slog.Logger
}

func loadProgram(s *settings, e *env) (*vm.Program, error) {
	if s.program != "" {
		return vm.LoadFile(s.program)
	}
	if e.tty {
		return nil, errNoInput
	}
	p, err := vm.Load(e.stdin)
	return p, errors.Wrap(err, "stdin")
}

func newVM(p *vm.Program, s *settings, e *env) (*vm.Instance, error) {
	i, err := vm.New(p, vm.Logger(e.log))
	if err != nil {
		return nil, err
	}
	applyPatches(i, s)
	return i, nil
}

func applyPatches(i *vm.Instance, s *settings) {
	for _, p := range s.patches {
		i.Poke(p.addr, p.v)
	}
}

// inputFunc returns the function supplying input values to the program: the
// values given with -input, then values typed by the user if the program was
// not read from stdin and stdin is a terminal.
func inputFunc(s *settings, e *env) func() (vm.Cell, error) {
	in := s.input
	var pr *prompter
	if s.program != "" && e.tty {
		pr = newPrompter(e.stdin, e.stderr)
	}
	return func() (vm.Cell, error) {
		if len(in) > 0 {
			v := in[0]
			in = in[1:]
			return v, nil
		}
		if pr != nil {
			if f, ok := e.stdout.(flusher); ok {
				f.Flush()
			}
			return pr.next()
		}
		return 0, vm.ErrInputExhausted
	}
}

// execute runs the program until it halts, printing output values one per line.
func execute(i *vm.Instance, s *settings, e *env) error {
	next := inputFunc(s, e)
	for {
		sig, err := i.Run()
		if err != nil {
			return err
		}
		switch sig.Yield {
		case vm.AwaitingInput:
			v, err := next()
			if err != nil {
				return errors.Wrapf(err, "input @pc=%d", i.PC())
			}
			if err = i.SendInput(v); err != nil {
				return err
			}
		case vm.ProducedOutput:
			if _, err = fmt.Fprintln(e.stdout, sig.Value); err != nil {
				return errors.Wrap(err, "write failed")
			}
		case vm.Halted:
			e.log.Info("halted", "instructions", i.InstructionCount())
			for _, a := range s.peek {
				fmt.Fprintf(e.stdout, "[%d] %d\n", a, i.Peek(a))
			}
			return nil
		}
	}
}

// searchTarget looks for the noun and verb, the values at addresses 1 and 2,
// that leave target at address 0 when the program halts.
func searchTarget(i *vm.Instance, s *settings, e *env) error {
	for noun := vm.Cell(0); noun <= 99; noun++ {
		for verb := vm.Cell(0); verb <= 99; verb++ {
			i.Reset()
			applyPatches(i, s)
			i.Poke(1, noun)
			i.Poke(2, verb)
			if _, err := i.Exec(s.input...); err != nil {
				return errors.Wrapf(err, "noun=%d verb=%d", noun, verb)
			}
			if i.Peek(0) == s.target.v {
				e.log.Info("found", "noun", noun, "verb", verb)
				_, err := fmt.Fprintln(e.stdout, 100*noun+verb)
				return errors.Wrap(err, "write failed")
			}
		}
	}
	return errors.Errorf("unable to find a noun and verb to get target %d", s.target.v)
}

func amplify(p *vm.Program, s *settings, e *env) error {
	r, err := amp.New(p, len(s.phases), vm.Logger(e.log))
	if err != nil {
		return err
	}
	r.Logger = e.log
	best, order, err := r.Max(s.phases)
	if err != nil {
		return err
	}
	e.log.Info("max signal", "signal", best, "phases", order)
	_, err = fmt.Fprintln(e.stdout, best)
	return errors.Wrap(err, "write failed")
}

func run(s *settings, e *env) error {
	p, err := loadProgram(s, e)
	if err != nil {
		return err
	}
	e.log.Debug("loaded", "cells", p.Len())

	switch {
	case s.disasm:
		return asm.DisassembleAll(p.Cells(), 0, e.stdout)
	case len(s.phases) > 0:
		return amplify(p, s, e)
	}

	i, err := newVM(p, s, e)
	if err != nil {
		return err
	}
	if s.target.set {
		err = searchTarget(i, s, e)
	} else {
		err = execute(i, s, e)
	}
	if s.dump {
		if derr := dumpVM(i, e.stdout); err == nil {
			err = derr
		}
	}
	return err
}

func atExit(err error, debug bool) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	s, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		atExit(err, false)
	}

	log, closeLog, err := newLogger(os.Stderr, s.logFile, s.debug)
	if err != nil {
		atExit(err, s.debug)
	}

	stdout := bufio.NewWriter(os.Stdout)
	err = run(s, &env{
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: os.Stderr,
		tty:    isTerminal(os.Stdin),
		log:    log,
	})
	if ferr := stdout.Flush(); err == nil {
		err = errors.Wrap(ferr, "flush failed")
	}
	closeLog()
	atExit(err, s.debug)
}

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
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func testEnv(stdin string) (*env, *bytes.Buffer) {
	var out bytes.Buffer
	return &env{
		stdin:  strings.NewReader(stdin),
		stdout: &out,
		stderr: io.Discard,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, &out
}

func parse(t *testing.T, args ...string) *settings {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	s, err := parseArgs(fs, args)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return s
}

func TestParseArgs(t *testing.T) {
	s := parse(t, "-input", "1,2", "-input", "-3", "-patch", "1=12,2=2", "-peek", "0", "-target", "42", "-dump")
	if s.input.String() != "1,2,-3" {
		t.Errorf("bad input %v", s.input.String())
	}
	if s.patches.String() != "1=12,2=2" {
		t.Errorf("bad patches %v", s.patches.String())
	}
	if s.peek.String() != "0" || !s.target.set || s.target.v != 42 || !s.dump {
		t.Errorf("bad settings %+v", s)
	}

	for _, args := range [][]string{
		{"-input", "x"},
		{"-patch", "1:2"},
		{"-patch", "-1=2"},
		{"-peek", "-5"},
		{"-target", "1.5"},
		{"stray"},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		if _, err := parseArgs(fs, args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestParseArgs_config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.toml")
	err := os.WriteFile(cfg, []byte(`
program = "prog.txt"
input = [5, 6]
phases = [0, 1]
patch = { 2 = 20, 1 = 10 }
peek = [0, 3]
target = 100
dump = true
`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	s := parse(t, "-config", cfg, "-input", "7", "-dump=false")
	if s.program != filepath.Join(dir, "prog.txt") {
		t.Errorf("bad program path %s", s.program)
	}
	if s.input.String() != "7" {
		t.Errorf("command line did not override input: %s", s.input.String())
	}
	if s.phases.String() != "0,1" || s.patches.String() != "1=10,2=20" || s.peek.String() != "0,3" {
		t.Errorf("bad settings: %s %s %s", s.phases.String(), s.patches.String(), s.peek.String())
	}
	if !s.target.set || s.target.v != 100 || s.dump {
		t.Errorf("bad settings %+v", s)
	}

	if err = os.WriteFile(cfg, []byte("bogus = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err = parseArgs(fs, []string{"-config", cfg}); err == nil {
		t.Error("expected unknown setting error")
	}
}

func TestRun(t *testing.T) {
	var tests = [...]struct {
		name  string
		args  []string
		stdin string
		out   string
	}{
		{"quine", nil, "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99\n",
			"109\n1\n204\n-1\n1001\n100\n1\n100\n1008\n100\n16\n101\n1006\n101\n0\n99\n"},
		{"input", []string{"-input", "8"}, "3,9,8,9,10,9,4,9,99,-1,8", "1\n"},
		{"patch-peek", []string{"-patch", "1=9,2=10", "-peek", "0,3"}, "1,0,0,3,2,3,11,0,99,30,40,50", "[0] 3500\n[3] 70\n"},
		{"target", []string{"-target", "3500"}, "1,0,0,3,2,3,11,0,99,30,40,50", "270\n"},
		{"phases", []string{"-phases", "0,1,2,3,4"}, "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0", "43210\n"},
		{"disasm", []string{"-disasm"}, "1101,1,2,0,99", "         0\tadd 1 2 [0]\n         4\thlt\n"},
		{"dump", []string{"-dump"}, "1101,1,2,0,99", "3,1,2,0,99\n"},
		{"dump-high", []string{"-dump"}, "1101,5,6,3000000,1101,1,1,2000000,99",
			"1101,5,6,3000000,1101,1,1,2000000,99\n# 2000000=2\n# 3000000=11\n"},
	}
	for _, test := range tests {
		e, out := testEnv(test.stdin)
		if err := run(parse(t, test.args...), e); err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if out.String() != test.out {
			t.Errorf("%s: expected %q, got %q", test.name, test.out, out.String())
		}
	}
}

func TestRun_errors(t *testing.T) {
	e, _ := testEnv("3,0,99")
	err := run(parse(t), e)
	if errors.Cause(err) != vm.ErrInputExhausted {
		t.Errorf("expected ErrInputExhausted, got %v", err)
	}

	e, _ = testEnv("1,2,x")
	err = run(parse(t), e)
	if _, ok := errors.Cause(err).(*vm.ParseError); !ok {
		t.Errorf("expected parse error, got %v", err)
	}

	e, _ = testEnv("")
	e.tty = true
	if err = run(parse(t), e); err != errNoInput {
		t.Errorf("expected errNoInput, got %v", err)
	}

	e, _ = testEnv("1,0,0,0,99")
	if err = run(parse(t, "-target", "-1"), e); err == nil {
		t.Error("expected target search failure")
	}
}

// With a program file and a terminal on stdin, missing input values are read
// from the user.
func TestRun_prompt(t *testing.T) {
	prog := filepath.Join(t.TempDir(), "prog.txt")
	if err := os.WriteFile(prog, []byte("3,0,3,1,1,0,1,0,4,0,99"), 0644); err != nil {
		t.Fatal(err)
	}
	e, out := testEnv("oops\n\n5\n")
	e.tty = true
	var prompts bytes.Buffer
	e.stderr = &prompts
	if err := run(parse(t, "-program", prog, "-input", "4"), e); err != nil {
		t.Fatalf("%+v", err)
	}
	if out.String() != "9\n" {
		t.Errorf("expected 9, got %q", out.String())
	}
	if !strings.Contains(prompts.String(), `invalid value "oops"`) {
		t.Errorf("bad prompts %q", prompts.String())
	}
}

func TestNewLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")
	var buf bytes.Buffer
	l, closeLog, err := newLogger(&buf, logFile, true)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hello", "answer", 42)
	if err = closeLog(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "answer=42") {
		t.Errorf("bad text log %q", buf.String())
	}
	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"answer":42`) {
		t.Errorf("bad JSON log %q", b)
	}
}

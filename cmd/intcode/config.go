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
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Config is the TOML form of the command line settings:
//
//	program = "day02.txt"   # relative to the config file
//	input = [1]
//	phases = [5, 6, 7, 8, 9]
//	patch = { 1 = 12, 2 = 2 }
//	peek = [0]
//	target = 19690720
//	disasm = false
//	dump = false
//	debug = false
//	log = "intcode.log"
type Config struct {
	Program string           `toml:"program"`
	Input   []int64          `toml:"input"`
	Phases  []int64          `toml:"phases"`
	Patch   map[string]int64 `toml:"patch"`
	Peek    []int            `toml:"peek"`
	Target  *int64           `toml:"target"`
	Disasm  bool             `toml:"disasm"`
	Dump    bool             `toml:"dump"`
	Debug   bool             `toml:"debug"`
	Log     string           `toml:"log"`
}

// settings for a run, built from the command line and config file.
type settings struct {
	program string
	input   cellList
	phases  cellList
	patches patchList
	peek    addrList
	target  optCell
	disasm  bool
	dump    bool
	debug   bool
	logFile string
}

// loadConfig parses the named TOML file. File names in the configuration are
// made relative to the directory of the file.
func loadConfig(fileName string) (*Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "read config failed")
	}
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("%s: unknown setting %q", fileName, keys[0].String())
	}
	dir := filepath.Dir(fileName)
	if c.Program != "" && !filepath.IsAbs(c.Program) {
		c.Program = filepath.Join(dir, c.Program)
	}
	if c.Log != "" && !filepath.IsAbs(c.Log) {
		c.Log = filepath.Join(dir, c.Log)
	}
	return &c, nil
}

// settings converts the configuration to run settings.
func (c *Config) settings() (*settings, error) {
	s := &settings{
		program: c.Program,
		peek:    addrList(c.Peek),
		disasm:  c.Disasm,
		dump:    c.Dump,
		debug:   c.Debug,
		logFile: c.Log,
	}
	for _, v := range c.Input {
		s.input = append(s.input, vm.Cell(v))
	}
	for _, v := range c.Phases {
		s.phases = append(s.phases, vm.Cell(v))
	}
	for a, v := range c.Patch {
		p, err := parsePatch(a, "0")
		if err != nil {
			return nil, err
		}
		p.v = vm.Cell(v)
		s.patches = append(s.patches, p)
	}
	sort.Slice(s.patches, func(i, j int) bool { return s.patches[i].addr < s.patches[j].addr })
	for _, a := range s.peek {
		if a < 0 {
			return nil, errors.Errorf("invalid peek address %d", a)
		}
	}
	if c.Target != nil {
		s.target = optCell{vm.Cell(*c.Target), true}
	}
	return s, nil
}

// override copies the value of the named flag from src to dst.
func (dst *settings) override(src *settings, name string) {
	switch name {
	case "program":
		dst.program = src.program
	case "input":
		dst.input = src.input
	case "phases":
		dst.phases = src.phases
	case "patch":
		dst.patches = src.patches
	case "peek":
		dst.peek = src.peek
	case "target":
		dst.target = src.target
	case "disasm":
		dst.disasm = src.disasm
	case "dump":
		dst.dump = src.dump
	case "debug":
		dst.debug = src.debug
	case "log":
		dst.logFile = src.logFile
	}
}

// parseArgs parses the command line arguments, loading the config file given
// with -config if any. Flags explicitly set on the command line override the
// config file.
func parseArgs(fs *flag.FlagSet, args []string) (*settings, error) {
	var (
		s       settings
		cfgFile string
	)
	fs.StringVar(&s.program, "program", "", "Load program from file `filename` instead of stdin")
	fs.StringVar(&cfgFile, "config", "", "Load settings from TOML file `filename`")
	fs.Var(&s.input, "input", "comma separated input `values` (can be specified multiple times)")
	fs.Var(&s.phases, "phases", "run an amplifier ring and search the best permutation of phase `settings`")
	fs.Var(&s.patches, "patch", "write `addr=value` to memory before running (can be specified multiple times)")
	fs.Var(&s.peek, "peek", "print the value at `addr` after the program halts (can be specified multiple times)")
	fs.Var(&s.target, "target", "search noun and verb (addresses 1 and 2) such that address 0 holds `value` on halt")
	fs.BoolVar(&s.disasm, "disasm", false, "print a disassembly of the program and exit")
	fs.BoolVar(&s.dump, "dump", false, "dump memory upon exit")
	fs.BoolVar(&s.debug, "debug", false, "enable debug diagnostics and execution trace")
	fs.StringVar(&s.logFile, "log", "", "also write JSON logs to `filename`")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if cfgFile == "" {
		return &s, nil
	}
	c, err := loadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	fileSettings, err := c.settings()
	if err != nil {
		return nil, errors.Wrap(err, cfgFile)
	}
	fs.Visit(func(f *flag.Flag) {
		fileSettings.override(&s, f.Name)
	})
	return fileSettings, nil
}

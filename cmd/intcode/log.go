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
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

// newLogger returns a logger writing text records to w and, if logFile is not
// empty, JSON records to that file. The returned function closes the log file.
func newLogger(w io.Writer, logFile string, debug bool) (*slog.Logger, func() error, error) {
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}
	closer := func() error { return nil }
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log failed")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closer = f.Close
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

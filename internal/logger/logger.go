// Copyright 2026 lamW Authors
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

// Package logger configures the process-wide structured logger of the lamw
// tool. Library packages never log; only the command layer does.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Config selects the handler installed by Setup.
type Config struct {
	// Debug lowers the level to Debug and records the source location.
	Debug bool

	// JSON selects slog.JSONHandler instead of slog.TextHandler.
	JSON bool

	// Writer receives log records. Defaults to os.Stderr.
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Setup installs a logger built from cfg and returns a function that restores
// the discarding logger.
func Setup(cfg Config) func() {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	return func() {
		mu.Lock()
		global = discard()
		mu.Unlock()
	}
}

// L returns the active logger. Before Setup it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

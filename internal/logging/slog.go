// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
)

const messageKey = "message"

// SlogConfig is the configuration of a handler created by [NewSlogHandler].
type SlogConfig struct {
	// DefaultLevel applies to records without a module or with a module that
	// has no level of its own.
	DefaultLevel slog.Level

	// Modules maps a module name (the value of the "module" attribute) to
	// its level.
	Modules map[string]slog.Level
}

// ParseLevels parses a string such as "error;runtime=debug" into a config.
func ParseLevels(s string) (SlogConfig, error) {
	cfg := SlogConfig{DefaultLevel: slog.LevelError, Modules: map[string]slog.Level{}}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' }) {
		module, level, ok := strings.Cut(part, "=")
		if !ok {
			module, level = "", part
		}

		var l slog.Level
		err := l.UnmarshalText([]byte(strings.TrimSpace(level)))
		if err != nil {
			return SlogConfig{}, errors.BadRequest.WithFormat("invalid log level %q: %w", level, err)
		}

		module = strings.ToLower(strings.TrimSpace(module))
		if module == "" || module == "*" {
			cfg.DefaultLevel = l
		} else {
			cfg.Modules[module] = l
		}
	}
	return cfg, nil
}

// ConsoleSlogWriter returns a writer that renders records in a human readable
// format. Handlers created by [NewSlogHandler] with this writer are formatted
// for the console.
func ConsoleSlogWriter(w io.Writer, color bool) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
		FormatMessage: func(i interface{}) string {
			s, ok := i.(string)
			if ok {
				return s
			}
			return fmt.Sprint(i)
		},
	}
}

// NewSlogHandler returns a JSON handler writing to w, filtered by the module
// levels of the config. Wrap w with [ConsoleSlogWriter] to render the records
// for the console instead.
func NewSlogHandler(cfg SlogConfig, w io.Writer) (slog.Handler, error) {
	if w == nil {
		return nil, errors.BadRequest.With("missing writer")
	}

	lowest := cfg.DefaultLevel
	modules := make(map[string]slog.Level, len(cfg.Modules))
	for m, l := range cfg.Modules {
		modules[strings.ToLower(m)] = l
		if l < lowest {
			lowest = l
		}
	}

	opts := &slog.HandlerOptions{
		Level: lowest,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Zerolog's console writer expects "message"
			if len(groups) > 0 || a.Key != slog.MessageKey {
				return a
			}
			if a.Value.Kind() == slog.KindString {
				return slog.Any(messageKey, a.Value)
			}
			return slog.String(messageKey, fmt.Sprint(a.Value.Any()))
		},
	}

	return &logHandler{
		handler:      slog.NewJSONHandler(w, opts),
		defaultLevel: cfg.DefaultLevel,
		lowestLevel:  lowest,
		modules:      modules,
	}, nil
}

// logHandler filters records by module and adds the attributes stored in the
// context.
type logHandler struct {
	handler      slog.Handler
	defaultLevel slog.Level
	lowestLevel  slog.Level
	modules      map[string]slog.Level
	module       string
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	i := *h
	i.handler = h.handler.WithAttrs(attrs)
	if m, ok := moduleOf(attrs); ok {
		i.module = m
	}
	return &i
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	i := *h
	i.handler = h.handler.WithGroup(name)
	return &i
}

func (h *logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.module != "" {
		return level >= h.levelFor(h.module)
	}
	if m, ok := moduleOf(Attrs(ctx)); ok {
		return level >= h.levelFor(m)
	}
	return level >= h.lowestLevel
}

func (h *logHandler) Handle(ctx context.Context, record slog.Record) error {
	module := h.module
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == "module" {
			module = a.Value.String()
			return false
		}
		return true
	})

	attrs := Attrs(ctx)
	if module == "" {
		module, _ = moduleOf(attrs)
	}

	if record.Level < h.levelFor(module) {
		return nil
	}

	record.AddAttrs(attrs...)
	return h.handler.Handle(ctx, record)
}

func (h *logHandler) levelFor(module string) slog.Level {
	if l, ok := h.modules[strings.ToLower(module)]; ok {
		return l
	}
	return h.defaultLevel
}

func moduleOf(attrs []slog.Attr) (string, bool) {
	for _, a := range attrs {
		if a.Key == "module" {
			return a.Value.String(), true
		}
	}
	return "", false
}

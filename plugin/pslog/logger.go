// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

// Package pslog provides a plug-in numbered.Logger wrapping slog.Logger for usage in
// a numbered.List.
//
// This can be used like so:
//
//	list := numbered.New(records, &numbered.Options[int]{
//		Logger: pslog.New(slog.Default()),
//		// ...other opts
//	})
package pslog

import (
	"context"
	"log/slog"

	"github.com/maypok86/numbered"
)

var _ numbered.Logger = (*Logger)(nil)

// Option applies options to the logger.
type Option func(*options)

type options struct {
	errKey string
}

// WithErrorKey sets the attribute key the error is logged under. It defaults to "err".
func WithErrorKey(key string) Option {
	return func(o *options) {
		o.errKey = key
	}
}

// Logger that wraps the slog.Logger.
type Logger struct {
	log    *slog.Logger
	errKey string
}

// New returns a new Logger.
func New(log *slog.Logger, opts ...Option) *Logger {
	if log == nil {
		panic("pslog: log is nil")
	}
	o := options{errKey: "err"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Logger{
		log:    log,
		errKey: o.errKey,
	}
}

// Warn is for the numbered.Logger interface.
func (l *Logger) Warn(ctx context.Context, msg string, err error) {
	l.log.WarnContext(ctx, msg, slog.Any(l.errKey, err))
}

// Error is for the numbered.Logger interface.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.log.ErrorContext(ctx, msg, slog.Any(l.errKey, err))
}

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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/maypok86/numbered"
	"github.com/maypok86/numbered/parallelism"
	"github.com/maypok86/numbered/plugin/pslog"
	"github.com/maypok86/numbered/stats"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	undo, err := setMaxProcs(logger)
	if err != nil {
		logger.Warn("failed to set GOMAXPROCS", slog.Any("err", err))
	}
	defer undo()

	counter := stats.NewCounter()
	l := numbered.New([]numbered.Record[int]{
		{ID: 234, Field: 10},
		{ID: 125, Field: 20},
		{ID: 325, Field: 30},
		{ID: 14, Field: 40},
		{ID: 255, Field: 50},
	}, &numbered.Options[int]{
		StatsRecorder: counter,
		Logger:        pslog.New(logger),
	})

	fmt.Println(l)
	index, ok := l.ReplaceFirstSmaller(numbered.Record[int]{ID: 20, Field: 100})
	fmt.Println(l)

	s := l.Stats()
	logger.Info("replace finished",
		slog.Int("index", index),
		slog.Bool("replaced", ok),
		slog.Uint64("comparisons", s.Comparisons()),
		slog.Int("default_threads", parallelism.DefaultNumThreads()),
	)
}

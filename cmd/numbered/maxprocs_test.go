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
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maypok86/numbered/parallelism"
)

func TestSetMaxProcs(t *testing.T) {
	prev := runtime.GOMAXPROCS(0)

	var b bytes.Buffer
	undo, err := setMaxProcs(slog.New(slog.NewTextHandler(&b, nil)))
	require.NoError(t, err)
	t.Cleanup(func() {
		undo()
		require.Equal(t, prev, runtime.GOMAXPROCS(0))
	})

	procs := runtime.GOMAXPROCS(0)
	require.GreaterOrEqual(t, procs, 1)
	require.LessOrEqual(t, parallelism.DefaultNumThreads(), min(procs, parallelism.MaxDefaultThreads))
	require.Contains(t, b.String(), "maxprocs")
}

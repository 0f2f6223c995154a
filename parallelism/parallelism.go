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

// Package parallelism picks a default number of workers for the current process.
package parallelism

import (
	"errors"
	"runtime"
)

const (
	// FallbackThreads is used when the available parallelism cannot be determined.
	FallbackThreads = 1
	// MaxDefaultThreads caps the default worker count. Past this point start-up cost
	// grows and additional workers give diminishing returns. The value is empirical and
	// the ideal one depends on the hardware.
	MaxDefaultThreads = 20
)

var errUnknownParallelism = errors.New("parallelism: available parallelism is unknown")

// query reports the available parallelism. It is replaced in tests.
var query = available

// DefaultNumThreads returns the number of workers to use when none is specified.
//
// The result is always in [FallbackThreads, MaxDefaultThreads]. It follows GOMAXPROCS, so a process
// running under a CPU quota should size GOMAXPROCS from that quota first (for example with
// go.uber.org/automaxprocs/maxprocs.Set in main), otherwise the host CPU count is used.
func DefaultNumThreads() int {
	return defaultNumThreads(query)
}

func defaultNumThreads(query func() (int, error)) int {
	n, err := query()
	if err != nil || n < FallbackThreads {
		n = FallbackThreads
	}
	return min(n, MaxDefaultThreads)
}

// available returns the number of CPUs this process can run on at the same time, as far as the
// runtime knows. NumCPU honors the affinity mask; a cgroup quota is only seen through GOMAXPROCS.
func available() (int, error) {
	maxProcs := runtime.GOMAXPROCS(0)
	numCPU := runtime.NumCPU()
	n := min(maxProcs, numCPU)
	if n <= 0 {
		return 0, errUnknownParallelism
	}
	return n, nil
}

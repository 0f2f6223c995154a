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

package stats

import "sync/atomic"

// Counter is a goroutine-safe Recorder implementation for use by numbered.List.
type Counter struct {
	replacements atomic.Uint64
	discards     atomic.Uint64
	comparisons  atomic.Uint64
}

var (
	_ Recorder   = (*Counter)(nil)
	_ Snapshoter = (*Counter)(nil)
)

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		replacements: c.replacements.Load(),
		discards:     c.discards.Load(),
		comparisons:  c.comparisons.Load(),
	}
}

// RecordReplacement records a candidate that overwrote a record.
func (c *Counter) RecordReplacement(comparisons int) {
	c.replacements.Add(1)
	//nolint:gosec // comparisons is never negative
	c.comparisons.Add(uint64(comparisons))
}

// RecordDiscard records a candidate that found no record with a smaller id.
func (c *Counter) RecordDiscard(comparisons int) {
	c.discards.Add(1)
	//nolint:gosec // comparisons is never negative
	c.comparisons.Add(uint64(comparisons))
}

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

// Recorder accumulates statistics during the operation of a numbered.List.
type Recorder interface {
	// RecordReplacement records a candidate that overwrote a record after the given number of comparisons.
	RecordReplacement(comparisons int)
	// RecordDiscard records a candidate that was dropped after the given number of comparisons.
	RecordDiscard(comparisons int)
}

// Snapshoter allows getting a stats snapshot from a recorder that implements it.
type Snapshoter interface {
	// Snapshot returns a snapshot of the recorder's values.
	Snapshot() Stats
}

// NoopRecorder is a Recorder that discards everything.
type NoopRecorder struct{}

func (NoopRecorder) RecordReplacement(comparisons int) {}
func (NoopRecorder) RecordDiscard(comparisons int)     {}

// Snapshot always returns zero Stats.
func (NoopRecorder) Snapshot() Stats {
	return Stats{}
}

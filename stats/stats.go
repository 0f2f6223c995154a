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

// Package stats accumulates statistics about replace operations performed on a numbered.List.
package stats

import "math"

// Stats are statistics about the replace operations of a numbered.List.
type Stats struct {
	replacements uint64
	discards     uint64
	comparisons  uint64
}

// Replacements returns the number of candidates that overwrote a record.
func (s Stats) Replacements() uint64 {
	return s.replacements
}

// Discards returns the number of candidates that found no record with a smaller id and were dropped.
func (s Stats) Discards() uint64 {
	return s.discards
}

// Comparisons returns the total number of id comparisons made while scanning.
func (s Stats) Comparisons() uint64 {
	return s.comparisons
}

// Attempts returns the number of times a candidate was offered to the list.
//
// NOTE: the values of the metrics are undefined in case of overflow. If you require specific handling, we recommend
// implementing your own stats.Recorder.
func (s Stats) Attempts() uint64 {
	return checkedAdd(s.replacements, s.discards)
}

// ReplacementRatio returns the ratio of attempts that overwrote a record.
//
// NOTE: replacementRatio + discardRatio =~ 1.0.
func (s Stats) ReplacementRatio() float64 {
	attempts := s.Attempts()
	if attempts == 0 {
		return 0.0
	}
	return float64(s.replacements) / float64(attempts)
}

// DiscardRatio returns the ratio of attempts that were discarded.
//
// NOTE: replacementRatio + discardRatio =~ 1.0.
func (s Stats) DiscardRatio() float64 {
	attempts := s.Attempts()
	if attempts == 0 {
		return 0.0
	}
	return float64(s.discards) / float64(attempts)
}

// AverageComparisons returns the mean number of comparisons made per attempt.
func (s Stats) AverageComparisons() float64 {
	attempts := s.Attempts()
	if attempts == 0 {
		return 0.0
	}
	return float64(s.comparisons) / float64(attempts)
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}

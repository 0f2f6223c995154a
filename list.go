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

// Package numbered provides a fixed-length list of numbered records that can only be changed by replacing
// the first record with a smaller id than a candidate.
//
// A List is not safe for concurrent use. Callers that share one across goroutines must provide their own
// synchronization, for example a sync.RWMutex held for writing around ReplaceFirstSmaller.
package numbered

import (
	"context"
	"iter"
	"strings"

	"github.com/maypok86/numbered/stats"
)

// List is a fixed-length sequence of records.
//
// It exposes no way to set an arbitrary element. The only write is ReplaceFirstSmaller.
// The zero value is an empty List with no statistics and no logging.
type List[T any] struct {
	records       []Record[T]
	statsRecorder stats.Recorder
	retire        func(old Record[T]) error
	logger        Logger
}

// New returns a List holding a copy of records. o may be nil.
func New[T any](records []Record[T], o *Options[T]) *List[T] {
	var opts Options[T]
	if o != nil {
		opts = *o
	}
	opts.setDefaults()

	cp := make([]Record[T], len(records))
	copy(cp, records)

	return &List[T]{
		records:       cp,
		statsRecorder: opts.StatsRecorder,
		retire:        opts.Retire,
		logger:        opts.Logger,
	}
}

// Len returns the number of records. It never changes.
func (l *List[T]) Len() int {
	return len(l.records)
}

// At returns the record at index i. It panics if i is out of range.
func (l *List[T]) At(i int) Record[T] {
	return l.records[i]
}

// All returns an iterator over the index and record of every element, in order.
func (l *List[T]) All() iter.Seq2[int, Record[T]] {
	return func(yield func(int, Record[T]) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Records returns a copy of the records.
func (l *List[T]) Records() []Record[T] {
	cp := make([]Record[T], len(l.records))
	copy(cp, l.records)
	return cp
}

// ReplaceFirstSmaller overwrites the first record whose id is strictly less than candidate.ID.
//
// It returns the index that was overwritten and true, or -1 and false if every record has an id greater than
// or equal to candidate.ID, in which case the candidate is discarded and the list is left unchanged.
func (l *List[T]) ReplaceFirstSmaller(candidate Record[T]) (int, bool) {
	old, index, comparisons := replaceFirstSmaller(l.records, candidate)
	recorder := l.recorder()
	if index < 0 {
		recorder.RecordDiscard(comparisons)
		return -1, false
	}

	recorder.RecordReplacement(comparisons)
	if l.retire != nil {
		if err := l.retire(old); err != nil {
			l.logger.Warn(context.Background(), "numbered: failed to retire replaced record", err)
		}
	}
	return index, true
}

func (l *List[T]) recorder() stats.Recorder {
	if l.statsRecorder == nil {
		return stats.NoopRecorder{}
	}
	return l.statsRecorder
}

// Stats returns a current snapshot of this list's cumulative statistics.
// All statistics are zero if no stats.Snapshoter recorder was configured.
func (l *List[T]) Stats() stats.Stats {
	s, ok := l.statsRecorder.(stats.Snapshoter)
	if !ok {
		return stats.Stats{}
	}
	return s.Snapshot()
}

// String returns the records in order, e.g. "[{id: 1, field: a} {id: 2, field: b}]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range l.records {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	t.Parallel()

	s := Stats{}
	require.Equal(t, uint64(0), s.Attempts())
	require.Equal(t, 0.0, s.ReplacementRatio())
	require.Equal(t, 0.0, s.DiscardRatio())
	require.Equal(t, 0.0, s.AverageComparisons())

	s = Stats{
		replacements: 3,
		discards:     1,
		comparisons:  10,
	}
	require.Equal(t, uint64(3), s.Replacements())
	require.Equal(t, uint64(1), s.Discards())
	require.Equal(t, uint64(10), s.Comparisons())
	require.Equal(t, uint64(4), s.Attempts())
	require.Equal(t, 0.75, s.ReplacementRatio())
	require.Equal(t, 0.25, s.DiscardRatio())
	require.Equal(t, 2.5, s.AverageComparisons())
}

func TestStats_Overflow(t *testing.T) {
	t.Parallel()

	s := Stats{
		replacements: math.MaxUint64,
		discards:     1,
	}
	require.Equal(t, uint64(math.MaxUint64), s.Attempts())
}

func TestNoopRecorder(t *testing.T) {
	t.Parallel()

	var r NoopRecorder
	r.RecordReplacement(5)
	r.RecordDiscard(5)
	require.Equal(t, Stats{}, r.Snapshot())
}

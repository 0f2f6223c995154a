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

package prometheus

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/maypok86/numbered"
	"github.com/maypok86/numbered/stats"
)

func newList() *numbered.List[int] {
	return numbered.New([]numbered.Record[int]{
		{ID: 234, Field: 10},
		{ID: 125, Field: 20},
		{ID: 325, Field: 30},
		{ID: 14, Field: 40},
		{ID: 255, Field: 50},
	}, &numbered.Options[int]{
		StatsRecorder: stats.NewCounter(),
	})
}

func TestCollector_Describe(t *testing.T) {
	t.Parallel()

	collector := NewCollector("test", "list", newList())
	descsCh := make(chan *prometheus.Desc, 3)

	collector.Describe(descsCh)
	close(descsCh)

	count := 0
	for range descsCh {
		count++
	}
	require.Equal(t, 3, count)
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	l := newList()
	l.ReplaceFirstSmaller(numbered.Record[int]{ID: 20, Field: 100})
	l.ReplaceFirstSmaller(numbered.Record[int]{ID: 1, Field: 999})

	collector := NewCollector("test", "list", l)

	count := testutil.CollectAndCount(
		collector,
		"test_list_replacements",
		"test_list_discards",
		"test_list_comparisons",
	)
	require.Equal(t, 3, count)

	expected := `
# HELP test_list_comparisons Number of id comparisons made while scanning for a replacement slot.
# TYPE test_list_comparisons counter
test_list_comparisons 9
# HELP test_list_discards Number of candidates discarded because no record had a smaller id.
# TYPE test_list_discards counter
test_list_discards 1
# HELP test_list_replacements Number of candidates that replaced a record.
# TYPE test_list_replacements counter
test_list_replacements 1
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

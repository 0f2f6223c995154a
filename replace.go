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

package numbered

import "github.com/maypok86/numbered/unsafeslice"

// ReplaceFirstSmaller overwrites the first record whose id is strictly less than candidate.ID and returns its
// index. Records are scanned in ascending index order. If no record qualifies, the candidate is discarded and
// -1 is returned.
//
// records is treated as read-only by everything except the single overwrite, which bypasses bounds
// checking. The length of records never changes and no other element is touched.
//
// ReplaceFirstSmaller must not run while anything else reads or writes records.
func ReplaceFirstSmaller[T any](records []Record[T], candidate Record[T]) int {
	_, index, _ := replaceFirstSmaller(records, candidate)
	return index
}

// replaceFirstSmaller returns the outgoing record, the overwritten index (or -1), and the number of id
// comparisons made.
func replaceFirstSmaller[T any](records []Record[T], candidate Record[T]) (Record[T], int, int) {
	for i := range records {
		if records[i].ID < candidate.ID {
			// i comes from ranging over records, so it is in bounds.
			old := unsafeslice.Swap(records, i, candidate)
			return old, i, i + 1
		}
	}
	return Record[T]{}, -1, len(records)
}

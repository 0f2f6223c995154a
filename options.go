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

import "github.com/maypok86/numbered/stats"

// Options configure a List. A nil *Options is valid and selects the defaults.
type Options[T any] struct {
	// StatsRecorder accumulates statistics about ReplaceFirstSmaller calls.
	//
	// Statistics are not collected by default.
	StatsRecorder stats.Recorder
	// Retire is called exactly once with the record pushed out of the list by ReplaceFirstSmaller,
	// after the candidate is already in its slot.
	//
	// By default the outgoing record is simply overwritten. Its memory is reclaimed by the garbage
	// collector, but any resources it owns (files, connections) are not released. Set Retire when
	// T owns such resources.
	//
	// NOTE: errors returned by Retire are logged (using Logger) and then swallowed.
	Retire func(old Record[T]) error
	// Logger specifies the Logger implementation that will be used for logging warning and errors.
	//
	// Logging is disabled by default.
	Logger Logger
}

func (o *Options[T]) setDefaults() {
	if o.StatsRecorder == nil {
		o.StatsRecorder = stats.NoopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
}

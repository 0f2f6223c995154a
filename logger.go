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

import "context"

// Logger is the interface used to get log output from numbered.
//
// A List never fails an operation because of something it logs. Warn is used when a
// replaced record could not be retired (Options.Retire returned an error): the
// candidate is already in place and the old record may still hold resources. Error
// is reserved for failures that leave a List unusable; none exist today, and
// implementations must still accept it so that adapters such as pslog stay complete.
type Logger interface {
	// Warn logs a message at the warn level with an error.
	Warn(ctx context.Context, msg string, err error)
	// Error logs a message at the error level with an error.
	Error(ctx context.Context, msg string, err error)
}

type noopLogger struct{}

func (nl noopLogger) Warn(ctx context.Context, msg string, err error)  {}
func (nl noopLogger) Error(ctx context.Context, msg string, err error) {}

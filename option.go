// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

import "time"

// WithPollInterval sets the interval between run status fetches.
// The default is 10 seconds.
func WithPollInterval(interval time.Duration) RunOption {
	return func(options *runOptions) {
		if interval > 0 {
			options.interval = interval
		}
	}
}

// WithOnPoll registers a callback invoked with the run record observed
// at each poll tick, before the status is acted on.
func WithOnPoll(onPoll func(Run)) RunOption {
	return func(options *runOptions) {
		options.onPoll = onPoll
	}
}

// WithFunctionTools registers function tools that may be called
// while the run requires action.
func WithFunctionTools(tools ...Tool) RunOption {
	return func(options *runOptions) {
		for _, tool := range tools {
			if call, ok := tool.(callable); ok {
				if options.tools == nil {
					options.tools = make(map[string]callable)
				}
				options.tools[call.ID()] = call
			}
		}
	}
}

type (
	// RunOption configures AwaitRun.
	RunOption  func(*runOptions)
	runOptions struct {
		interval time.Duration
		onPoll   func(Run)
		tools    map[string]callable
	}
)

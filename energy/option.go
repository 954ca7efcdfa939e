// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package energy

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/enersight/profiler"
)

// Option configures a Profiler.
type Option func(*Profiler)

// WithModel overrides the model the assistant is created with.
func WithModel(model string) Option {
	return func(p *Profiler) {
		if model != "" {
			p.model = model
		}
	}
}

// WithPollInterval overrides the interval between run status fetches.
func WithPollInterval(interval time.Duration) Option {
	return func(p *Profiler) {
		if interval > 0 {
			p.pollInterval = interval
		}
	}
}

// WithAssistantID reuses an existing assistant instead of creating one.
// Reused assistants are never deleted by Analyze.
func WithAssistantID(id string) Option {
	return func(p *Profiler) {
		p.assistantID = id
	}
}

// WithThreadID appends to an existing thread instead of creating one.
func WithThreadID(id string) Option {
	return func(p *Profiler) {
		p.threadID = id
	}
}

// WithKeepResources leaves the created assistant on the server
// after the analysis finishes.
func WithKeepResources() Option {
	return func(p *Profiler) {
		p.keepResources = true
	}
}

// WithLogger sets the logger used during the analysis.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// WithOnStatus registers a callback invoked with the run status
// at each poll tick.
func WithOnStatus(onStatus func(profiler.RunStatus)) Option {
	return func(p *Profiler) {
		p.onStatus = onStatus
	}
}

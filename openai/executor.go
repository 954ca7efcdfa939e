// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package openai implements profiler.Executor against the
// [OpenAI Assistants API].
//
// [OpenAI Assistants API]: https://platform.openai.com/docs/api-reference/assistants
package openai

import (
	"github.com/enersight/profiler"
	"github.com/enersight/profiler/openai/httpclient"
)

var _ profiler.Executor = Executor{}

// Executor calls the Assistants v2 REST endpoints. Each method is a single
// remote call; sequencing and polling live in the profiler package.
type Executor struct {
	clientOptions []httpclient.Option
}

// NewExecutor creates an Executor authenticated with the given API key.
// The key is an explicit dependency rather than being read from the
// process environment here; see internal/config for the default sources.
func NewExecutor(apiKey string, opts ...httpclient.Option) Executor {
	return Executor{clientOptions: append([]httpclient.Option{
		httpclient.WithBaseURL("https://api.openai.com/v1"),
		httpclient.WithHeader("Authorization", "Bearer "+apiKey),
		httpclient.WithHeader("OpenAI-Beta", "assistants=v2"),
	}, opts...)}
}

// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"fmt"

	"github.com/enersight/profiler"
	"github.com/enersight/profiler/openai/httpclient"
)

func (e Executor) CreateRun(ctx context.Context, threadID, assistantID string) (profiler.Run, error) {
	subject := struct {
		AssistantID string `json:"assistant_id"`
	}{
		AssistantID: assistantID,
	}

	resp, err := httpclient.Post[runRecord](ctx, "/threads/"+threadID+"/runs", subject, e.clientOptions...)
	if err != nil {
		return profiler.Run{}, fmt.Errorf("create run: %w", err)
	}

	return fromRun(resp), nil
}

func (e Executor) RetrieveRun(ctx context.Context, threadID, runID string) (profiler.Run, error) {
	resp, err := httpclient.Get[runRecord](ctx, "/threads/"+threadID+"/runs/"+runID, e.clientOptions...)
	if err != nil {
		return profiler.Run{}, fmt.Errorf("retrieve run: %w", err)
	}

	return fromRun(resp), nil
}

func (e Executor) SubmitToolOutputs(
	ctx context.Context,
	threadID, runID string,
	outputs []profiler.ToolOutput,
) (profiler.Run, error) {
	subject := struct {
		ToolOutputs []profiler.ToolOutput `json:"tool_outputs"`
	}{
		ToolOutputs: outputs,
	}

	resp, err := httpclient.Post[runRecord](ctx,
		"/threads/"+threadID+"/runs/"+runID+"/submit_tool_outputs",
		subject, e.clientOptions...,
	)
	if err != nil {
		return profiler.Run{}, fmt.Errorf("submit tool outputs: %w", err)
	}

	return fromRun(resp), nil
}

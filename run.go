// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

import (
	"context"
	"fmt"
	"time"
)

// RunStatus is the lifecycle state of a Run, driven by the server.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusIncomplete     RunStatus = "incomplete"
	RunStatusExpired        RunStatus = "expired"
)

// Terminal reports whether the status is final and the run will not
// progress any further.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusCancelled, RunStatusFailed, RunStatusIncomplete, RunStatusExpired:
		return true
	default:
		return false
	}
}

func (s RunStatus) Succeeded() bool {
	return s == RunStatusCompleted
}

type (
	// Run is one execution of an assistant against a thread's messages.
	Run struct {
		ID          string
		ThreadID    string
		AssistantID string
		Status      RunStatus
		// ToolCalls holds the pending function calls
		// while Status is RunStatusRequiresAction.
		ToolCalls []ToolCall
		LastError *RunLastError
	}

	// ToolCall is a function call requested by the assistant.
	ToolCall struct {
		ID        string
		Name      string
		Arguments string
	}

	// ToolOutput is the result of a ToolCall, submitted back to the run.
	ToolOutput struct {
		ToolCallID string `json:"tool_call_id"`
		Output     string `json:"output"`
	}

	// RunLastError is the error reported by the server for a failed run.
	RunLastError struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
)

// RunError reports a run that reached a terminal status other than completed.
type RunError struct {
	Run Run
}

func (e *RunError) Error() string {
	if e.Run.LastError != nil {
		return fmt.Sprintf("run %s %s: %s: %s", e.Run.ID, e.Run.Status, e.Run.LastError.Code, e.Run.LastError.Message)
	}

	return fmt.Sprintf("run %s %s", e.Run.ID, e.Run.Status)
}

// AwaitRun polls the run at a fixed interval until it reaches a terminal
// status, and returns the final run record. A run ending in any terminal
// status other than completed yields a RunError. Cancellation and deadline
// of the poll are controlled by ctx; without a deadline the poll is still
// bounded by the server expiring the run.
//
// If the run requires function tool outputs, the matching tools registered
// via WithFunctionTools are called and their outputs submitted before
// polling resumes.
func AwaitRun(ctx context.Context, executor Executor, run Run, opts ...RunOption) (Run, error) {
	options := runOptions{interval: 10 * time.Second}
	for _, opt := range opts {
		opt(&options)
	}

	ticker := time.NewTicker(options.interval)
	defer ticker.Stop()

	for {
		if options.onPoll != nil {
			options.onPoll(run)
		}

		switch {
		case run.Status.Succeeded():
			return run, nil
		case run.Status == RunStatusRequiresAction:
			outputs, err := callTools(ctx, run.ToolCalls, options.tools)
			if err != nil {
				return run, err
			}
			run, err = executor.SubmitToolOutputs(ctx, run.ThreadID, run.ID, outputs)
			if err != nil {
				return run, fmt.Errorf("submit tool outputs: %w", err)
			}

			continue
		case run.Status.Terminal():
			return run, &RunError{Run: run}
		}

		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-ticker.C:
		}

		var err error
		run, err = executor.RetrieveRun(ctx, run.ThreadID, run.ID)
		if err != nil {
			return run, fmt.Errorf("retrieve run: %w", err)
		}
	}
}

type callable interface {
	ID() string
	Call(ctx context.Context, argument string) (string, error)
}

func callTools(ctx context.Context, calls []ToolCall, tools map[string]callable) ([]ToolOutput, error) {
	outputs := make([]ToolOutput, 0, len(calls))
	for _, call := range calls {
		tool := tools[call.Name]
		if tool == nil {
			return nil, fmt.Errorf("run requires unknown function tool %q", call.Name) //nolint:err113
		}

		output, err := tool.Call(ctx, call.Arguments)
		if err != nil {
			// Report the failure to the assistant instead of aborting the run.
			output = fmt.Sprintf(`{"error": %q}`, err)
		}
		outputs = append(outputs, ToolOutput{ToolCallID: call.ID, Output: output})
	}

	return outputs, nil
}

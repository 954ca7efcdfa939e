// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

import (
	"context"
	"sync/atomic"
)

// Executor is the remote surface consumed by the profiler: each method is
// a single call against the assistant service. Implementations must be
// safe for use by multiple goroutines.
type Executor interface {
	// UploadFile uploads the file content and sets file.ID.
	UploadFile(ctx context.Context, file *File) error
	// CreateAssistant creates the assistant on the server and sets assistant.ID.
	// Creation is not idempotent: calling twice with identical fields
	// creates two distinct assistants.
	CreateAssistant(ctx context.Context, assistant *Assistant) error
	// ShutdownAssistant deletes the assistant from the server and clears its ID.
	ShutdownAssistant(ctx context.Context, assistant *Assistant) error
	// CreateThread creates the thread, seeding it with thread.Messages, and sets thread.ID.
	CreateThread(ctx context.Context, thread *Thread) error
	// CreateMessage appends the message to the thread and sets message.ID.
	CreateMessage(ctx context.Context, threadID string, message *Message) error
	// CreateRun starts a run of the assistant against the thread's messages.
	CreateRun(ctx context.Context, threadID, assistantID string) (Run, error)
	// RetrieveRun fetches the current run record.
	RetrieveRun(ctx context.Context, threadID, runID string) (Run, error)
	// SubmitToolOutputs provides function tool results to a run that requires action.
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) (Run, error)
	// ListMessages returns all messages in the thread, newest first.
	ListMessages(ctx context.Context, threadID string) ([]Message, error)
}

// SetDefaultExecutor sets the executor used by assistants without a
// dedicated one. If the provided Executor is nil, the default is not changed.
func SetDefaultExecutor(executor Executor) {
	if executor != nil {
		defaultExecutor.Store(&executor)
	}
}

var defaultExecutor atomic.Pointer[Executor] //nolint:gochecknoglobals

// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package profiler provides the domain types and run orchestration for
// driving a remote AI assistant over a conversation thread.
package profiler

import (
	"context"
	"fmt"
)

// Assistant is a purpose-built AI that uses models and calls tools.
// It can be used to run multiple threads on different goroutines simultaneously.
//
// If ID is empty, a new assistant is created on the server on first use.
// Otherwise, the assistant with the given ID is reused and the other fields
// are ignored. Assistants created this way persist on the server until
// Shutdown is called; callers that do not reuse assistants should shut
// them down to avoid unbounded accumulation.
type Assistant struct {
	ID           string
	Name         string
	Description  string
	Model        string
	Instructions string
	Tools        []Tool
	Metadata     map[string]any

	// It provides a different Executor than the default one set by SetDefaultExecutor.
	Executor Executor
	// It provides default options for all runs by this Assistant,
	// and can be overridden by options passed to Run.
	Options []RunOption
}

// Run runs the given thread with the given message(s) on the assistant,
// creating the assistant and the thread on the server if they do not exist.
// It blocks until the run reaches a terminal status and appends the
// assistant's reply to thread.Messages.
func (a *Assistant) Run(ctx context.Context, thread *Thread, messages ...Message) error {
	executor := a.executor()

	if a.ID == "" {
		if err := executor.CreateAssistant(ctx, a); err != nil {
			return fmt.Errorf("create assistant: %w", err)
		}
	}

	if thread.ID == "" {
		thread.Messages = append(thread.Messages, messages...)
		if err := executor.CreateThread(ctx, thread); err != nil {
			return fmt.Errorf("create thread: %w", err)
		}
	} else {
		for i := range messages {
			if err := executor.CreateMessage(ctx, thread.ID, &messages[i]); err != nil {
				return fmt.Errorf("create message: %w", err)
			}
			thread.Messages = append(thread.Messages, messages[i])
		}
	}

	run, err := executor.CreateRun(ctx, thread.ID, a.ID)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	opts := append(a.Options[:len(a.Options):len(a.Options)], WithFunctionTools(a.Tools...))
	if _, err = AwaitRun(ctx, executor, run, opts...); err != nil {
		return err
	}

	replies, err := executor.ListMessages(ctx, thread.ID)
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}
	if len(replies) > 0 {
		thread.Messages = append(thread.Messages, replies[0])
	}

	return nil
}

// Shutdown deletes the assistant from the server.
func (a *Assistant) Shutdown(ctx context.Context) error {
	if err := a.executor().ShutdownAssistant(ctx, a); err != nil {
		return fmt.Errorf("shutdown assistant with executor: %w", err)
	}

	return nil
}

func (a *Assistant) executor() Executor { //nolint:ireturn
	if a.Executor != nil {
		return a.Executor
	}

	return *defaultExecutor.Load()
}

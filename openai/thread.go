// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"fmt"

	"github.com/enersight/profiler"
	"github.com/enersight/profiler/openai/httpclient"
)

func (e Executor) CreateThread(ctx context.Context, thread *profiler.Thread) error {
	subject := struct {
		Messages []createMessage `json:"messages,omitempty"`
		Metadata map[string]any  `json:"metadata,omitempty"`
	}{
		Messages: make([]createMessage, 0, len(thread.Messages)),
		Metadata: thread.Metadata,
	}
	for _, msg := range thread.Messages {
		subject.Messages = append(subject.Messages, toMessage(msg))
	}

	type id struct {
		ID string `json:"id"`
	}
	resp, err := httpclient.Post[id](ctx, "/threads", subject, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create thread: %w", err)
	}
	thread.ID = resp.ID

	return nil
}

func (e Executor) CreateMessage(ctx context.Context, threadID string, msg *profiler.Message) error {
	type id struct {
		ID string `json:"id"`
	}
	resp, err := httpclient.Post[id](ctx, "/threads/"+threadID+"/messages", toMessage(*msg), e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	msg.ID = resp.ID

	return nil
}

// ListMessages returns all messages in the thread, newest first,
// following the server's ordering.
func (e Executor) ListMessages(ctx context.Context, threadID string) ([]profiler.Message, error) {
	type page struct {
		Data []message `json:"data"`
	}
	resp, err := httpclient.Get[page](ctx, "/threads/"+threadID+"/messages", e.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]profiler.Message, 0, len(resp.Data))
	for _, m := range resp.Data {
		messages = append(messages, fromMessage(m))
	}

	return messages, nil
}

// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/enersight/profiler"
	"github.com/enersight/profiler/openai/httpclient"
)

func (e Executor) CreateAssistant(ctx context.Context, asst *profiler.Assistant) error {
	subject := struct {
		Name          string         `json:"name,omitempty"`
		Description   string         `json:"description,omitempty"`
		Model         string         `json:"model"`
		Instructions  string         `json:"instructions,omitempty"`
		Tools         []tool         `json:"tools,omitempty"`
		ToolResources map[string]any `json:"tool_resources,omitempty"`
		Metadata      map[string]any `json:"metadata,omitempty"`
	}{
		Name:          asst.Name,
		Description:   asst.Description,
		Model:         asst.Model,
		Instructions:  asst.Instructions,
		Tools:         toTools(asst.Tools),
		ToolResources: toToolResources(asst.Tools),
		Metadata:      asst.Metadata,
	}
	if subject.Model == "" {
		subject.Model = "gpt-4o"
	}

	type id struct {
		ID string `json:"id"`
	}
	resp, err := httpclient.Post[id](ctx, "/assistants", subject, e.clientOptions...)
	if err != nil {
		return fmt.Errorf("create assistant: %w", err)
	}
	asst.ID = resp.ID

	return nil
}

func (e Executor) ShutdownAssistant(ctx context.Context, asst *profiler.Assistant) error {
	if asst.ID == "" {
		return nil
	}

	if err := httpclient.Delete(ctx, "/assistants/"+asst.ID, e.clientOptions...); err != nil {
		// Ignore 404 for deleting.
		var status *httpclient.StatusError
		if !errors.As(err, &status) || status.Code != http.StatusNotFound {
			return fmt.Errorf("delete assistant: %w", err)
		}
	}
	asst.ID = ""

	return nil
}

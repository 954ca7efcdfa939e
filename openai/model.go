// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"github.com/invopop/jsonschema"

	"github.com/enersight/profiler"
)

// Wire representations of the Assistants v2 payloads.
type (
	function struct {
		Name        string             `json:"name"`
		Description string             `json:"description,omitempty"`
		Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	}
	tool struct {
		Type     string    `json:"type"`
		Function *function `json:"function,omitempty"`
	}
	attachment struct {
		FileID string `json:"file_id,omitempty"`
		Tools  []tool `json:"tools,omitempty"`
	}
	content struct {
		Type      string     `json:"type"`
		Text      *text      `json:"text,omitempty"`
		ImageFile *imageFile `json:"image_file,omitempty"`
	}
	text struct {
		Value string `json:"value"`
	}
	imageFile struct {
		FileID string `json:"file_id"`
	}
	message struct {
		ID          string       `json:"id,omitempty"`
		Role        string       `json:"role"`
		Content     []content    `json:"content"`
		Attachments []attachment `json:"attachments,omitempty"`
	}
	// Message content is a bare string on create but a typed list on read,
	// so creation uses its own shape.
	createContent struct {
		Type      string     `json:"type"`
		Text      string     `json:"text,omitempty"`
		ImageFile *imageFile `json:"image_file,omitempty"`
	}
	createMessage struct {
		Role        string          `json:"role"`
		Content     []createContent `json:"content"`
		Attachments []attachment    `json:"attachments,omitempty"`
	}
	runRecord struct {
		ID             string `json:"id"`
		ThreadID       string `json:"thread_id"`
		AssistantID    string `json:"assistant_id"`
		Status         string `json:"status"`
		RequiredAction *struct {
			SubmitToolOutputs struct {
				ToolCalls []struct {
					ID       string `json:"id"`
					Type     string `json:"type"`
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"submit_tool_outputs"`
		} `json:"required_action,omitempty"`
		LastError *profiler.RunLastError `json:"last_error,omitempty"`
	}
)

func toTool(t profiler.BuiltInTool) tool {
	switch t.(type) {
	case profiler.CodeInterpreter:
		return tool{Type: "code_interpreter"}
	case profiler.FileSearch:
		return tool{Type: "file_search"}
	default:
		return tool{}
	}
}

func toTools(tools []profiler.Tool) []tool {
	subjects := make([]tool, 0, len(tools))
	for _, t := range tools {
		switch t := t.(type) {
		case profiler.BuiltInTool:
			subjects = append(subjects, toTool(t))
		case interface{ Schema() profiler.FunctionSchema }:
			schema := t.Schema()
			subjects = append(subjects, tool{Type: "function", Function: &function{
				Name:        schema.Name,
				Description: schema.Description,
				Parameters:  schema.Parameters,
			}})
		}
	}

	return subjects
}

func toToolResources(tools []profiler.Tool) map[string]any {
	resources := map[string]any{}
	for _, t := range tools {
		switch tool := t.(type) {
		case profiler.CodeInterpreter:
			fileIDs := make([]string, 0, len(tool.Files))
			for _, file := range tool.Files {
				fileIDs = append(fileIDs, file.ID)
			}
			resources["code_interpreter"] = map[string][]string{"file_ids": fileIDs}
		case profiler.FileSearch:
			fileIDs := make([]string, 0, len(tool.Files))
			for _, file := range tool.Files {
				fileIDs = append(fileIDs, file.ID)
			}
			resources["file_search"] = map[string]map[string][]string{"vector_stores": {"file_ids": fileIDs}}
		}
	}
	if len(resources) == 0 {
		return nil
	}

	return resources
}

func toMessage(m profiler.Message) createMessage {
	msg := createMessage{
		Role: string(m.Role),
	}
	for _, c := range m.Content {
		switch cont := c.(type) {
		case profiler.Text:
			msg.Content = append(msg.Content, createContent{Type: "text", Text: cont.Text})
		case profiler.ImageFile:
			msg.Content = append(msg.Content, createContent{Type: "image_file", ImageFile: &imageFile{FileID: cont.FileID}})
		case profiler.Attachment:
			tools := make([]tool, 0, len(cont.For))
			for _, t := range cont.For {
				tools = append(tools, toTool(t))
			}
			msg.Attachments = append(msg.Attachments, attachment{FileID: cont.File.ID, Tools: tools})
		}
	}

	return msg
}

func fromMessage(m message) profiler.Message {
	msg := profiler.Message{
		ID:   m.ID,
		Role: profiler.Role(m.Role),
	}
	for _, c := range m.Content {
		switch c.Type {
		case "text":
			if c.Text != nil {
				msg.Content = append(msg.Content, profiler.Text{Text: c.Text.Value})
			}
		case "image_file":
			if c.ImageFile != nil {
				msg.Content = append(msg.Content, profiler.ImageFile{FileID: c.ImageFile.FileID})
			}
		}
	}

	return msg
}

func fromRun(r runRecord) profiler.Run {
	run := profiler.Run{
		ID:          r.ID,
		ThreadID:    r.ThreadID,
		AssistantID: r.AssistantID,
		Status:      profiler.RunStatus(r.Status),
		LastError:   r.LastError,
	}
	if r.RequiredAction != nil {
		for _, call := range r.RequiredAction.SubmitToolOutputs.ToolCalls {
			if call.Type != "function" {
				continue
			}
			run.ToolCalls = append(run.ToolCalls, profiler.ToolCall{
				ID:        call.ID,
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			})
		}
	}

	return run
}

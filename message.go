// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

import "github.com/enersight/profiler/internal/embedded"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type (
	// Message is a single entry in a Thread, attributed to a Role.
	// Messages returned by ListMessages are ordered newest first.
	Message struct {
		ID      string
		Role    Role
		Content []Content
	}

	// Content is one part of a message's content.
	Content interface {
		embedded.Content
	}

	// Text content that is part of a message.
	Text struct {
		embedded.Content

		Text string
	}

	// ImageFile is an image stored on the server, referenced by file ID.
	// Assistants emit ImageFile content for generated visualizations.
	ImageFile struct {
		embedded.Content

		FileID string
	}

	// Attachment adds a file to the message and makes it available to
	// the given built-in tools.
	Attachment struct {
		embedded.Content

		File File
		For  []BuiltInTool
	}
)

// TextMessage creates a user message with the given text content.
func TextMessage(text string) Message {
	return Message{Role: RoleUser, Content: []Content{Text{Text: text}}}
}

// FirstText returns the first text content of the message,
// or the empty string if the message has none.
func (m Message) FirstText() string {
	for _, content := range m.Content {
		if text, ok := content.(Text); ok {
			return text.Text
		}
	}

	return ""
}

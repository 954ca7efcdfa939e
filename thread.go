// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

// Thread is a conversation session between an Assistant and a user.
// Threads store Messages ordered by creation.
//
// If ID is empty, a new thread is created on the server on first use,
// seeded with any Messages already present. Otherwise, the thread with
// the given ID is reused and the other fields are ignored.
type Thread struct {
	ID       string
	Messages []Message
	Metadata map[string]any
}

// AppendText appends a user message with the given text content(s) to the thread.
func (t *Thread) AppendText(texts ...string) {
	message := Message{Role: RoleUser}
	for _, text := range texts {
		message.Content = append(message.Content, Text{Text: text})
	}
	t.Messages = append(t.Messages, message)
}

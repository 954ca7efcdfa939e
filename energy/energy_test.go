// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package energy_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enersight/profiler"
	"github.com/enersight/profiler/energy"
)

// scriptedExecutor fakes the remote service for one full analysis.
type scriptedExecutor struct {
	t *testing.T

	uploadedName    string
	uploadedContent []byte

	assistantsCreated int
	assistantPayloads []profiler.Assistant
	assistantsDeleted []string

	messages []profiler.Message

	runStatuses []profiler.RunStatus
	retrieves   int

	replies []profiler.Message
}

func (s *scriptedExecutor) UploadFile(_ context.Context, file *profiler.File) error {
	content, err := io.ReadAll(file.Reader)
	require.NoError(s.t, err)
	s.uploadedName = file.Name
	s.uploadedContent = content
	file.ID = "f1"

	return nil
}

func (s *scriptedExecutor) CreateAssistant(_ context.Context, assistant *profiler.Assistant) error {
	s.assistantsCreated++
	payload := *assistant
	s.assistantPayloads = append(s.assistantPayloads, payload)
	assistant.ID = "a1"

	return nil
}

func (s *scriptedExecutor) ShutdownAssistant(_ context.Context, assistant *profiler.Assistant) error {
	s.assistantsDeleted = append(s.assistantsDeleted, assistant.ID)
	assistant.ID = ""

	return nil
}

func (s *scriptedExecutor) CreateThread(_ context.Context, thread *profiler.Thread) error {
	thread.ID = "t1"

	return nil
}

func (s *scriptedExecutor) CreateMessage(_ context.Context, threadID string, message *profiler.Message) error {
	require.Equal(s.t, "t1", threadID)
	message.ID = "m1"
	s.messages = append(s.messages, *message)

	return nil
}

func (s *scriptedExecutor) CreateRun(_ context.Context, threadID, assistantID string) (profiler.Run, error) {
	require.Equal(s.t, "t1", threadID)
	require.Equal(s.t, "a1", assistantID)

	return profiler.Run{ID: "r1", ThreadID: threadID, AssistantID: assistantID, Status: s.runStatuses[0]}, nil
}

func (s *scriptedExecutor) RetrieveRun(_ context.Context, threadID, runID string) (profiler.Run, error) {
	s.retrieves++

	return profiler.Run{ID: runID, ThreadID: threadID, Status: s.runStatuses[min(s.retrieves, len(s.runStatuses)-1)]}, nil
}

func (s *scriptedExecutor) SubmitToolOutputs(
	_ context.Context, _, _ string, _ []profiler.ToolOutput,
) (profiler.Run, error) {
	s.t.Fatal("unexpected SubmitToolOutputs")

	return profiler.Run{}, nil
}

func (s *scriptedExecutor) ListMessages(_ context.Context, threadID string) ([]profiler.Message, error) {
	require.Equal(s.t, "t1", threadID)

	return s.replies, nil
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "energy_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestProfiler_Analyze(t *testing.T) {
	t.Parallel()

	executor := &scriptedExecutor{
		t:           t,
		runStatuses: []profiler.RunStatus{profiler.RunStatusQueued, profiler.RunStatusCompleted},
		replies: []profiler.Message{
			{ID: "m2", Role: profiler.RoleAssistant, Content: []profiler.Content{profiler.Text{Text: "summary"}}},
		},
	}

	dataset := writeDataset(t, "2022-01-01 00:00;0,52;4,2;-3,1\n")
	var statuses []profiler.RunStatus
	p := energy.New(executor,
		energy.WithPollInterval(time.Millisecond),
		energy.WithOnStatus(func(status profiler.RunStatus) {
			statuses = append(statuses, status)
		}),
	)

	analysis, err := p.Analyze(context.Background(), dataset)
	require.NoError(t, err)

	// The dataset is forwarded byte for byte, never parsed.
	assert.Equal(t, "energy_data.txt", executor.uploadedName)
	assert.Equal(t, "2022-01-01 00:00;0,52;4,2;-3,1\n", string(executor.uploadedContent))

	// The assistant is created with the fixed profile.
	require.Len(t, executor.assistantPayloads, 1)
	created := executor.assistantPayloads[0]
	assert.Equal(t, energy.AssistantName, created.Name)
	assert.Equal(t, energy.AssistantInstructions, created.Instructions)
	assert.Equal(t, energy.DefaultModel, created.Model)
	require.Len(t, created.Tools, 1)
	assert.IsType(t, profiler.CodeInterpreter{}, created.Tools[0])

	// The analysis request carries the fixed prompt verbatim and
	// attaches the uploaded file.
	require.Len(t, executor.messages, 1)
	request := executor.messages[0]
	assert.Equal(t, profiler.RoleUser, request.Role)
	assert.Equal(t, energy.AnalysisPrompt, request.FirstText())
	var attached []string
	for _, content := range request.Content {
		if attachment, ok := content.(profiler.Attachment); ok {
			attached = append(attached, attachment.File.ID)
		}
	}
	assert.Equal(t, []string{"f1"}, attached)

	// queued is observed at the first tick, completed after one retrieve.
	assert.Equal(t, []profiler.RunStatus{profiler.RunStatusQueued, profiler.RunStatusCompleted}, statuses)
	assert.Equal(t, 1, executor.retrieves)

	assert.Equal(t, profiler.RunStatusCompleted, analysis.Run.Status)
	assert.Equal(t, "summary", analysis.Result)
	require.Len(t, analysis.Messages, 1)

	// The created assistant is cleaned up by default.
	assert.Equal(t, []string{"a1"}, executor.assistantsDeleted)
}

func TestProfiler_AnalyzeTwiceCreatesTwoAssistants(t *testing.T) {
	t.Parallel()

	executor := &scriptedExecutor{
		t:           t,
		runStatuses: []profiler.RunStatus{profiler.RunStatusCompleted},
		replies:     []profiler.Message{{Role: profiler.RoleAssistant, Content: []profiler.Content{profiler.Text{Text: "ok"}}}},
	}
	dataset := writeDataset(t, "data\n")
	p := energy.New(executor, energy.WithPollInterval(time.Millisecond))

	_, err := p.Analyze(context.Background(), dataset)
	require.NoError(t, err)
	_, err = p.Analyze(context.Background(), dataset)
	require.NoError(t, err)

	// No dedup on identical configuration.
	assert.Equal(t, 2, executor.assistantsCreated)
	require.Len(t, executor.assistantPayloads, 2)
	assert.Equal(t, executor.assistantPayloads[0].Instructions, executor.assistantPayloads[1].Instructions)
}

func TestProfiler_AnalyzeKeepResources(t *testing.T) {
	t.Parallel()

	executor := &scriptedExecutor{
		t:           t,
		runStatuses: []profiler.RunStatus{profiler.RunStatusCompleted},
		replies:     []profiler.Message{{Role: profiler.RoleAssistant, Content: []profiler.Content{profiler.Text{Text: "ok"}}}},
	}
	dataset := writeDataset(t, "data\n")
	p := energy.New(executor, energy.WithPollInterval(time.Millisecond), energy.WithKeepResources())

	_, err := p.Analyze(context.Background(), dataset)
	require.NoError(t, err)
	assert.Empty(t, executor.assistantsDeleted)
}

func TestProfiler_AnalyzeReusesAssistant(t *testing.T) {
	t.Parallel()

	executor := &scriptedExecutor{
		t:           t,
		runStatuses: []profiler.RunStatus{profiler.RunStatusCompleted},
		replies:     []profiler.Message{{Role: profiler.RoleAssistant, Content: []profiler.Content{profiler.Text{Text: "ok"}}}},
	}
	dataset := writeDataset(t, "data\n")
	p := energy.New(executor, energy.WithPollInterval(time.Millisecond), energy.WithAssistantID("a1"))

	_, err := p.Analyze(context.Background(), dataset)
	require.NoError(t, err)

	// Reused assistants are neither created nor deleted.
	assert.Zero(t, executor.assistantsCreated)
	assert.Empty(t, executor.assistantsDeleted)
}

func TestProfiler_AnalyzeFailedRun(t *testing.T) {
	t.Parallel()

	executor := &scriptedExecutor{
		t:           t,
		runStatuses: []profiler.RunStatus{profiler.RunStatusQueued, profiler.RunStatusFailed},
	}
	dataset := writeDataset(t, "data\n")
	p := energy.New(executor, energy.WithPollInterval(time.Millisecond))

	_, err := p.Analyze(context.Background(), dataset)
	var runErr *profiler.RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, profiler.RunStatusFailed, runErr.Run.Status)
	// The failed analysis still cleans up the assistant it created.
	assert.Equal(t, []string{"a1"}, executor.assistantsDeleted)
}

func TestProfiler_AnalyzeMissingDataset(t *testing.T) {
	t.Parallel()

	p := energy.New(&scriptedExecutor{t: t})
	_, err := p.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorContains(t, err, "open dataset")
}

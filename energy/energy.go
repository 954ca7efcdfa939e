// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package energy profiles household energy consumption by delegating the
// analysis of an uploaded dataset to a code-interpreter-enabled assistant.
package energy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/enersight/profiler"
)

const (
	// AssistantName and AssistantInstructions configure the remote assistant.
	// They are fixed: every analysis runs against the same profile.
	AssistantName         = "Household Energy Profiler"
	AssistantInstructions = "You are an experienced Household energy profiler. Your job is to " +
		"analyse, summarise, and provide insights from data and create a consumer profile"

	// DefaultModel is the model the assistant is created with
	// unless overridden by configuration.
	DefaultModel = "gpt-4"

	// DefaultDatasetPath is where the energy dataset is expected
	// relative to the working directory.
	DefaultDatasetPath = "data/energy_data.txt"

	defaultPollInterval = 10 * time.Second
)

// AnalysisPrompt is the instruction posted to the thread alongside the
// dataset. It describes the dataset schema and the requested visualizations
// and is not parameterized.
const AnalysisPrompt = "Create an infographic or a series of visualizations that illustrate an AI-driven " +
	"analysis of household energy consumption. The data, compiled in the 'energy_data.csv' file, " +
	"includes electricity consumption (kWh/h), stock exchange electricity prices (c/kWh), and outdoor " +
	"temperature data (°C) from January 2022 to September 2023. The analysis should focus on a " +
	"fictional customer with an electric-heated detached house under a stock exchange electricity " +
	"contract, utilizing cheaper night-time electricity rates. The visualizations should highlight " +
	"patterns and insights into the customer's electricity usage, such as periods of high consumption, " +
	"efficiency in using night-time rates, and potential areas for energy savings. Additionally, include " +
	"AI-recommended strategies for better utilizing favorable electricity contract terms and adapting to " +
	"demand response. Ensure the visualizations are clear, informative, and effectively convey the intricate " +
	"relationships between consumption, pricing, and external factors like temperature. Note that the data " +
	"is separated with ';' and decimal point can be presented by ','"

// Profiler sequences the remote calls of one analysis:
// upload dataset, create assistant, create thread, post the analysis
// request, run to completion, and collect the resulting messages.
type Profiler struct {
	executor profiler.Executor
	logger   zerolog.Logger

	model         string
	pollInterval  time.Duration
	assistantID   string
	threadID      string
	keepResources bool
	onStatus      func(profiler.RunStatus)
}

// New creates a Profiler using the given executor for all remote calls.
func New(executor profiler.Executor, opts ...Option) *Profiler {
	p := &Profiler{
		executor:     executor,
		logger:       zerolog.Nop(),
		model:        DefaultModel,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Analysis is the final state of one profiling run.
type Analysis struct {
	Run      profiler.Run
	Messages []profiler.Message
	// Result is the text of the newest message in the thread,
	// normally the assistant's summary.
	Result string
}

// Analyze uploads the dataset at the given path and runs the assistant
// over it, blocking until the run reaches a terminal status or ctx is done.
//
// Unless configured otherwise, the assistant created for the analysis is
// deleted before returning; the uploaded file stays on the server since the
// resulting messages may reference it.
func (p *Profiler) Analyze(ctx context.Context, datasetPath string) (*Analysis, error) {
	requestID := uuid.NewString()
	logger := p.logger.With().Str("request_id", requestID).Logger()

	file, err := p.uploadDataset(ctx, datasetPath)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file_id", file.ID).Str("path", datasetPath).Msg("dataset uploaded")

	assistant := &profiler.Assistant{
		ID:           p.assistantID,
		Name:         AssistantName,
		Model:        p.model,
		Instructions: AssistantInstructions,
		Tools:        []profiler.Tool{profiler.CodeInterpreter{}},
		Metadata:     map[string]any{"request_id": requestID},
		Executor:     p.executor,
	}
	if assistant.ID == "" {
		if err := p.executor.CreateAssistant(ctx, assistant); err != nil {
			return nil, fmt.Errorf("create assistant: %w", err)
		}
		logger.Info().Str("assistant_id", assistant.ID).Msg("assistant created")
		if !p.keepResources {
			defer func() {
				if err := p.executor.ShutdownAssistant(context.WithoutCancel(ctx), assistant); err != nil {
					logger.Warn().Err(err).Msg("failed to delete assistant")
				}
			}()
		}
	}

	thread := &profiler.Thread{
		ID:       p.threadID,
		Metadata: map[string]any{"request_id": requestID},
	}
	if thread.ID == "" {
		if err := p.executor.CreateThread(ctx, thread); err != nil {
			return nil, fmt.Errorf("create thread: %w", err)
		}
		logger.Info().Str("thread_id", thread.ID).Msg("thread created")
	}

	request := profiler.Message{
		Role: profiler.RoleUser,
		Content: []profiler.Content{
			profiler.Text{Text: AnalysisPrompt},
			profiler.Attachment{File: file, For: []profiler.BuiltInTool{profiler.CodeInterpreter{}}},
		},
	}
	if err := p.executor.CreateMessage(ctx, thread.ID, &request); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	run, err := p.executor.CreateRun(ctx, thread.ID, assistant.ID)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	logger.Info().Str("run_id", run.ID).Msg("run started")

	run, err = profiler.AwaitRun(ctx, p.executor, run,
		profiler.WithPollInterval(p.pollInterval),
		profiler.WithOnPoll(func(r profiler.Run) {
			logger.Debug().Str("run_id", r.ID).Str("status", string(r.Status)).Msg("run status")
			if p.onStatus != nil {
				p.onStatus(r.Status)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	messages, err := p.executor.ListMessages(ctx, thread.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	analysis := &Analysis{Run: run, Messages: messages}
	if len(messages) > 0 {
		analysis.Result = messages[0].FirstText()
	}
	logger.Info().Int("messages", len(messages)).Msg("analysis completed")

	return analysis, nil
}

func (p *Profiler) uploadDataset(ctx context.Context, path string) (profiler.File, error) {
	dataset, err := os.Open(path)
	if err != nil {
		return profiler.File{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		_ = dataset.Close()
	}()

	file := profiler.File{Name: filepath.Base(path), Reader: dataset}
	if err := p.executor.UploadFile(ctx, &file); err != nil {
		return profiler.File{}, fmt.Errorf("upload dataset: %w", err)
	}

	return file, nil
}

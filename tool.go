// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/enersight/profiler/internal/embedded"
)

type (
	// Tool is a capability the assistant may use during a run.
	Tool interface {
		embedded.Tool
	}

	// BuiltInTool is a tool hosted by the server, such as CodeInterpreter.
	BuiltInTool interface {
		embedded.BuiltInTool
	}
)

// CodeInterpreter lets the assistant write and run code in a sandbox.
// It can process files with diverse data and formatting,
// and generate files such as graphs.
type CodeInterpreter struct {
	embedded.BuiltInTool

	Files []File
}

// FileSearch augments the assistant with knowledge from uploaded files.
type FileSearch struct {
	embedded.BuiltInTool

	Files []File
}

// Function describes a function to the assistant so that it can
// intelligently return the calls that need to be made along with
// their arguments.
type Function[A, R any] struct {
	embedded.Tool

	// The name of the function to be called.
	// Must be a-z, A-Z, 0-9, or contain underscores and dashes, with a maximum length of 64.
	Name string
	// A description of what the function does, used by the model to choose when and how to call the function.
	Description string
	// The real function attached to the tool.
	Function func(ctx context.Context, argument A) (R, error)
}

// FunctionSchema is the wire description of a function tool.
type FunctionSchema struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
}

func (f Function[A, R]) Schema() FunctionSchema {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}

	return FunctionSchema{
		Name:        f.Name,
		Description: f.Description,
		Parameters:  reflector.Reflect(new(A)),
	}
}

func (f Function[A, R]) ID() string {
	return f.Name
}

// Call unmarshals the argument provided by the assistant, calls the
// attached function, and marshals its result for submission.
func (f Function[A, R]) Call(ctx context.Context, argument string) (string, error) {
	var a A
	if err := json.Unmarshal([]byte(argument), &a); err != nil {
		return "", fmt.Errorf("unmarshal function call argument: %w", err)
	}

	r, err := f.Function(ctx, a)
	if err != nil {
		return "", fmt.Errorf("call function: %w", err)
	}

	result, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal function call result: %w", err)
	}

	return string(result), nil
}

// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package embedded provides marker interfaces embedded by the exported
// profiler types so that the sets of Content and Tool implementations
// stay closed.
package embedded

type Content interface {
	content()
}

type Tool interface {
	tool()
}

type BuiltInTool interface {
	Tool

	builtInTool()
}

// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package profiler

import "io"

// File is a server-managed copy of a local file.
//
// If ID is empty, the file has not been uploaded yet and Reader provides
// its content. After a successful upload the executor sets ID and the file
// can be referenced in messages and tools.
type File struct {
	ID     string
	Name   string
	Reader io.Reader
}

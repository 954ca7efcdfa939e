// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"github.com/enersight/profiler/openai/httpclient"
)

type Option = httpclient.Option

//nolint:gochecknoglobals
var (
	WithHTTPClient = httpclient.WithHTTPClient
	WithBaseURL    = httpclient.WithBaseURL
	WithHeader     = httpclient.WithHeader
)

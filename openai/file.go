// Copyright (c) 2024 the authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/enersight/profiler"
	"github.com/enersight/profiler/openai/httpclient"
)

// UploadFile uploads the file content with purpose "assistants"
// and sets file.ID from the server response.
func (e Executor) UploadFile(ctx context.Context, file *profiler.File) error {
	buf, contentType, err := createMultiPartForm(file)
	if err != nil {
		return fmt.Errorf("create multipart form: %w", err)
	}

	type id struct {
		ID string `json:"id"`
	}
	resp, err := httpclient.Post[id](ctx, "/files", buf,
		append(e.clientOptions, httpclient.WithHeader("Content-Type", contentType))...,
	)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	file.ID = resp.ID

	return nil
}

func createMultiPartForm(file *profiler.File) (*bytes.Buffer, string, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	defer func() {
		_ = writer.Close()
	}()

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, "", fmt.Errorf("copy content to form file: %w", err)
	}
	if err := writer.WriteField("purpose", "assistants"); err != nil {
		return nil, "", fmt.Errorf("write purpose field: %w", err)
	}

	return buf, writer.FormDataContentType(), nil
}

// DownloadFile fetches the content of a server-stored file, such as a
// visualization generated by the code interpreter, into file.Reader.
func (e Executor) DownloadFile(ctx context.Context, file *profiler.File) error {
	content, err := httpclient.Get[[]byte](ctx, "/files/"+file.ID+"/content", e.clientOptions...)
	if err != nil {
		return fmt.Errorf("download file: %w", err)
	}
	file.Reader = bytes.NewReader(content)

	return nil
}

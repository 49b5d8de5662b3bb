// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Blob is a stored file opened for reading. The caller must close Content.
type Blob struct {
	Content     io.ReadCloser
	ContentType string
	Size        int64
}

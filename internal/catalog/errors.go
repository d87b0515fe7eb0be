// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the catalog file is missing or unreadable at
// query time. The API layer maps it to a 503 with a retryable error code,
// since the file may reappear (replaced dump, remount) without a restart.
var ErrFileNotFound = errors.New("catalog file not found")

// StreamReadError wraps an I/O failure that occurred mid-scan. Offset is the
// count of bytes successfully consumed before the failure, which localizes
// corruption in multi-gigabyte dumps.
type StreamReadError struct {
	Offset int64
	Err    error
}

// Error implements the error interface.
func (e *StreamReadError) Error() string {
	return fmt.Sprintf("catalog read failed at byte offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying I/O error to errors.Is/As.
func (e *StreamReadError) Unwrap() error {
	return e.Err
}

// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
)

const (
	// DefaultChunkSize is the read size when none is configured. 64 KiB
	// keeps syscall count low without holding large buffers per query.
	DefaultChunkSize = 64 * 1024

	// DefaultBatchSize is the number of complete lines yielded per Next
	// call when none is configured.
	DefaultBatchSize = 10000

	// DefaultMaxLineBytes caps a single line. No legitimate catalog record
	// approaches 1 MiB; anything longer is corrupt input (or a file with
	// the wrong separator) and is discarded rather than buffered.
	DefaultMaxLineBytes = 1 << 20
)

// LineBatcher turns a byte stream into batches of complete lines without
// ever holding more than one chunk plus one bounded partial line in memory.
//
// It reads fixed-size chunks from the underlying reader, splits on '\n'
// (tolerating '\r\n'), and carries the trailing partial line across chunk
// boundaries, so line content is invariant to the chunk size. A final line
// without a trailing separator is flushed as the tail of the last batch.
// Lines longer than the configured maximum are discarded, not delivered:
// the carry buffer never grows past that maximum, so a newline-free input
// cannot buffer the whole file. LinesDiscarded reports how many lines the
// cap dropped.
//
// The batcher is lazy and forward-only: nothing is read until Next is
// called, and a caller that stops calling Next stops all I/O. It is not
// safe for concurrent use; each query owns its own batcher.
type LineBatcher struct {
	r          io.Reader
	chunk      []byte
	carry      []byte
	pending    []string
	batchSize  int
	maxLine    int
	offset     int64
	discarded  int64
	discarding bool
	eof        bool
	done       bool
	readErr    error
}

// NewLineBatcher wraps r with chunked line batching and the default line
// cap. Non-positive sizes fall back to DefaultChunkSize and
// DefaultBatchSize.
func NewLineBatcher(r io.Reader, chunkSize, batchSize int) *LineBatcher {
	return NewLineBatcherWithMaxLine(r, chunkSize, batchSize, DefaultMaxLineBytes)
}

// NewLineBatcherWithMaxLine wraps r with an explicit per-line byte cap.
// A non-positive cap falls back to DefaultMaxLineBytes.
func NewLineBatcherWithMaxLine(r io.Reader, chunkSize, batchSize, maxLine int) *LineBatcher {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	return &LineBatcher{
		r:         r,
		chunk:     make([]byte, chunkSize),
		batchSize: batchSize,
		maxLine:   maxLine,
	}
}

// Next returns the next batch of up to batchSize complete lines.
//
// It checks ctx at entry, so cancellation and deadlines land at batch
// boundaries rather than mid-decode. io.EOF signals clean exhaustion. A
// mid-read I/O failure surfaces as *StreamReadError carrying the byte
// offset successfully consumed before the failure; lines already read are
// delivered first, the error follows on a subsequent call.
func (b *LineBatcher) Next(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.done {
		return nil, io.EOF
	}

	batch := make([]string, 0, b.batchSize)

	for len(batch) < b.batchSize {
		for len(b.pending) > 0 && len(batch) < b.batchSize {
			batch = append(batch, b.pending[0])
			b.pending = b.pending[1:]
		}
		if len(batch) == b.batchSize || b.eof || b.readErr != nil {
			break
		}
		b.fill()
	}

	if len(batch) > 0 {
		return batch, nil
	}
	if b.readErr != nil {
		return nil, b.readErr
	}
	b.done = true
	return nil, io.EOF
}

// Offset returns the count of bytes successfully consumed so far.
func (b *LineBatcher) Offset() int64 {
	return b.offset
}

// LinesDiscarded returns the number of lines dropped for exceeding the
// per-line byte cap.
func (b *LineBatcher) LinesDiscarded() int64 {
	return b.discarded
}

// fill reads one chunk and routes it into pending lines. Sets eof on clean
// exhaustion and readErr on I/O failure; bytes returned alongside an error
// are still consumed per the io.Reader contract.
func (b *LineBatcher) fill() {
	n, err := b.r.Read(b.chunk)
	if n > 0 {
		b.offset += int64(n)
		b.consume(b.chunk[:n])
	}
	if err == nil {
		return
	}
	if errors.Is(err, io.EOF) {
		b.eof = true
		b.discarding = false
		if len(b.carry) > 0 {
			// Final line without trailing separator
			b.pending = append(b.pending, trimCR(string(b.carry)))
			b.carry = b.carry[:0]
		}
		return
	}
	b.readErr = &StreamReadError{Offset: b.offset, Err: err}
}

// consume appends new bytes to the carry buffer and enforces the line cap.
// While discarding an oversized line, bytes are dropped up to and including
// the next separator; the line was already counted when the cap tripped.
func (b *LineBatcher) consume(p []byte) {
	if b.discarding {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			return
		}
		b.discarding = false
		p = p[i+1:]
	}

	b.carry = append(b.carry, p...)
	b.splitCarry()

	if len(b.carry) > b.maxLine {
		b.carry = b.carry[:0]
		b.discarded++
		b.discarding = true
	}
}

// splitCarry moves complete lines from the carry buffer into pending,
// leaving the trailing partial line in place. Complete lines over the cap
// are dropped here too, so the cap holds regardless of chunk size.
func (b *LineBatcher) splitCarry() {
	start := 0
	for {
		i := bytes.IndexByte(b.carry[start:], '\n')
		if i < 0 {
			break
		}
		if i > b.maxLine {
			b.discarded++
		} else {
			b.pending = append(b.pending, trimCR(string(b.carry[start:start+i])))
		}
		start += i + 1
	}
	if start > 0 {
		b.carry = append(b.carry[:0], b.carry[start:]...)
	}
}

// trimCR drops a trailing carriage return so CRLF input decodes like LF.
func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

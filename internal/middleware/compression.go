// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzPool recycles gzip writers across requests; a fresh writer per
// request is the dominant allocation cost of this middleware.
var gzPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipWriter routes the response body through a gzip stream while
// leaving headers and status on the underlying ResponseWriter.
type gzipWriter struct {
	http.ResponseWriter
	zw         *gzip.Writer
	statusSent bool
}

func (w *gzipWriter) WriteHeader(code int) {
	w.statusSent = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipWriter) Write(p []byte) (int, error) {
	if !w.statusSent {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(p)
}

// Compression gzips responses for clients that advertise support.
// Video list payloads are highly repetitive JSON and typically shrink
// by 80-90%.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}

		zw := gzPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			_ = zw.Close() // response already sent; nothing to do with a close error
			gzPool.Put(zw)
		}()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length") // stale once the body is compressed

		next(&gzipWriter{ResponseWriter: w, zw: zw}, r)
	}
}

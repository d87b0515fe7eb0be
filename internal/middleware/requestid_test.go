// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

// tagAndCapture runs a request through the RequestID middleware and
// returns the ID seen by the inner handler plus the response header.
func tagAndCapture(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	h := RequestID(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	if incoming != "" {
		req.Header.Set("X-Request-ID", incoming)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return ctxID, rec.Header().Get("X-Request-ID")
}

func TestRequestIDMintsUUID(t *testing.T) {
	ctxID, headerID := tagAndCapture(t, "")
	if headerID == "" {
		t.Fatal("response missing X-Request-ID header")
	}
	if _, err := uuid.Parse(headerID); err != nil {
		t.Fatalf("minted ID %q is not a UUID: %v", headerID, err)
	}
	if ctxID != headerID {
		t.Fatalf("context ID %q != header ID %q", ctxID, headerID)
	}
}

func TestRequestIDHonorsUpstreamID(t *testing.T) {
	const upstream = "proxy-assigned-7f3a"
	ctxID, headerID := tagAndCapture(t, upstream)
	if headerID != upstream {
		t.Fatalf("header ID = %q, want upstream %q", headerID, upstream)
	}
	if ctxID != upstream {
		t.Fatalf("context ID = %q, want upstream %q", ctxID, upstream)
	}
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		_, id := tagAndCapture(t, "")
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}

func TestRequestIDIsolatedBetweenRequests(t *testing.T) {
	_, first := tagAndCapture(t, "alpha")
	_, second := tagAndCapture(t, "beta")
	if first != "alpha" || second != "beta" {
		t.Fatalf("IDs leaked between requests: %q, %q", first, second)
	}
}

func TestGetRequestIDUntaggedContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Fatalf("expected empty ID for untagged context, got %q", id)
	}
}

func BenchmarkRequestID(b *testing.B) {
	h := RequestID(func(w http.ResponseWriter, r *http.Request) {
		_ = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h(httptest.NewRecorder(), req)
	}
}

package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing content type")
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "hooks", nil, map[string]string{"msg": "hi"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out["echo"] != "hi" {
		t.Fatalf("unexpected response %#v", out)
	}
}

func TestDoJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(time.Second)
	c.Retries = 2
	c.Backoff = time.Millisecond

	if err := c.DoJSON(context.Background(), http.MethodPost, srv.URL, nil, map[string]int{"a": 1}, nil); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoJSON_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(time.Second)
	c.Retries = 3
	c.Backoff = time.Millisecond

	err := c.DoJSON(context.Background(), http.MethodPost, srv.URL, nil, nil, nil)
	var herr *HTTPError
	if !errors.As(err, &herr) || herr.StatusCode != http.StatusBadRequest || herr.Body != "bad" {
		t.Fatalf("expected HTTPError 400, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	if err := New(0).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil); err == nil {
		t.Fatalf("expected error without BaseURL")
	}
}

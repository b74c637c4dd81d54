package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("warn missing: %q", out)
	}
}

func TestLogger_JSON_MergesWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "dogwalking", Output: &buf}).
		With(map[string]any{"module": "bookings"})

	sl := l.(*StdLogger)
	sl.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	sl.Info("booking created", map[string]any{"booking_id": 1, "": "ignored"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["app"] != "dogwalking" || entry["module"] != "bookings" {
		t.Fatalf("base fields missing: %#v", entry)
	}
	if entry["booking_id"] != float64(1) {
		t.Fatalf("field missing: %#v", entry)
	}
	if entry["ts"] != "2024-05-01T09:00:00Z" {
		t.Fatalf("unexpected ts %v", entry["ts"])
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key should be dropped")
	}
}

func TestLogger_TextQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Level: Info, Output: &buf}).Error("boom", map[string]any{"error": "no such host"})

	if !strings.Contains(buf.String(), `error="no such host"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel(" WARNING ") != Warn {
		t.Fatalf("warning should map to Warn")
	}
	if ParseLevel("bogus") != Info {
		t.Fatalf("unknown level should default to Info")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"

	"github.com/segmentio/kafka-go"
)

type recordingSink struct {
	got    []Message
	err    error
	closed bool
}

func (s *recordingSink) Publish(_ context.Context, m Message) error {
	s.got = append(s.got, m)
	return s.err
}

func (s *recordingSink) Close() error {
	s.closed = true
	return nil
}

var created = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func rex() bookings.Booking {
	return bookings.Booking{
		ID: 7, OwnerName: "Jane", Phone: "555", Email: "j@x.com", DogName: "Rex",
		ServiceType: bookings.Service1HourMonthly, PreferredDate: "2024-05-01", CreatedAt: created,
	}
}

func TestNotifier_BookingMessage(t *testing.T) {
	sink := &recordingSink{}
	n := New(sink)
	n.newID = func() string { return "msg-1" }

	if err := n.BookingCreated(context.Background(), rex()); err != nil {
		t.Fatalf("BookingCreated: %v", err)
	}
	if len(sink.got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sink.got))
	}

	m := sink.got[0]
	if m.ID != "msg-1" || m.Kind != KindBooking || m.RecordID != 7 || m.Key() != "booking-7" {
		t.Fatalf("unexpected envelope %#v", m)
	}
	if m.Subject != "Dog Walking Booking Request - Rex" {
		t.Fatalf("unexpected subject %q", m.Subject)
	}
	for _, want := range []string{"Owner Name: Jane", "Service Type: Monthly 1 Hour (R1800)", "Dog Breed: -"} {
		if !strings.Contains(m.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, m.Body)
		}
	}
}

func TestNotifier_ContactFanOutJoinsErrors(t *testing.T) {
	ok := &recordingSink{}
	bad := &recordingSink{err: errors.New("boom")}
	n := New(ok, nil, bad)

	err := n.ContactCreated(context.Background(), contacts.Contact{ID: 3, Name: "Lee", Message: "Hi", CreatedAt: created})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if len(ok.got) != 1 || ok.got[0].Subject != "Contact Message from Lee" {
		t.Fatalf("healthy sink should still receive the message: %#v", ok.got)
	}

	_ = n.Close()
	if !ok.closed || !bad.closed {
		t.Fatalf("expected all sinks closed")
	}
}

func TestNotifier_NoSinksIsNoop(t *testing.T) {
	var n *Notifier
	if err := n.BookingCreated(context.Background(), rex()); err != nil {
		t.Fatalf("nil notifier should be a no-op, got %v", err)
	}
	if New().Enabled() {
		t.Fatalf("notifier without sinks should be disabled")
	}
}

func TestWebhookSink_PostsJSON(t *testing.T) {
	var got Message
	var kind, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind = r.Header.Get("X-Notification-Kind")
		path = r.URL.RequestURI()
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink, err := NewWebhookSink(srv.URL+"/hooks/walks?token=abc", time.Second)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if err := sink.Publish(context.Background(), bookingMessage("id-1", rex())); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if path != "/hooks/walks?token=abc" {
		t.Fatalf("unexpected webhook path %q", path)
	}
	if kind != "booking" || got.RecordID != 7 || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected webhook payload kind=%q msg=%#v", kind, got)
	}
}

type fakeWriter struct {
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaSink_KeyAndHeaders(t *testing.T) {
	w := &fakeWriter{}
	sink := &KafkaSink{w: w, topic: "t"}

	if err := sink.Publish(context.Background(), bookingMessage("id-9", rex())); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 kafka message, got %d", len(w.msgs))
	}
	km := w.msgs[0]
	if string(km.Key) != "booking-7" {
		t.Fatalf("unexpected key %q", km.Key)
	}
	if len(km.Headers) != 2 || string(km.Headers[1].Value) != "id-9" {
		t.Fatalf("unexpected headers %#v", km.Headers)
	}

	var decoded Message
	if err := json.Unmarshal(km.Value, &decoded); err != nil || decoded.Subject != "Dog Walking Booking Request - Rex" {
		t.Fatalf("unexpected value %s (%v)", km.Value, err)
	}
}

func TestNewKafkaSink_RequiresBrokersAndTopic(t *testing.T) {
	if _, err := NewKafkaSink(nil, "t"); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewKafkaSink([]string{"localhost:9092"}, ""); err == nil {
		t.Fatalf("expected error without topic")
	}
}

func TestNewWebhookSink_RejectsRelativeURL(t *testing.T) {
	for _, raw := range []string{"hooks/walks", "/hooks", "ftp://x.com/h", "http://"} {
		if _, err := NewWebhookSink(raw, time.Second); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

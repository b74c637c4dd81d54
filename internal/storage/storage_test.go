package storage

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"dogwalking/internal/domain/contacts"
	"dogwalking/internal/platform/config"
	"dogwalking/internal/platform/logger"
)

func TestOpen_DefaultsToMemory(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Output: &buf})

	s, err := Open(context.Background(), config.Config{}, log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(context.Background())

	if s.Backend != BackendMemory {
		t.Fatalf("expected memory backend, got %s", s.Backend)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(buf.String(), "backend=memory") {
		t.Fatalf("expected backend logged, got %s", buf.String())
	}

	c, err := s.Contacts.Create(context.Background(), contacts.NewContact{Name: "Lee"})
	if err != nil || c.ID != 1 {
		t.Fatalf("unexpected create result %#v %v", c, err)
	}
}

func TestValidate_RejectsPartialStorage(t *testing.T) {
	s := Memory()
	s.Reviews = nil
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for missing repository")
	}
}

package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Plan   string `json:"plan" validate:"plan"`
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v := New()
	if err := v.RegisterString("plan", func(s string) bool { return s == "basic" }); err != nil {
		t.Fatalf("register: %v", err)
	}
	return v
}

func TestStruct_OK(t *testing.T) {
	v := newTestValidator(t)
	err := v.Struct(sample{Name: "Jane", Email: "j@x.com", Rating: 5, Plan: "basic"})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	v := newTestValidator(t)
	err := v.Struct(sample{Email: "nope", Rating: 9, Plan: "gold"})

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T %v", err, err)
	}

	got := map[string]string{}
	for _, fe := range verrs {
		got[fe.Field] = fe.Message
	}
	for _, f := range []string{"name", "email", "rating", "plan"} {
		if _, ok := got[f]; !ok {
			t.Fatalf("expected error for %q, got %#v", f, got)
		}
	}
	if got["rating"] != "must be at most 5" {
		t.Fatalf("unexpected rating message %q", got["rating"])
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, Errors{{Field: "name", Message: "is required"}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"name"`) {
		t.Fatalf("missing field detail: %s", rec.Body.String())
	}
}

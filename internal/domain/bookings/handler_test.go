package bookings

import (
	"errors"
	"testing"

	"dogwalking/internal/platform/validation"
)

func TestNewValidator_PlanRule(t *testing.T) {
	v := newValidator()

	req := createBookingRequest{
		OwnerName:     "Jane",
		Phone:         "555",
		Email:         "j@x.com",
		DogName:       "Rex",
		ServiceType:   string(Service1HourMonthly),
		PreferredDate: "2024-05-01",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	req.ServiceType = "2hour-daily"
	err := v.Struct(req)
	var verrs validation.Errors
	if !errors.As(err, &verrs) || len(verrs) != 1 || verrs[0].Field != "serviceType" {
		t.Fatalf("expected a single serviceType error, got %v", err)
	}
}

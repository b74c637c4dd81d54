package mongodb

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"

	"go.mongodb.org/mongo-driver/mongo"
)

// testDB usa TEST_MONGO_URI; sin esa variable los tests se saltean.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, uri, 5*time.Second)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	db := client.Database(testDBName(time.Now()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

// testDBName arma un nombre único. Mongo no acepta '.' en nombres de base.
func testDBName(now time.Time) string {
	return "dogwalking_test_" + now.UTC().Format("20060102150405000000")
}

func TestTestDBName_IsValidDatabaseName(t *testing.T) {
	name := testDBName(time.Date(2024, 5, 1, 8, 0, 0, 123456000, time.UTC))
	if name != "dogwalking_test_20240501080000123456" {
		t.Fatalf("unexpected name %q", name)
	}
	if strings.ContainsAny(name, `./\ "$`) {
		t.Fatalf("name %q has characters mongo rejects", name)
	}
}

func TestBookingsRepo_IDsAndOrder(t *testing.T) {
	db := testDB(t)
	repo := NewBookingsRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	calls := 0
	repo.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}

	in := bookings.NewBooking{OwnerName: "Jane", Phone: "555", Email: "j@x.com", DogName: "Rex",
		ServiceType: bookings.Service30MinSingle, PreferredDate: "2024-05-01"}

	for want := int64(1); want <= 2; want++ {
		b, err := repo.Create(ctx, in)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if b.ID != want {
			t.Fatalf("expected id %d, got %d", want, b.ID)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != 2 || list[1].ID != 1 {
		t.Fatalf("expected [2 1], got %+v", list)
	}

	if _, err := repo.GetByID(ctx, 3); !errors.Is(err, bookings.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContactsRepo_CounterIndependentFromBookings(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, _ = NewBookingsRepo(db).Create(ctx, bookings.NewBooking{OwnerName: "x"})
	c, err := NewContactsRepo(db).Create(ctx, contacts.NewContact{Name: "Lee", Message: "Hi"})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected contact id 1, got %d", c.ID)
	}
}

package memory

import (
	"context"
	"testing"
	"time"

	"pgregory.net/rapid"

	"dogwalking/internal/domain/contacts"
	"dogwalking/internal/domain/reviews"
)

// TestStore_IDsAreOneToN_Property: N altas dan ids 1..N en orden de llamada.
func TestStore_IDsAreOneToN_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 60).Draw(rt, "n")
		repo := NewStore().Reviews()

		for i := 1; i <= n; i++ {
			rv, err := repo.Create(context.Background(), reviews.NewReview{
				CustomerName: rapid.String().Draw(rt, "customer"),
				Rating:       rapid.IntRange(1, 5).Draw(rt, "rating"),
			})
			if err != nil {
				rt.Fatalf("create: %v", err)
			}
			if rv.ID != int64(i) {
				rt.Fatalf("call %d got id %d", i, rv.ID)
			}
		}
	})
}

// TestStore_ListIsMostRecentFirst_Property: con timestamps arbitrarios (incluso repetidos),
// la lista queda en created_at desc y, a igual timestamp, id desc.
func TestStore_ListIsMostRecentFirst_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		offsets := rapid.SliceOfN(rapid.IntRange(0, 5), 0, 40).Draw(rt, "offsets")
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		i := 0
		clock := func() time.Time {
			ts := base.Add(time.Duration(offsets[i]) * time.Minute)
			i++
			return ts
		}
		repo := NewStore(WithClock(clock)).Contacts()

		for range offsets {
			_, _ = repo.Create(context.Background(), contacts.NewContact{Name: "x"})
		}

		list, _ := repo.List(context.Background())
		if len(list) != len(offsets) {
			rt.Fatalf("expected %d records, got %d", len(offsets), len(list))
		}
		for k := 1; k < len(list); k++ {
			prev, cur := list[k-1], list[k]
			if cur.CreatedAt.After(prev.CreatedAt) {
				rt.Fatalf("not desc at %d: %v after %v", k, cur.CreatedAt, prev.CreatedAt)
			}
			if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID > prev.ID {
				rt.Fatalf("tie not broken by id desc at %d", k)
			}
		}
	})
}

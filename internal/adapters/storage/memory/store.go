package memory

import (
	"sort"
	"sync"
	"time"

	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"
	"dogwalking/internal/domain/reviews"
)

// Store es el RecordStore en memoria: tres colecciones independientes, cada una con
// su propio contador de ids. Los datos viven lo que vive el proceso.
type Store struct {
	bookings *bookingRepo
	reviews  *reviewRepo
	contacts *contactRepo
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock reemplaza time.Now para el sellado de created_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func NewStore(opts ...Option) *Store {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		bookings: &bookingRepo{c: newCollection[bookings.Booking](o.now)},
		reviews:  &reviewRepo{c: newCollection[reviews.Review](o.now)},
		contacts: &contactRepo{c: newCollection[contacts.Contact](o.now)},
	}
}

func (s *Store) Bookings() bookings.Repository { return s.bookings }
func (s *Store) Reviews() reviews.Repository   { return s.reviews }
func (s *Store) Contacts() contacts.Repository { return s.contacts }

type entry[T any] struct {
	id        int64
	createdAt time.Time
	rec       T
}

// collection guarda registros por id. El incremento del contador y el alta
// ocurren bajo el mismo lock, así los ids nunca se repiten ni se saltean.
type collection[T any] struct {
	mu     sync.RWMutex
	lastID int64
	byID   map[int64]entry[T]
	now    func() time.Time
}

func newCollection[T any](now func() time.Time) *collection[T] {
	return &collection[T]{
		byID: make(map[int64]entry[T]),
		now:  now,
	}
}

func (c *collection[T]) insert(build func(id int64, createdAt time.Time) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	e := entry[T]{id: c.lastID, createdAt: c.now()}
	e.rec = build(e.id, e.createdAt)
	c.byID[e.id] = e
	return e.rec
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byID[id]
	return e.rec, ok
}

// list devuelve created_at desc; a igual timestamp gana el id más alto (alta más reciente).
func (c *collection[T]) list() []T {
	c.mu.RLock()
	entries := make([]entry[T], 0, len(c.byID))
	for _, e := range c.byID {
		entries = append(entries, e)
	}
	c.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].createdAt.Equal(entries[j].createdAt) {
			return entries[i].createdAt.After(entries[j].createdAt)
		}
		return entries[i].id > entries[j].id
	})

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.rec)
	}
	return out
}

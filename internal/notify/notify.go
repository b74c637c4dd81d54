package notify

import (
	"context"
	"errors"

	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"

	"github.com/google/uuid"
)

// Sink entrega un Message a un destino concreto (webhook, kafka...).
type Sink interface {
	Publish(ctx context.Context, m Message) error
	Close() error
}

// Notifier implementa bookings.Notifier y contacts.Notifier y reparte cada
// mensaje a todos sus sinks. Sin sinks no hace nada.
type Notifier struct {
	sinks []Sink
	newID func() string
}

var (
	_ bookings.Notifier = (*Notifier)(nil)
	_ contacts.Notifier = (*Notifier)(nil)
)

func New(sinks ...Sink) *Notifier {
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Notifier{sinks: out, newID: uuid.NewString}
}

func (n *Notifier) Enabled() bool {
	return n != nil && len(n.sinks) > 0
}

func (n *Notifier) BookingCreated(ctx context.Context, b bookings.Booking) error {
	if !n.Enabled() {
		return nil
	}
	return n.publish(ctx, bookingMessage(n.newID(), b))
}

func (n *Notifier) ContactCreated(ctx context.Context, c contacts.Contact) error {
	if !n.Enabled() {
		return nil
	}
	return n.publish(ctx, contactMessage(n.newID(), c))
}

func (n *Notifier) publish(ctx context.Context, m Message) error {
	var errs []error
	for _, s := range n.sinks {
		if err := s.Publish(ctx, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) Close() error {
	if n == nil {
		return nil
	}
	var errs []error
	for _, s := range n.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

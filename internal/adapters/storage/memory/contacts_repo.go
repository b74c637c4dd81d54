package memory

import (
	"context"

	"dogwalking/internal/domain/contacts"
)

type contactRepo struct {
	c *collection[contacts.Contact]
}

func (r *contactRepo) Create(ctx context.Context, in contacts.NewContact) (contacts.Contact, error) {
	return r.c.insert(in.Materialize), nil
}

func (r *contactRepo) List(ctx context.Context) ([]contacts.Contact, error) {
	return r.c.list(), nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dogwalking/internal/domain/contacts"
)

type ContactsRepo struct {
	db *sql.DB
}

func NewContactsRepo(db *sql.DB) *ContactsRepo {
	return &ContactsRepo{db: db}
}

func (r *ContactsRepo) Create(ctx context.Context, in contacts.NewContact) (contacts.Contact, error) {
	var c contacts.Contact
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (name, phone, email, message)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, in.Name, in.Phone, in.Email, in.Message).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return contacts.Contact{}, fmt.Errorf("postgres: insert contact: %w", err)
	}
	return in.Materialize(c.ID, c.CreatedAt), nil
}

func (r *ContactsRepo) List(ctx context.Context) ([]contacts.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, email, message, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list contacts: %w", err)
	}
	defer rows.Close()

	out := make([]contacts.Contact, 0)
	for rows.Next() {
		var c contacts.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

package mongodb

import (
	"context"
	"fmt"
	"time"

	"dogwalking/internal/domain/contacts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type contactDoc struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

type ContactsRepo struct {
	coll     *mongo.Collection
	counters *counters
	now      func() time.Time
}

func NewContactsRepo(db *mongo.Database) *ContactsRepo {
	return &ContactsRepo{
		coll:     db.Collection(ContactsCollection),
		counters: newCounters(db),
		now:      time.Now,
	}
}

func (r *ContactsRepo) Create(ctx context.Context, in contacts.NewContact) (contacts.Contact, error) {
	id, err := r.counters.next(ctx, ContactsCollection)
	if err != nil {
		return contacts.Contact{}, err
	}

	c := in.Materialize(id, stamp(r.now))
	_, err = r.coll.InsertOne(ctx, contactDoc{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return contacts.Contact{}, fmt.Errorf("mongo: insert contact: %w", err)
	}
	return c, nil
}

func (r *ContactsRepo) List(ctx context.Context) ([]contacts.Contact, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("mongo: list contacts: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]contacts.Contact, 0)
	for cur.Next(ctx) {
		var d contactDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("mongo: decode contact: %w", err)
		}
		out = append(out, contacts.Contact{
			ID:        d.ID,
			Name:      d.Name,
			Phone:     d.Phone,
			Email:     d.Email,
			Message:   d.Message,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, cur.Err()
}

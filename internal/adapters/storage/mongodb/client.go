package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BookingsCollection = "bookings"
	ReviewsCollection  = "reviews"
	ContactsCollection = "contacts"
	countersCollection = "counters"
)

// Connect abre el cliente y hace ping dentro de timeout.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	return client, nil
}

// counters emula el serial de Postgres: un documento por colección con un seq
// que se incrementa de forma atómica con $inc.
type counters struct {
	coll *mongo.Collection
}

func newCounters(db *mongo.Database) *counters {
	return &counters{coll: db.Collection(countersCollection)}
}

func (c *counters) next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := c.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("mongo: next id for %s: %w", name, err)
	}
	return doc.Seq, nil
}

// newestFirst es el orden de listado: created_at desc y, a igual timestamp, _id desc.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
}

// stamp trunca a milisegundos, que es la precisión que guarda Mongo.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

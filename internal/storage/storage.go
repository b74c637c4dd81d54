package storage

import (
	"context"
	"database/sql"
	"errors"

	"dogwalking/internal/adapters/storage/memory"
	"dogwalking/internal/adapters/storage/mongodb"
	pg "dogwalking/internal/adapters/storage/postgres"
	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"
	"dogwalking/internal/domain/reviews"
	"dogwalking/internal/platform/config"
	"dogwalking/internal/platform/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
)

// Storage agrupa los repositorios de las tres colecciones. Los handlers solo ven
// las interfaces, así un backend durable reemplaza al de memoria sin tocarlos.
type Storage struct {
	Backend  Backend
	Bookings bookings.Repository
	Reviews  reviews.Repository
	Contacts contacts.Repository

	close func(ctx context.Context) error
}

func Memory(opts ...memory.Option) *Storage {
	s := memory.NewStore(opts...)
	return &Storage{
		Backend:  BackendMemory,
		Bookings: s.Bookings(),
		Reviews:  s.Reviews(),
		Contacts: s.Contacts(),
	}
}

func Postgres(db *sql.DB) *Storage {
	return &Storage{
		Backend:  BackendPostgres,
		Bookings: pg.NewBookingsRepo(db),
		Reviews:  pg.NewReviewsRepo(db),
		Contacts: pg.NewContactsRepo(db),
		close:    func(context.Context) error { return db.Close() },
	}
}

func Mongo(client *mongo.Client, dbName string) *Storage {
	db := client.Database(dbName)
	return &Storage{
		Backend:  BackendMongo,
		Bookings: mongodb.NewBookingsRepo(db),
		Reviews:  mongodb.NewReviewsRepo(db),
		Contacts: mongodb.NewContactsRepo(db),
		close:    client.Disconnect,
	}
}

// Open elige backend según la config: DB_DSN > MONGO_URI > memoria.
// Un backend configurado que no responde es un error (no caemos a memoria en silencio).
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (*Storage, error) {
	switch {
	case cfg.DBDSN != "":
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("storage ready", map[string]any{"backend": string(BackendPostgres)})
		return Postgres(db), nil

	case cfg.MongoURI != "":
		client, err := mongodb.Connect(ctx, cfg.MongoURI, 0)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", map[string]any{"backend": string(BackendMongo), "database": cfg.MongoDB})
		return Mongo(client, cfg.MongoDB), nil

	default:
		log.Warn("storage ready", map[string]any{
			"backend": string(BackendMemory),
			"note":    "data is lost on restart",
		})
		return Memory(), nil
	}
}

func (s *Storage) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Validate evita arrancar con un Storage armado a mano e incompleto.
func (s *Storage) Validate() error {
	if s == nil || s.Bookings == nil || s.Reviews == nil || s.Contacts == nil {
		return errors.New("storage: all repositories are required")
	}
	return nil
}

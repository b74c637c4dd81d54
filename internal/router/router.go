package router

import (
	"net/http"

	_ "dogwalking/docs"
	"dogwalking/internal/domain/bookings"
	"dogwalking/internal/domain/contacts"
	"dogwalking/internal/domain/reviews"
	"dogwalking/internal/middleware"
	"dogwalking/internal/platform/logger"
	"dogwalking/internal/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Notifier lo implementa notify.Notifier; nil = sin avisos.
type Notifier interface {
	bookings.Notifier
	contacts.Notifier
}

type Options struct {
	// Opcional: si es nil se usa el store en memoria.
	Storage *storage.Storage

	Logger     logger.Logger
	Notifier   Notifier
	CORSOrigin string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Storage
	if store == nil {
		store = storage.Memory()
	}
	// Un Storage incompleto es un error de armado: mejor fallar al arrancar.
	if err := store.Validate(); err != nil {
		panic(err)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS(opts.CORSOrigin))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		bookingNotifier bookings.Notifier
		contactNotifier contacts.Notifier
	)
	if opts.Notifier != nil {
		bookingNotifier = opts.Notifier
		contactNotifier = opts.Notifier
	}

	bookingsSvc := bookings.NewService(store.Bookings, log, bookingNotifier)
	reviewsSvc := reviews.NewService(store.Reviews, log)
	contactsSvc := contacts.NewService(store.Contacts, log, contactNotifier)

	bookings.RegisterRoutes(r, bookingsSvc)
	reviews.RegisterRoutes(r, reviewsSvc)
	contacts.RegisterRoutes(r, contactsSvc)

	return r
}

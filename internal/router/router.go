package router

import (
	"context"
	"net/http"
	"os"

	mem "dietpet/internal/adapters/storage/memory"
	sqlitekv "dietpet/internal/adapters/storage/sqlite"
	"dietpet/internal/domain/store"
	"dietpet/internal/middleware"
	"dietpet/internal/platform/logger"
	"dietpet/internal/ports/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger // puede ser nil; se crea desde env

	// Opcional: si viene, se usa este KV. Si no, intenta sqlite por
	// env (DIETPET_DB) y si tampoco, memoria.
	KV storage.KV
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	kv := opts.KV
	if kv == nil {
		if path := os.Getenv("DIETPET_DB"); path != "" {
			db, err := sqlitekv.Open(path)
			if err == nil {
				kv = sqlitekv.NewKV(db)
			} else {
				// el store no debe impedir el arranque: se sigue en
				// memoria y se avisa
				log.Warn("could not open sqlite storage, using memory", map[string]any{
					"path":  path,
					"error": err.Error(),
				})
			}
		}
	}
	if kv == nil {
		kv = mem.NewKV()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Un solo store explícito construido en el arranque; nada de
	// singletons de paquete.
	svc := store.New(context.Background(), store.NewCodec(kv, log))
	store.RegisterRoutes(r, svc)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}

package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"pharmatool/internal/config"
	"pharmatool/internal/middleware"
	"pharmatool/internal/store"
	"pharmatool/server/http/handlers"
)

func NewRouter(cfg config.Config, st *store.Store, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)
	r.Get("/search", handlers.Search(st, logger))
	r.Get("/medicines", handlers.Medicines(st, logger))
	r.Get("/contacts", handlers.Contacts(st, logger))

	return r
}

package routes

import (
	"net/http"

	"mgnrega-dash/internal/config"
	"mgnrega-dash/internal/handlers"
	"mgnrega-dash/internal/logger"
	"mgnrega-dash/internal/metrics"
	mdlwr "mgnrega-dash/internal/middleware"
	"mgnrega-dash/internal/services"
	"mgnrega-dash/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(st store.Store, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mdlwr.NewRequestLogger(logr.Logger).Instrument)

	// CORS middleware with config
	r.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))

	dashboardSvc := services.NewDashboardService(st, logr.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", dashboardHandler.Root)

		r.Route("/districts", func(r chi.Router) {
			r.Get("/", dashboardHandler.ListDistricts)
			r.Get("/{id}", dashboardHandler.GetDistrict)
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/state", dashboardHandler.StateMetrics)
			r.Get("/comparison", dashboardHandler.Comparison)
		})
	})

	return r
}

// corsOptions allows credentials for every configured origin. A wildcard list is
// served through AllowOriginFunc so the request origin is echoed back; browsers
// reject a literal "*" on credentialed requests.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	for _, o := range origins {
		if o == "*" {
			opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
			return opts
		}
	}
	opts.AllowedOrigins = origins
	return opts
}

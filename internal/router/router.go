package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "foster-intake/internal/adapters/storage/memory"
	pg "foster-intake/internal/adapters/storage/postgres"
	"foster-intake/internal/domain/intakes"
	"foster-intake/internal/domain/schedule"
	"foster-intake/internal/middleware"
	"foster-intake/internal/platform/logger"

	_ "foster-intake/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional (default: Nop).
	Logger logger.Logger

	// Opcional: reloj/zona del schedule (default: hora local).
	Planner *schedule.Manager

	// Opcional: registry para /metrics (default: uno nuevo por router).
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.StaffContext)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.NewMetrics(reg).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, using in-memory storage", map[string]any{"err": err})
			}
		}
	}

	var intakeRepo intakes.Repository
	if db != nil {
		intakeRepo = pg.NewIntakesRepo(db)
		log.Info("storage ready", map[string]any{"driver": "postgres"})
	} else {
		intakeRepo = mem.NewIntakeRepo()
		log.Info("storage ready", map[string]any{"driver": "memory"})
	}

	intakesSvc := intakes.NewService(intakeRepo, opts.Planner)
	intakes.RegisterRoutes(r, intakesSvc)

	return r
}

package router

import (
	"net/http"
	"time"

	_ "pet-care-booking/docs"

	mem "pet-care-booking/internal/adapters/storage/memory"
	pg "pet-care-booking/internal/adapters/storage/postgres"
	"pet-care-booking/internal/adapters/notify"
	"pet-care-booking/internal/domain/orders"
	"pet-care-booking/internal/middleware"
	"pet-care-booking/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sqlx.DB
	// Repository tiene prioridad sobre DB (tests).
	Repository orders.Repository

	// Notifier nil => solo loguea el resumen.
	Notifier      orders.Notifier
	NotifyTimeout time.Duration

	// StaticDir con el build del formulario; vacío o inexistente => no se sirve nada.
	StaticDir   string
	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID(log))
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(opts.CORSOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repo := opts.Repository
	if repo == nil {
		if opts.DB != nil {
			repo = pg.NewOrdersRepo(opts.DB)
		} else {
			repo = mem.NewOrdersRepo()
		}
	}

	var notifier orders.Notifier = notify.NewLogNotifier(log)
	if opts.Notifier != nil {
		notifier = opts.Notifier
	}

	ordersSvc := orders.NewService(repo, notifier,
		orders.WithLogger(log),
		orders.WithNotifyTimeout(opts.NotifyTimeout),
	)
	orders.RegisterRoutes(r, ordersSvc, log)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Todo lo demás es el formulario (SPA).
	r.Get("/*", staticHandler(opts.StaticDir))

	return r
}

func corsOrigins(in []string) []string {
	if len(in) == 0 {
		return []string{"*"}
	}
	return in
}

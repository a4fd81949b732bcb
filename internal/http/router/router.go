package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lamkn06/delivery-ops/internal/http/handlers"
	mw "github.com/lamkn06/delivery-ops/internal/http/middleware"
	"github.com/lamkn06/delivery-ops/internal/http/middleware/auth"
	"github.com/lamkn06/delivery-ops/internal/http/middleware/ratelimit"
	"github.com/lamkn06/delivery-ops/internal/http/pprofserver"
	"github.com/lamkn06/delivery-ops/internal/logx"
)

// Deps carries the handlers and middleware the router mounts.
type Deps struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Delivery  *handlers.DeliveryHandler
	Driver    *handlers.DriverHandler
	Quote     *handlers.QuoteHandler
	RateLimit *ratelimit.Middleware
	JWTSecret string
	Pprof     pprofserver.Config
}

// New constructs a chi-based http.Handler with base middleware and routes.
// The admin API routes are authenticated; ping, healthcheck and metrics
// stay open.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(mw.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/debug/pprof/*", pprofserver.Handler(d.Pprof))
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(d.JWTSecret, d.Logger))

		r.Route("/deliveries", func(r chi.Router) {
			r.Post("/assign", d.Delivery.Assign)
			r.Post("/reassign", d.Delivery.Reassign)
			r.Get("/{id}", d.Delivery.GetByID)
			r.Post("/{id}/next-status", d.Delivery.NextStatus)
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", d.Driver.Search)
			r.Post("/", d.Driver.Register)
			r.Get("/{id}", d.Driver.GetByID)
			r.Put("/{id}", d.Driver.Update)
		})

		r.Post("/quotes", d.Quote.Quote)
	})

	return r
}

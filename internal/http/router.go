package http

import (
	"log/slog"
	"time"

	"github.com/geocoder89/eventbook/internal/auth"
	"github.com/geocoder89/eventbook/internal/cache"
	"github.com/geocoder89/eventbook/internal/http/handlers"
	"github.com/geocoder89/eventbook/internal/http/middlewares"
	"github.com/geocoder89/eventbook/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "eventbook"

type RouterDeps struct {
	Env      string
	Log      *slog.Logger
	Events   handlers.EventService
	Bookings handlers.BookingService
	Cache    cache.Store
	Checks   map[string]handlers.CheckFunc
	Tokens   middlewares.TokenVerifier

	Prom     *observability.Prom
	Gatherer prometheus.Gatherer
	Tracing  bool

	CORSAllowedOrigins []string
	BookingRateLimit   int

	// RateLimitStore is shared across instances when set, process local otherwise.
	RateLimitStore limiter.Store
	MaxBodyBytes   int64
}

func NewRouter(d RouterDeps) *gin.Engine {
	if d.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if d.Tracing {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(middlewares.RequestLogger(d.Log))
	if d.Prom != nil {
		r.Use(d.Prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(d.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(d.MaxBodyBytes))

	// health
	h := handlers.NewHealthHandler(d.Checks)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	authM := middlewares.NewAuthMiddleware(d.Tokens)
	admin := []gin.HandlerFunc{authM.RequireAuth(), authM.RequireRole(auth.RoleAdmin)}

	eventsHandler := handlers.NewEventsHandlerWithCache(d.Events, d.Cache)

	events := r.Group("/events", middlewares.RequireJSON())
	events.GET("/:id", eventsHandler.GetEventByID)
	events.GET("/slug/:slug", eventsHandler.GetEventBySlug)
	events.POST("", append(admin, eventsHandler.CreateEvent)...)
	events.PATCH("/:id", append(admin, eventsHandler.UpdateEvent)...)
	events.DELETE("/:id", append(admin, eventsHandler.DeleteEvent)...)

	bookingsHandler := handlers.NewBookingsHandler(d.Bookings)
	limiter := middlewares.NewRateLimiter(d.BookingRateLimit, time.Minute, d.RateLimitStore)

	bookings := r.Group("/bookings", middlewares.RequireJSON())
	bookings.POST("", limiter.Middleware(middlewares.KeyByIP), bookingsHandler.CreateBooking)
	bookings.GET("/:id", bookingsHandler.GetBooking)
	bookings.PUT("/:id", bookingsHandler.UpdateBooking)
	bookings.DELETE("/:id", bookingsHandler.DeleteBooking)

	return r
}

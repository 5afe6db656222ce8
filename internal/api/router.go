package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gatherhub/server/internal/api/handlers"
	"github.com/gatherhub/server/internal/api/middleware"
	"github.com/gatherhub/server/internal/auth"
	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"github.com/gatherhub/server/internal/metrics"
	"github.com/gatherhub/server/internal/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	usersService := users.NewService(repo.Users(), tokens)
	eventsService := events.NewService(repo.Events())

	authHandler := handlers.NewAuthHandler(usersService, cfg.Environment)
	eventsHandler := handlers.NewEventsHandler(eventsService, cfg.Environment)

	// The tier tag must be in the context before the limiter reads it, so
	// the limiter sits inside the tier middleware on each route.
	limit := middleware.RateLimit(cfg.RateLimit)
	loginTier := middleware.WithRateLimitTierHandler(middleware.TierLogin)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(pool))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.Handle("/signup", methodMux(map[string]http.Handler{
		http.MethodPost: loginTier(limit(http.HandlerFunc(authHandler.SignUp))),
	}))
	mux.Handle("/signin", methodMux(map[string]http.Handler{
		http.MethodPost: loginTier(limit(http.HandlerFunc(authHandler.SignIn))),
	}))
	mux.Handle("/events", methodMux(map[string]http.Handler{
		http.MethodGet:  limit(http.HandlerFunc(eventsHandler.List)),
		http.MethodPost: limit(http.HandlerFunc(eventsHandler.Create)),
	}))
	mux.Handle("/events/rsvp/{id}", methodMux(map[string]http.Handler{
		http.MethodPost: limit(http.HandlerFunc(eventsHandler.RSVP)),
	}))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.Correlation(logger)(handler)

	return handler, nil
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/angelmondragon/mentormatch-backend/api/controllers"
	"github.com/angelmondragon/mentormatch-backend/api/middleware"
	"github.com/angelmondragon/mentormatch-backend/internal/auth"
	"github.com/angelmondragon/mentormatch-backend/internal/matching"
	"github.com/angelmondragon/mentormatch-backend/internal/mentors"
	"github.com/angelmondragon/mentormatch-backend/internal/profiles"
	"github.com/angelmondragon/mentormatch-backend/pkg/auth/session"
	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
	"github.com/angelmondragon/mentormatch-backend/pkg/metrics"
	pkgredis "github.com/angelmondragon/mentormatch-backend/pkg/redis"
	"github.com/angelmondragon/mentormatch-backend/pkg/sentry"
)

// Deps carries everything the router wires into handlers. Nil stores disable
// the middleware that needs them.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	Sessions         session.AccessSessionChecker
	RateLimitStore   middleware.RateLimitStore
	IdempotencyStore pkgredis.IdempotencyStore

	AuthService     auth.Service
	RegisterService auth.RegisterService
	ProfileService  profiles.Service
	MentorService   mentors.Service
	MatchService    matching.Service

	ReadinessChecks []controllers.ReadinessCheck
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsHandler  http.Handler
	Sentry          *sentry.Reporter
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(logg),
		middleware.Sentry(d.Sentry),
		middleware.Recoverer(logg),
		middleware.Logging(logg, d.HTTPMetrics),
		middleware.CORS(cfg.App.AllowedOrigins()),
	)

	loginPolicy := middleware.LoginRateLimitPolicy(cfg.AuthRateLimit)
	signupPolicy := middleware.SignupRateLimitPolicy(cfg.AuthRateLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(logg, d.ReadinessChecks...))
	})

	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	docsIndex := controllers.DocsPath + "/index.html"
	if cfg.App.DocsEnabled {
		r.Get("/", controllers.Redirect(docsIndex))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.HealthLive())
		if cfg.App.DocsEnabled {
			r.Get("/openapi.json", controllers.OpenAPISpec(logg))
			r.Get("/docs", controllers.Redirect(docsIndex))
			r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL(controllers.OpenAPIPath)))
		}
		r.With(middleware.AuthRateLimit(signupPolicy, d.RateLimitStore, logg)).Post("/signup", controllers.AuthSignup(d.RegisterService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, d.RateLimitStore, logg)).Post("/login", controllers.AuthLogin(d.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))

			r.Post("/logout", controllers.AuthLogout(d.AuthService, logg))
			r.Get("/me", controllers.Me(d.ProfileService, logg))
			r.Put("/profile", controllers.UpdateProfile(d.ProfileService, logg))
			r.Get("/images/{role}/{id}", controllers.ProfileImage(d.ProfileService, logg))
			r.Get("/mentors", controllers.ListMentors(d.MentorService, logg))

			r.Route("/match-requests", func(r chi.Router) {
				r.With(middleware.Idempotency(d.IdempotencyStore, logg)).Post("/", controllers.CreateMatchRequest(d.MatchService, logg))
				r.With(middleware.RequireRole(enums.UserRoleMentor, logg)).Get("/incoming", controllers.ListIncomingMatchRequests(d.MatchService, logg))
				r.With(middleware.RequireRole(enums.UserRoleMentee, logg)).Get("/outgoing", controllers.ListOutgoingMatchRequests(d.MatchService, logg))
				r.Put("/{id}/accept", controllers.AcceptMatchRequest(d.MatchService, logg))
				r.Put("/{id}/reject", controllers.RejectMatchRequest(d.MatchService, logg))
				r.Delete("/{id}", controllers.CancelMatchRequest(d.MatchService, logg))
			})
		})
	})

	return r
}

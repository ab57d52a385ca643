package http

import (
	"net/http"

	"github.com/ainame-auth/internal/application/auth"
	"github.com/ainame-auth/internal/application/session"
	"github.com/ainame-auth/internal/application/verification"
	"github.com/ainame-auth/internal/config"
	"github.com/ainame-auth/internal/pkg/token"
	"github.com/ainame-auth/internal/transport/http/handler"
	appmiddleware "github.com/ainame-auth/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      UserRepository
	EmailCodeRepo EmailCodeRepository
	Codec         TokenCodec
	Mailer        Mailer
	Events        EventPublisher // nil disables registration events
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	issuer := token.NewIssuer(deps.Codec, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authSvc := auth.NewService(auth.ServiceDeps{
		Codes:    verification.NewStore(deps.EmailCodeRepo),
		UserRepo: deps.UserRepo,
		Mailer:   deps.Mailer,
		Events:   deps.Events,
	})
	sessionSvc := session.NewService(deps.UserRepo, issuer)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/code", authH.RequestCode)
		r.Post("/register", authH.Register)
		r.Post("/login", sessionH.Login)
		r.With(appmiddleware.RequireRefresh(deps.Codec)).Post("/refresh", sessionH.Refresh)
		r.With(appmiddleware.RequireAccess(deps.Codec)).Get("/me", sessionH.GetCurrent)
	})

	return r
}

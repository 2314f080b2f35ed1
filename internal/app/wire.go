package app

import (
	"log/slog"

	"github.com/bgc/platform/internal/auth"
	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/handler"
	adminhandler "github.com/bgc/platform/internal/handler/admin"
	"github.com/bgc/platform/internal/infra"
	"github.com/bgc/platform/internal/provider"
	"github.com/bgc/platform/internal/repository"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool   *pgxpool.Pool
	JWTMgr *auth.JWTManager
	Logger *slog.Logger
	Config *infra.Config
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	jwtMgr := deps.JWTMgr
	logger := deps.Logger
	cfg := deps.Config

	// Repositories
	userRepo := repository.NewUserRepository()
	playerRepo := repository.NewPlayerRepository()
	tournamentRepo := repository.NewTournamentRepository()
	teamRepo := repository.NewTeamRepository()
	matchRepo := repository.NewMatchRepository()
	messageRepo := repository.NewMessageRepository()
	outboxRepo := repository.NewOutboxRepository()

	// External providers
	cricapi := provider.NewCricAPIClient(cfg.CricAPIBaseURL, cfg.CricAPIKey, logger)

	// Services
	authSvc := service.NewAuthService(pool, userRepo, jwtMgr)
	profileSvc := service.NewProfileService(pool, userRepo, outboxRepo, cfg.AdminSetupPassword, logger)
	playerSvc := service.NewPlayerService(pool, userRepo, playerRepo)
	tournamentSvc := service.NewTournamentService(pool, userRepo, tournamentRepo, outboxRepo, logger)
	registrationSvc := service.NewRegistrationService(pool, userRepo, tournamentRepo, teamRepo, outboxRepo, logger)
	matchSvc := service.NewMatchService(pool, userRepo, tournamentRepo, teamRepo, matchRepo, outboxRepo, logger)
	messageSvc := service.NewMessageService(pool, userRepo, messageRepo, outboxRepo, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	playerHandler := handler.NewPlayerHandler(playerSvc)
	tournamentHandler := handler.NewTournamentHandler(tournamentSvc, registrationSvc, matchSvc)
	teamHandler := handler.NewTeamHandler(registrationSvc)
	matchHandler := handler.NewMatchHandler(matchSvc)
	messageHandler := handler.NewMessageHandler(messageSvc)
	liveScoresHandler := handler.NewLiveScoresHandler(cricapi)

	// Admin handlers
	tournamentAdmin := adminhandler.NewTournamentAdminHandler(tournamentSvc)
	teamAdmin := adminhandler.NewTeamAdminHandler(registrationSvc)
	matchAdmin := adminhandler.NewMatchAdminHandler(matchSvc)
	messageAdmin := adminhandler.NewMessageAdminHandler(messageSvc)
	userAdmin := adminhandler.NewUserAdminHandler(profileSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORSWithOrigins(cfg.CORSAllowedOrigins))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(pool))

	// Auth routes (no auth)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Public read routes (no auth)
	r.Get("/players", playerHandler.List)
	r.Get("/tournaments", tournamentHandler.List)
	r.Get("/tournaments/{id}", tournamentHandler.Get)
	r.Get("/tournaments/{id}/teams", tournamentHandler.Teams)
	r.Get("/tournaments/{id}/matches", tournamentHandler.Matches)
	r.Get("/matches", matchHandler.List)
	r.Get("/matches/{id}", matchHandler.Get)
	r.Get("/live-scores", liveScoresHandler.List)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(jwtMgr))

		r.Route("/me", func(r chi.Router) {
			r.Get("/", profileHandler.Me)
			r.Post("/profile", profileHandler.CompleteProfile)
			r.Post("/verify-phone", profileHandler.VerifyPhone)
			r.Post("/make-admin", userAdmin.MakeAdmin)
		})

		r.Get("/players/me", playerHandler.Mine)
		r.Post("/players", playerHandler.Create)
		r.Put("/players/{id}", playerHandler.Update)

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", teamHandler.Register)
			r.Get("/mine", teamHandler.Mine)
			r.Get("/{id}", teamHandler.Get)
		})

		r.Post("/messages", messageHandler.Send)
	})

	// Admin routes. The role claim is a fast-path gate; services re-check the
	// users row.
	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.Authenticate(jwtMgr))
		r.Use(auth.RequireRoleClaim(domain.RoleAdmin))

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", tournamentAdmin.Create)
			r.Get("/mine", tournamentAdmin.Mine)
			r.Patch("/{id}/status", tournamentAdmin.UpdateStatus)
		})

		r.Patch("/teams/{id}/payment-status", teamAdmin.UpdatePaymentStatus)

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchAdmin.Create)
			r.Patch("/{id}/score", matchAdmin.UpdateScore)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", messageAdmin.List)
			r.Get("/unread-count", messageAdmin.UnreadCount)
			r.Post("/{id}/read", messageAdmin.MarkRead)
			r.Post("/{id}/respond", messageAdmin.Respond)
		})
	})

	return r
}

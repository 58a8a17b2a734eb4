package server

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/auth"
	authHandlers "github.com/Montyshaa/Sumeris/internal/auth/handlers"
	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/game"
	gameHandlers "github.com/Montyshaa/Sumeris/internal/game/handlers"
	"github.com/Montyshaa/Sumeris/internal/middleware"
	"github.com/Montyshaa/Sumeris/internal/player"
	playerHandlers "github.com/Montyshaa/Sumeris/internal/player/handlers"
	serverHandlers "github.com/Montyshaa/Sumeris/internal/server/handlers"
	"github.com/Montyshaa/Sumeris/internal/shared/database"
	"github.com/Montyshaa/Sumeris/internal/shared/redis"
)

type Routes struct {
	db               *database.DB
	cache            *redis.Client
	playerService    *player.Service
	gameService      *game.Service
	hub              *game.Hub
	googleProvider   *auth.GoogleProvider
	googleConfigured bool
	logger           *slog.Logger
}

func NewRoutes(
	db *database.DB,
	cache *redis.Client,
	playerService *player.Service,
	gameService *game.Service,
	hub *game.Hub,
	googleProvider *auth.GoogleProvider,
	googleConfigured bool,
	logger *slog.Logger,
) *Routes {
	return &Routes{
		db:               db,
		cache:            cache,
		playerService:    playerService,
		gameService:      gameService,
		hub:              hub,
		googleProvider:   googleProvider,
		googleConfigured: googleConfigured,
		logger:           logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	statusHandler := gameHandlers.NewGameStatusHandler(r.playerService, catalog.TutorialDays)
	playersHandler := playerHandlers.NewPlayersHandler(r.playerService)
	meHandler := playerHandlers.NewMeHandler(r.playerService, r.gameService)

	guestLoginHandler := authHandlers.NewGuestLoginHandler(r.playerService)
	googleAuthHandler := authHandlers.NewGoogleAuthHandler(r.googleProvider, r.playerService, r.googleConfigured)
	logoutHandler := authHandlers.NewLogoutHandler()

	stateHandler := gameHandlers.NewStateHandler(r.gameService)
	queueHandler := gameHandlers.NewQueueHandler(r.gameService)
	policyHandler := gameHandlers.NewPolicyHandler(r.gameService)
	territoryHandler := gameHandlers.NewTerritoryHandler(r.gameService)
	missionHandler := gameHandlers.NewMissionHandler(r.gameService)
	eventsHandler := gameHandlers.NewEventsHandler(r.hub)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/game/status", statusHandler)
	mux.Handle("/api/players", playersHandler)

	// Auth endpoints
	mux.Handle("/auth/guest", guestLoginHandler)
	mux.HandleFunc("/auth/google", googleAuthHandler.HandleAuth)
	mux.HandleFunc("/auth/google/callback", googleAuthHandler.HandleCallback)
	mux.Handle("/auth/logout", logoutHandler)

	// Session-protected endpoints
	protected := func(h http.Handler) http.Handler { return middleware.JWTMiddleware(h) }

	mux.Handle("/api/players/me", protected(meHandler))
	mux.Handle("/api/game/state", protected(stateHandler))
	mux.Handle("/api/game/construction", protected(http.HandlerFunc(queueHandler.StartConstruction)))
	mux.Handle("/api/game/construction/{id}", protected(http.HandlerFunc(queueHandler.CancelConstruction)))
	mux.Handle("/api/game/research", protected(http.HandlerFunc(queueHandler.StartResearch)))
	mux.Handle("/api/game/research/{id}", protected(http.HandlerFunc(queueHandler.CancelResearch)))
	mux.Handle("/api/game/training", protected(http.HandlerFunc(queueHandler.StartTraining)))
	mux.Handle("/api/game/training/{id}", protected(http.HandlerFunc(queueHandler.CancelTraining)))
	mux.Handle("/api/game/policies/{id}/activate", protected(http.HandlerFunc(policyHandler.Activate)))
	mux.Handle("/api/game/policies/{id}/deactivate", protected(http.HandlerFunc(policyHandler.Deactivate)))
	mux.Handle("/api/game/territories/{id}/explore", protected(http.HandlerFunc(territoryHandler.Explore)))
	mux.Handle("/api/game/territories/{id}/control", protected(http.HandlerFunc(territoryHandler.Control)))
	mux.Handle("/api/game/territories/{id}/scout", protected(http.HandlerFunc(territoryHandler.Scout)))
	mux.Handle("/api/game/missions", protected(http.HandlerFunc(missionHandler.GetMissions)))
	mux.Handle("/api/game/missions/advance-day", protected(http.HandlerFunc(missionHandler.AdvanceDay)))
	mux.Handle("/api/game/events", protected(eventsHandler))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/game/status", "/api/players"},
		"auth_endpoints", []string{"/auth/guest", "/auth/google", "/auth/logout"},
		"protected_endpoints", []string{"/api/players/me", "/api/game/*"},
	)

	return mux
}

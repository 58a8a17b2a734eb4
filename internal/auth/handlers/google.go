package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Montyshaa/Sumeris/internal/auth"
	"github.com/Montyshaa/Sumeris/internal/player"
	"github.com/Montyshaa/Sumeris/internal/shared/config"
	"github.com/Montyshaa/Sumeris/internal/shared/cookies"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

type GoogleAuthHandler struct {
	provider      *auth.GoogleProvider
	playerService *player.Service
	isConfigured  bool
}

func NewGoogleAuthHandler(provider *auth.GoogleProvider, playerService *player.Service, isConfigured bool) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		provider:      provider,
		playerService: playerService,
		isConfigured:  isConfigured,
	}
}

// HandleAuth starts the Google sign-in flow.
func (h *GoogleAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "google_oauth_init", "ip", r.RemoteAddr)

	if !h.isConfigured {
		logger.Error("Google OAuth not configured - missing client credentials")
		response.Error(w, r, logger, errors.External("Google OAuth is not properly configured"))
		return
	}

	state, err := auth.GenerateOAuthState(r.UserAgent())
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	authURL := h.provider.GetAuthURL(state)

	logger.Info("Initiating Google OAuth flow")
	http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
}

// HandleCallback processes the Google OAuth callback and issues a session
// cookie for the matching player.
func (h *GoogleAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	errorParam := r.URL.Query().Get("error")

	logger := slog.With(
		"handler", "google_oauth_callback",
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	if errorParam != "" {
		logger.Warn("Google OAuth authorization denied", "oauth_error", errorParam)
		redirectWithError(w, r, "oauth_denied")
		return
	}

	if code == "" {
		logger.Error("Google OAuth callback missing authorization code")
		redirectWithError(w, r, "oauth_error")
		return
	}

	if err := auth.ValidateOAuthState(state, r.UserAgent()); err != nil {
		logger.Error("OAuth state validation failed", "error", err)
		redirectWithError(w, r, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange Google authorization code", "error", err)
		redirectWithError(w, r, "oauth_error")
		return
	}

	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info from Google", "error", err)
		redirectWithError(w, r, "oauth_error")
		return
	}

	userLogger := logger.With("user_email", userInfo.Email, "google_user_id", userInfo.ID)

	var avatarURL *string
	if userInfo.Picture != "" {
		avatarURL = &userInfo.Picture
	}

	p, err := h.playerService.FindOrCreatePlayerByOAuth(ctx, "google", userInfo.Email, userInfo.Name, avatarURL)
	if err != nil {
		userLogger.Error("Failed to find or create player", "error", err)
		redirectWithError(w, r, "database_error")
		return
	}

	jwtToken, err := auth.GenerateJWT(p.ID, p.Name)
	if err != nil {
		userLogger.Error("Failed to generate session token", "error", err, "player_id", p.ID)
		redirectWithError(w, r, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, jwtToken)

	userLogger.Info("Google OAuth authentication successful", "player_id", p.ID)

	cfg := config.GlobalConfig
	successURL := fmt.Sprintf("%s/auth/callback?success=true", cfg.Frontend.URL)
	http.Redirect(w, r, successURL, http.StatusTemporaryRedirect)
}

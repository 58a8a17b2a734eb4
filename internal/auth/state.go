package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

// stateManager stores one-time OAuth state tokens between the redirect to
// the provider and the callback.
type stateManager struct {
	states map[string]stateEntry
	mutex  sync.Mutex
}

type stateEntry struct {
	CreatedAt time.Time
	UserAgent string
}

var globalStates = &stateManager{states: make(map[string]stateEntry)}

func init() {
	go globalStates.cleanupLoop()
}

// GenerateOAuthState mints a random state token and remembers it for the
// callback. Tokens are single use and expire after ten minutes.
func GenerateOAuthState(userAgent string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}

	state := base64.URLEncoding.EncodeToString(b)

	globalStates.mutex.Lock()
	globalStates.states[state] = stateEntry{
		CreatedAt: time.Now(),
		UserAgent: userAgent,
	}
	globalStates.mutex.Unlock()

	return state, nil
}

// ValidateOAuthState consumes a state token, rejecting unknown or expired
// ones.
func ValidateOAuthState(state, userAgent string) error {
	logger := slog.With("component", "oauth_state", "operation", "validate")

	if state == "" {
		return fmt.Errorf("state token is required")
	}

	globalStates.mutex.Lock()
	entry, exists := globalStates.states[state]
	delete(globalStates.states, state)
	globalStates.mutex.Unlock()

	if !exists {
		logger.Warn("Invalid or expired state token")
		return fmt.Errorf("invalid or expired state token")
	}

	if time.Since(entry.CreatedAt) > stateTTL {
		logger.Warn("Expired state token", "age_minutes", time.Since(entry.CreatedAt).Minutes())
		return fmt.Errorf("state token has expired")
	}

	if entry.UserAgent != userAgent {
		logger.Warn("State token user agent mismatch")
	}

	return nil
}

func (sm *stateManager) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		sm.mutex.Lock()
		for state, entry := range sm.states {
			if now.Sub(entry.CreatedAt) > stateTTL {
				delete(sm.states, state)
			}
		}
		sm.mutex.Unlock()
	}
}

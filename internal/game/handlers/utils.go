package handlers

import (
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/middleware"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
)

// sessionPlayerID extracts the authenticated player from the request
// context set by the JWT middleware.
func sessionPlayerID(r *http.Request) (int, error) {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		return 0, errors.Unauthorized("authentication required")
	}
	return claims.PlayerID, nil
}

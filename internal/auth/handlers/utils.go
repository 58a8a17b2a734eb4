package handlers

import (
	"fmt"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/shared/config"
)

// redirectWithError sends the browser back to the frontend error page.
func redirectWithError(w http.ResponseWriter, r *http.Request, errorType string) {
	cfg := config.GlobalConfig
	errorURL := fmt.Sprintf("%s/auth/error?error=%s", cfg.Frontend.URL, errorType)

	http.Redirect(w, r, errorURL, http.StatusTemporaryRedirect)
}

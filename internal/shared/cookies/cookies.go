package cookies

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Montyshaa/Sumeris/internal/shared/config"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth_token"

// SetAuthCookie writes the session token with a lifetime matching the
// token's own expiration.
func SetAuthCookie(w http.ResponseWriter, token string) {
	c := sessionCookie()
	c.Value = token
	c.MaxAge = int(config.GlobalConfig.Auth.TokenExpiration.Seconds())
	http.SetCookie(w, c)
}

// ClearAuthCookie expires the session cookie immediately.
func ClearAuthCookie(w http.ResponseWriter) {
	c := sessionCookie()
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func sessionCookie() *http.Cookie {
	cfg := config.GlobalConfig
	return &http.Cookie{
		Name:     SessionCookieName,
		Path:     "/",
		Domain:   cookieDomain(cfg.Frontend.URL),
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: sameSiteMode(cfg.Auth.CookieSameSite),
	}
}

// cookieDomain derives the cookie domain from the frontend URL. Local
// hosts get no explicit domain so the browser scopes the cookie itself.
func cookieDomain(frontendURL string) string {
	u, err := url.Parse(frontendURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.Split(u.Host, ":")[0]
	if host == "localhost" || host == "127.0.0.1" {
		return ""
	}
	return host
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

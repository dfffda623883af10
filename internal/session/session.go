package session

import (
	"fmt"
	"net/http"
	"newsroom/internal/core"
	tokenIssuer "newsroom/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
)

// CookieName carries the signed session token between requests.
const CookieName = "newsroom_session"

// sessions outlive the browser tab but not the day
const tokenLifetime = 24 * time.Hour

type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

// Manager binds an authenticated identity to a tamper-resistant cookie and
// reads it back on later requests.
type Manager struct {
	issuer TokenIssuer
}

func NewManager(issuer TokenIssuer) *Manager {
	return &Manager{
		issuer: issuer,
	}
}

// Create issues a signed token for the identity and sets it as an HttpOnly
// cookie on the response.
func (m *Manager) Create(w http.ResponseWriter, identity core.Identity) error {
	token := m.issuer.Generate(tokenIssuer.TokenInfo{
		UserName:   identity.Username,
		UserID:     identity.UserID,
		Expiration: tokenLifetime / time.Hour,
	})

	signed, err := m.issuer.Sign(token)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(tokenLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Current returns the identity bound to the request's session cookie.
// Absent, tampered and expired tokens all read as "no session".
func (m *Manager) Current(r *http.Request) (core.Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return core.Identity{}, false
	}

	claims, err := m.issuer.Validate(cookie.Value)
	if err != nil {
		return core.Identity{}, false
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return core.Identity{}, false
	}

	username, ok := claims["username"].(string)
	if !ok {
		return core.Identity{}, false
	}

	return core.Identity{UserID: uint(uid), Username: username}, true
}

// Destroy expires the session cookie. Safe to call with no session present.
func (m *Manager) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

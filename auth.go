package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Authenticator decides whether a single inbound request originates from
// the site administrator. Strategies are interchangeable; the App composes
// them in order and any success authorizes the request. There is no role
// model: a resolved identity is the admin.
type Authenticator interface {
	Authenticate(c echo.Context) bool
}

// sessionAuth resolves the browser cookie session set at login.
type sessionAuth struct{}

func (sessionAuth) Authenticate(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	auth, ok := sess.Values["authenticated"].(bool)
	return ok && auth
}

// tokenAuth resolves an "Authorization: Bearer <token>" header against the
// issued-token table. Lookup errors fail closed.
type tokenAuth struct {
	store *Store
}

func (t tokenAuth) Authenticate(c echo.Context) bool {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return false
	}
	ok, err := t.store.ValidToken(token)
	if err != nil {
		c.Logger().Errorf("token lookup failed: %v", err)
		return false
	}
	return ok
}

// isAuthorized runs the configured authenticators in order: cookie session
// first, bearer token as the fallback for API callers.
func (a *App) isAuthorized(c echo.Context) bool {
	for _, auth := range a.authenticators {
		if auth.Authenticate(c) {
			return true
		}
	}
	return false
}

// requireAdmin gates mutating API routes. Unauthorized callers get the
// JSON 401 before any store access happens.
func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.isAuthorized(c) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}

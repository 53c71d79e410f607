package folio

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// handleLogin authenticates the admin password. On success it sets the
// browser cookie session and additionally issues a bearer token so API
// callers without cookies can authorize subsequent requests.
func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return tooManyRequests(c, a.loginLimiter, "Too many login attempts. Try again later.")
	}
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Config.AdminPasswordHash), []byte(req.Password)) != nil {
		a.loginLimiter.Record(c.RealIP())
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	if err := setAdminSession(c); err != nil {
		c.Logger().Errorf("set session: %v", err)
		return jsonError(c, http.StatusInternalServerError, "Internal server error")
	}
	token := uuid.NewString()
	if err := a.Store.IssueToken(token); err != nil {
		c.Logger().Errorf("issue token: %v", err)
		return jsonError(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	})
}

// handleLogout clears the cookie session and revokes the bearer token if
// the caller presented one.
func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		c.Logger().Errorf("clear session: %v", err)
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if err := a.Store.RevokeToken(strings.TrimSpace(token)); err != nil {
			c.Logger().Errorf("revoke token: %v", err)
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// handleMe lets the admin panel probe whether its credentials still
// resolve.
func (a *App) handleMe(c echo.Context) error {
	if !a.isAuthorized(c) {
		return jsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": true})
}

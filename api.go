package folio

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// jsonError writes the uniform API error body.
func jsonError(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

// storeError maps a store failure onto the API error taxonomy: missing
// records become 404, everything else is logged and surfaced as a generic
// 500.
func storeError(c echo.Context, op string, err error) error {
	if err == ErrNotFound {
		return jsonError(c, http.StatusNotFound, "Not found")
	}
	c.Logger().Errorf("%s: %v", op, err)
	return jsonError(c, http.StatusInternalServerError, "Internal server error")
}

// tooManyRequests writes a 429 with a Retry-After header derived from the
// limiter's window, so well-behaved clients know when to come back.
func tooManyRequests(c echo.Context, l *IPLimiter, msg string) error {
	if wait := l.RetryAfter(c.RealIP()); wait > 0 {
		secs := int(wait.Seconds()) + 1
		c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
	}
	return jsonError(c, http.StatusTooManyRequests, msg)
}

// deleteResponse is the uniform success body for DELETE endpoints.
func deleteResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// coerceInt converts a JSON value that may arrive as a number or a string
// into an int. Unparseable input becomes 0, matching how the admin form
// has always submitted stat values.
func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// apiErrorHandler renders JSON errors for /api/ paths and defers to the
// default handler everywhere else.
func (a *App) apiErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		code := http.StatusInternalServerError
		msg := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		if code >= 500 {
			c.Logger().Errorf("server error: %v", err)
		}
		_ = jsonError(c, code, msg)
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleActivityPing records a keep-alive row. Uptime monitors hit this
// so the database never idles out on free-tier hosting.
func (a *App) handleActivityPing(c echo.Context) error {
	ping, err := a.Store.RecordActivityPing("keep-alive ping")
	if err != nil {
		return storeError(c, "record activity", err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Activity recorded successfully",
		"data":    ping,
	})
}

// handleActivityLatest returns the most recent keep-alive ping, for the
// public activity panel's freshness indicator.
func (a *App) handleActivityLatest(c echo.Context) error {
	ping, ok, err := a.Store.LatestActivityPing()
	if err != nil {
		return storeError(c, "latest activity", err)
	}
	resp := map[string]any{"success": true}
	if ok {
		resp["lastActivity"] = ping
	} else {
		resp["lastActivity"] = nil
	}
	return c.JSON(http.StatusOK, resp)
}

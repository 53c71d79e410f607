package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// statRequest accepts value as either a JSON number or a string; the
// admin form historically sent both.
type statRequest struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Value  any    `json:"value"`
	Suffix string `json:"suffix"`
}

func (a *App) handleStatList(c echo.Context) error {
	stats, err := a.Store.ListStats()
	if err != nil {
		return storeError(c, "list stats", err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (a *App) handleStatCreate(c echo.Context) error {
	var req statRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Label) == "" || req.Value == nil {
		return jsonError(c, http.StatusBadRequest, "Missing required fields")
	}
	created, err := a.Store.CreateStat(Stat{
		Label:  req.Label,
		Value:  coerceInt(req.Value),
		Suffix: req.Suffix,
	})
	if err != nil {
		return storeError(c, "create stat", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleStatUpdate(c echo.Context) error {
	var req statRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.ID == "" || req.Value == nil {
		return jsonError(c, http.StatusBadRequest, "Missing required fields")
	}
	updated, err := a.Store.UpdateStat(Stat{
		ID:     req.ID,
		Label:  req.Label,
		Value:  coerceInt(req.Value),
		Suffix: req.Suffix,
	})
	if err != nil {
		return storeError(c, "update stat", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) handleStatDelete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	if err := a.Store.DeleteStat(id); err != nil {
		return storeError(c, "delete stat", err)
	}
	return deleteResponse(c)
}

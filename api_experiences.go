package folio

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleExperienceList(c echo.Context) error {
	experiences, err := a.Store.ListExperiences()
	if err != nil {
		return storeError(c, "list experiences", err)
	}
	return c.JSON(http.StatusOK, experiences)
}

func validExperienceType(t string) bool {
	return t == "work" || t == "education"
}

func (a *App) handleExperienceCreate(c echo.Context) error {
	var e Experience
	if err := c.Bind(&e); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Company) == "" {
		return jsonError(c, http.StatusBadRequest, "Missing required fields")
	}
	if !validExperienceType(e.Type) {
		return jsonError(c, http.StatusBadRequest, "Type must be work or education")
	}
	e.Skills = FilterEmpty(e.Skills)
	created, err := a.Store.CreateExperience(e)
	if err != nil {
		return storeError(c, "create experience", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleExperienceUpdate(c echo.Context) error {
	var e Experience
	if err := c.Bind(&e); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if e.ID == 0 {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	if !validExperienceType(e.Type) {
		return jsonError(c, http.StatusBadRequest, "Type must be work or education")
	}
	e.Skills = FilterEmpty(e.Skills)
	updated, err := a.Store.UpdateExperience(e)
	if err != nil {
		return storeError(c, "update experience", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) handleExperienceDelete(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "ID must be an integer")
	}
	if err := a.Store.DeleteExperience(id); err != nil {
		return storeError(c, "delete experience", err)
	}
	return deleteResponse(c)
}

package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleProjectList(c echo.Context) error {
	projects, err := a.Cache.ListProjects()
	if err != nil {
		return storeError(c, "list projects", err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (a *App) handleProjectCreate(c echo.Context) error {
	var p Project
	if err := c.Bind(&p); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Description) == "" {
		return jsonError(c, http.StatusBadRequest, "Missing required fields")
	}
	p.Tech = FilterEmpty(p.Tech)
	created, err := a.Store.CreateProject(p)
	if err != nil {
		return storeError(c, "create project", err)
	}
	a.Cache.InvalidateProjects()
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleProjectUpdate(c echo.Context) error {
	var p Project
	if err := c.Bind(&p); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if p.ID == "" {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	p.Tech = FilterEmpty(p.Tech)
	updated, err := a.Store.UpdateProject(p)
	if err != nil {
		return storeError(c, "update project", err)
	}
	a.Cache.InvalidateProjects()
	return c.JSON(http.StatusOK, updated)
}

func (a *App) handleProjectDelete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	if err := a.Store.DeleteProject(id); err != nil {
		return storeError(c, "delete project", err)
	}
	a.Cache.InvalidateProjects()
	return deleteResponse(c)
}

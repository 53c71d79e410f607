package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// handleBlogList serves the public blog feed. With ?id= it returns a
// single post including the rendered HTML body.
func (a *App) handleBlogList(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		blog, err := a.Store.GetBlog(id)
		if err != nil {
			return storeError(c, "get blog", err)
		}
		html, err := renderMarkdown(blog.Content)
		if err != nil {
			return storeError(c, "render blog", err)
		}
		blog.ContentHTML = html
		return c.JSON(http.StatusOK, blog)
	}
	blogs, err := a.Cache.ListBlogs()
	if err != nil {
		return storeError(c, "list blogs", err)
	}
	return c.JSON(http.StatusOK, blogs)
}

func (a *App) handleBlogCreate(c echo.Context) error {
	var blog Blog
	if err := c.Bind(&blog); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(blog.Title) == "" || strings.TrimSpace(blog.Excerpt) == "" || strings.TrimSpace(blog.Content) == "" {
		return jsonError(c, http.StatusBadRequest, "Missing required fields")
	}
	created, err := a.Store.CreateBlog(blog)
	if err != nil {
		return storeError(c, "create blog", err)
	}
	a.Cache.InvalidateBlogs()
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleBlogUpdate(c echo.Context) error {
	var blog Blog
	if err := c.Bind(&blog); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if blog.ID == "" {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	updated, err := a.Store.UpdateBlog(blog)
	if err != nil {
		return storeError(c, "update blog", err)
	}
	a.Cache.InvalidateBlogs()
	return c.JSON(http.StatusOK, updated)
}

func (a *App) handleBlogDelete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return jsonError(c, http.StatusBadRequest, "ID required")
	}
	if err := a.Store.DeleteBlog(id); err != nil {
		return storeError(c, "delete blog", err)
	}
	a.Cache.InvalidateBlogs()
	return deleteResponse(c)
}

package folio

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// handleContactMessageCreate is the public contact form submission path:
// the only unauthenticated write in the API. Rate-limited per IP.
func (a *App) handleContactMessageCreate(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return tooManyRequests(c, a.contactLimiter, "Too many messages. Try again later.")
	}
	var m ContactMessage
	if err := c.Bind(&m); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Subject) == "" || strings.TrimSpace(m.Message) == "" {
		return jsonError(c, http.StatusBadRequest, "Missing required fields")
	}
	if !emailPattern.MatchString(m.Email) {
		return jsonError(c, http.StatusBadRequest, "Invalid email format")
	}
	created, err := a.Store.CreateContactMessage(m)
	if err != nil {
		return storeError(c, "create contact message", err)
	}
	// Best-effort notification; the visitor's submission succeeded either way.
	if err := a.notifyOwner(c.Request().Context(), created); err != nil {
		c.Logger().Errorf("contact notification: %v", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleContactMessageList(c echo.Context) error {
	messages, err := a.Store.ListContactMessages()
	if err != nil {
		return storeError(c, "list contact messages", err)
	}
	return c.JSON(http.StatusOK, messages)
}

// handleContactMessageUpdate changes only the lifecycle status; the
// message body is immutable once submitted.
func (a *App) handleContactMessageUpdate(c echo.Context) error {
	var req struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.ID == "" {
		return jsonError(c, http.StatusBadRequest, "Message ID required")
	}
	updated, err := a.Store.UpdateContactMessageStatus(req.ID, req.Status)
	if err != nil {
		return storeError(c, "update contact message", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) handleContactMessageDelete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return jsonError(c, http.StatusBadRequest, "Message ID required")
	}
	if err := a.Store.DeleteContactMessage(id); err != nil {
		return storeError(c, "delete contact message", err)
	}
	return deleteResponse(c)
}

package folio

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// speakingPublicationsRequest uses pointers so a body missing either key
// can be told apart from one carrying an empty list.
type speakingPublicationsRequest struct {
	SpeakingEngagements *[]SpeakingEngagement `json:"speakingEngagements"`
	Publications        *[]Publication        `json:"publications"`
}

// speakingPublicationsResponse echoes the stored aggregate back so the
// caller can swap its draft placeholder ids for the real ones.
type speakingPublicationsResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	Data      SpeakingPublications `json:"data"`
	Timestamp string               `json:"timestamp"`
}

func (a *App) handleSpeakingPublicationsGet(c echo.Context) error {
	data, err := a.Store.GetSpeakingPublications()
	if err != nil {
		return storeError(c, "get speaking-publications", err)
	}
	return c.JSON(http.StatusOK, data)
}

// handleSpeakingPublicationsReplace replaces both collections wholesale.
// There is no row-level update path: the aggregate is always written as a
// pair.
func (a *App) handleSpeakingPublicationsReplace(c echo.Context) error {
	var req speakingPublicationsRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.SpeakingEngagements == nil || req.Publications == nil {
		return jsonError(c, http.StatusBadRequest, "Invalid data format")
	}
	stored, err := a.Store.ReplaceSpeakingPublications(SpeakingPublications{
		SpeakingEngagements: *req.SpeakingEngagements,
		Publications:        *req.Publications,
	})
	if err != nil {
		return storeError(c, "replace speaking-publications", err)
	}
	return c.JSON(http.StatusOK, speakingPublicationsResponse{
		Success:   true,
		Message:   "Data saved successfully",
		Data:      stored,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

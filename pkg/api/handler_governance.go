package api

import (
	"encoding/base64"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/models"
)

// CreateAttachmentBody is the wire form of an attachment upload; the
// content arrives base64-encoded.
type CreateAttachmentBody struct {
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type,omitempty"`
	Content     string         `json:"content"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// AddCommentRequest is the body for POST /api/v1/intents/:id/comments.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// recordCostHandler handles POST /api/v1/intents/:id/costs.
func (s *Server) recordCostHandler(c *echo.Context) error {
	var req models.RecordCostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.governanceService.RecordCost(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// listCostsHandler handles GET /api/v1/intents/:id/costs.
func (s *Server) listCostsHandler(c *echo.Context) error {
	summary, err := s.governanceService.ListCosts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// createAttachmentHandler handles POST /api/v1/intents/:id/attachments.
func (s *Server) createAttachmentHandler(c *echo.Context) error {
	var body CreateAttachmentBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	content, err := base64.StdEncoding.DecodeString(body.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid content: must be base64")
	}

	created, err := s.governanceService.CreateAttachment(c.Request().Context(),
		c.Param("id"), actorID(c), models.CreateAttachmentRequest{
			Filename:    body.Filename,
			ContentType: body.ContentType,
			Content:     content,
			Metadata:    body.Metadata,
		})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// listAttachmentsHandler handles GET /api/v1/intents/:id/attachments.
func (s *Server) listAttachmentsHandler(c *echo.Context) error {
	items, err := s.governanceService.ListAttachments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// getAttachmentHandler handles GET /api/v1/intents/:id/attachments/:aid.
// The raw blob comes back with its stored content type.
func (s *Server) getAttachmentHandler(c *echo.Context) error {
	a, err := s.governanceService.GetAttachment(c.Request().Context(), c.Param("aid"))
	if err != nil {
		return mapServiceError(c, err)
	}
	if a.IntentID != c.Param("id") {
		return c.JSON(http.StatusNotFound, errorBody{
			ErrorKind: "NOT_FOUND",
			Message:   "resource not found",
		})
	}
	return c.Blob(http.StatusOK, a.ContentType, a.Blob)
}

// addCommentHandler handles POST /api/v1/intents/:id/comments.
func (s *Server) addCommentHandler(c *echo.Context) error {
	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.governanceService.AddComment(c.Request().Context(), c.Param("id"), actorID(c), req.Text)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// requestArbitrationHandler handles POST /api/v1/intents/:id/arbitration.
func (s *Server) requestArbitrationHandler(c *echo.Context) error {
	var req models.ArbitrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.governanceService.RequestArbitration(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// recordDecisionHandler handles POST /api/v1/intents/:id/decisions.
func (s *Server) recordDecisionHandler(c *echo.Context) error {
	var req models.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.governanceService.RecordDecision(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

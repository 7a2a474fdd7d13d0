// internal/server/handlers.go
package server

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"hooshungry/internal/common/errors"
	"hooshungry/internal/common/logger"
	"hooshungry/internal/models"

	"github.com/gin-gonic/gin"
)

// Recommender is the service surface the transport layer consumes.
type Recommender interface {
	Recommend(ctx context.Context, hallID int64, prefs models.Preferences, limit *int) ([]models.ScoredMenuItem, error)
	ListHalls(ctx context.Context, query string) ([]models.DiningHall, error)
}

type Handler struct {
	svc    Recommender
	logger logger.Logger
}

func NewHandler(svc Recommender, log logger.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// ListHalls handles GET /api/v1/halls?query=
func (h *Handler) ListHalls(c *gin.Context) {
	halls, err := h.svc.ListHalls(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, HallsResponse{
		Count: len(halls),
		Halls: halls,
	})
}

// Recommend handles POST /api/v1/halls/:hallId/recommendations
func (h *Handler) Recommend(c *gin.Context) {
	hallID, err := strconv.ParseInt(c.Param("hallId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   string(errors.ErrCodeInvalidPreference),
			Message: "hallId must be an integer",
		})
		return
	}

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   string(errors.ErrCodeInvalidPreference),
			Message: "request body is not a valid preference request",
		})
		return
	}

	items, err := h.svc.Recommend(c.Request.Context(), hallID, req.Preferences, req.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendResponse{
		HallID: hallID,
		Count:  len(items),
		Items:  items,
	})
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	h.logger.WithError(err).Error("request failed", map[string]interface{}{
		"path": c.FullPath(),
	})

	if stdErr, ok := errors.AsStandardError(err); ok {
		status := http.StatusInternalServerError
		if stdErr.Retryable {
			status = http.StatusServiceUnavailable
		} else if stdErr.Code == errors.ErrCodeInvalidPreference {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{
			Error:     string(stdErr.Code),
			Message:   stdErr.Message,
			Retryable: stdErr.Retryable,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL",
		Message: "internal server error",
	})
}

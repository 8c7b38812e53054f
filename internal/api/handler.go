package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akunbaitpro/OpenForgeAI/internal/store"
	"github.com/akunbaitpro/OpenForgeAI/internal/upstream"
	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// NewsProvider is what the handler needs from the service layer.
type NewsProvider interface {
	News(ctx context.Context, feedType, fromDate, toDate string) ([]models.NewsItem, error)
}

type Handler struct {
	svc  NewsProvider
	subs store.SubmissionStore
}

func NewHandler(svc NewsProvider, subs store.SubmissionStore) *Handler {
	return &Handler{svc: svc, subs: subs}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/news/:feedType", h.News)
		api.GET("/health", h.Health)
		api.POST("/feed-requests", h.CreateFeedRequest)
		api.POST("/feedback", h.CreateFeedback)
	}
}

// News: GET /api/news/:feedType?from_date=YYYY-MM-DD&to_date=YYYY-MM-DD
// The feed type is forwarded upstream verbatim; both date bounds are
// required and validated before any upstream call happens.
func (h *Handler) News(c *gin.Context) {
	feedType := c.Param("feedType")
	fromDate := c.Query("from_date")
	toDate := c.Query("to_date")

	if fromDate == "" || toDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameters: from_date and to_date"})
		return
	}

	items, err := h.svc.News(c.Request.Context(), feedType, fromDate, toDate)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{
				"error":   "API error: " + apiErr.Error(),
				"details": rawOrString(apiErr.Body),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	if items == nil {
		items = []models.NewsItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Health: GET /api/health. Liveness only; upstream reachability is
// deliberately not checked.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateFeedRequest: POST /api/feed-requests
func (h *Handler) CreateFeedRequest(c *gin.Context) {
	var payload struct {
		Topic       string `json:"topic"`
		Description string `json:"description"`
		Email       string `json:"email"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}
	if payload.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing topic"})
		return
	}

	fr := &store.FeedRequest{
		ID:          uuid.New().String(),
		Topic:       payload.Topic,
		Description: payload.Description,
		Email:       payload.Email,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.subs.SaveFeedRequest(c.Request.Context(), fr); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": fr.ID})
}

// CreateFeedback: POST /api/feedback
// The reason may be empty; submitting the dialog with no text is allowed.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var payload struct {
		ItemID string `json:"item_id"`
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}
	if payload.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing item_id"})
		return
	}

	fb := &store.Feedback{
		ID:        uuid.New().String(),
		ItemID:    payload.ItemID,
		Reason:    payload.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.subs.SaveFeedback(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": fb.ID})
}

// rawOrString keeps JSON upstream bodies as structured details and falls
// back to a plain string otherwise.
func rawOrString(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

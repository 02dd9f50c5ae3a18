// Package handler provides the HTTP handlers for the gifts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftlink_backend/internal/feature/gifts/domain/entity"
	"giftlink_backend/internal/feature/gifts/transport/http/dto"
	"giftlink_backend/internal/feature/gifts/usecase"
	jwtmw "giftlink_backend/internal/platform/jwt"
)

// GiftUsecase defines the gift listing operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type GiftUsecase interface {
	ListGifts(ctx context.Context) ([]entity.Gift, error)
	GetGift(ctx context.Context, id uint) (*entity.Gift, error)
	SearchGifts(ctx context.Context, q usecase.SearchQuery) ([]entity.Gift, error)
	PostGift(ctx context.Context, gift *entity.Gift, postedBy uint) (*entity.Gift, error)
}

// GiftHandler processes HTTP requests for gift listings.
type GiftHandler struct {
	gifts GiftUsecase
}

// NewGiftHandler creates a new GiftHandler with the usecase injected.
func NewGiftHandler(gifts GiftUsecase) *GiftHandler {
	return &GiftHandler{gifts: gifts}
}

// List returns all gift listings.
func (h *GiftHandler) List(c *gin.Context) {
	gifts, err := h.gifts.ListGifts(c.Request.Context())
	if err != nil {
		slog.Error("gift list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toItems(gifts))
}

// Get returns a single gift by its ID path parameter.
func (h *GiftHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gift id"})
		return
	}

	gift, err := h.gifts.GetGift(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrGiftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gift not found"})
			return
		}
		slog.Error("gift lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	item := dto.FromEntity(gift)
	c.JSON(http.StatusOK, item)
}

// Search returns the gifts matching the query parameters
// (name, category, condition, age_years).
func (h *GiftHandler) Search(c *gin.Context) {
	q := usecase.SearchQuery{
		Name:      c.Query("name"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
	}
	if raw := c.Query("age_years"); raw != "" {
		maxAge, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxAge < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid age_years"})
			return
		}
		q.MaxAgeYears = maxAge
	}

	gifts, err := h.gifts.SearchGifts(c.Request.Context(), q)
	if err != nil {
		slog.Error("gift search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toItems(gifts))
}

// Create posts a new gift on behalf of the authenticated user. The route is
// mounted behind the JWT middleware, which stores the caller's ID in the
// context.
func (h *GiftHandler) Create(c *gin.Context) {
	var req dto.CreateGiftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("gift create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postedBy := c.GetUint(jwtmw.ContextUserID)
	gift := &entity.Gift{
		Name:        req.Name,
		Category:    req.Category,
		Condition:   req.Condition,
		AgeYears:    req.AgeYears,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	created, err := h.gifts.PostGift(c.Request.Context(), gift, postedBy)
	if err != nil {
		slog.Error("gift create failed", "error", err, "posted_by", postedBy)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	slog.Info("gift posted", "id", created.ID, "posted_by", postedBy)
	item := dto.FromEntity(created)
	c.JSON(http.StatusCreated, item)
}

// toItems converts entities to their wire representation, keeping an empty
// slice (not null) for empty results.
func toItems(gifts []entity.Gift) []dto.GiftItem {
	out := make([]dto.GiftItem, 0, len(gifts))
	for i := range gifts {
		out = append(out, dto.FromEntity(&gifts[i]))
	}
	return out
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// userRateLimiter keeps one token bucket per user. Generation calls a
// paid upstream API, so the limit is deliberately tight.
type userRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newUserRateLimiter(perMinute, burst int) *userRateLimiter {
	return &userRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *userRateLimiter) allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = limiter
	}
	return limiter.Allow()
}

var generationLimiter = newUserRateLimiter(3, 2)

// RateLimitGeneration guards POST /api/recommendations.
func (h *Handlers) RateLimitGeneration() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if !generationLimiter.allow(userID) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many generation requests"})
			return
		}
		c.Next()
	}
}

// GenerateRecommendations serves POST /api/recommendations: runs a
// generation for the caller's stored profile, persists every returned
// item and responds with the new list.
func (h *Handlers) GenerateRecommendations(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	recommendations, err := h.recommender.GenerateForUser(ctx, user)
	if err != nil {
		slog.Default().Error("recommendation generation failed", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// ListRecommendations serves GET /api/recommendations, newest first.
func (h *Handlers) ListRecommendations(c *gin.Context) {
	userID := c.GetString("user_id")

	recommendations, err := h.store.GetUserRecommendations(userID)
	if err != nil {
		slog.Default().Error("list recommendations failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

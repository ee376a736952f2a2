package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hobbyconnect/server/internal/models"
	"github.com/hobbyconnect/server/internal/storage"

	"github.com/gin-gonic/gin"
)

type CreateMeetupRequest struct {
	Title           string    `json:"title" binding:"required,max=255"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Location        string    `json:"location" binding:"required,max=255"`
	MeetingTime     time.Time `json:"meetingTime" binding:"required"`
	MaxParticipants int       `json:"maxParticipants" binding:"required,min=1"`
}

// CreateMeetup persists the meetup and fires the nearby-district push
// in the background; a push failure never affects the response.
func (h *Handlers) CreateMeetup(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meetup := models.LightningMeetup{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		MeetingTime:     req.MeetingTime,
		MaxParticipants: req.MaxParticipants,
		OrganizerID:     userID,
	}
	if err := h.store.CreateMeetup(&meetup); err != nil {
		slog.Default().Error("create meetup failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meetup"})
		return
	}

	go func(m models.LightningMeetup) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		h.meetupNotifier.NotifyNearby(ctx, &m)
	}(meetup)

	c.JSON(http.StatusCreated, meetup)
}

func (h *Handlers) ListMeetups(c *gin.Context) {
	limit, offset := listParams(c)

	meetups, err := h.store.GetMeetups(limit, offset)
	if err != nil {
		slog.Default().Error("list meetups failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetups"})
		return
	}
	c.JSON(http.StatusOK, meetups)
}

func (h *Handlers) GetMeetup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	meetup, err := h.store.GetMeetup(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meetup not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetup"})
		return
	}
	c.JSON(http.StatusOK, meetup)
}

func (h *Handlers) JoinMeetup(c *gin.Context) {
	userID := c.GetString("user_id")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.JoinMeetup(id, userID); err != nil {
		writeMembershipError(c, err, "join meetup", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined meetup"})
}

func (h *Handlers) LeaveMeetup(c *gin.Context) {
	userID := c.GetString("user_id")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.LeaveMeetup(id, userID); err != nil {
		writeMembershipError(c, err, "leave meetup", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully left meetup"})
}

func (h *Handlers) ListUserMeetups(c *gin.Context) {
	userID := c.GetString("user_id")

	meetups, err := h.store.GetUserMeetups(userID)
	if err != nil {
		slog.Default().Error("list user meetups failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user meetups"})
		return
	}
	c.JSON(http.StatusOK, meetups)
}

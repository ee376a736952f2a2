package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hobbyconnect/server/internal/models"
	"github.com/hobbyconnect/server/internal/storage"

	"github.com/gin-gonic/gin"
)

type CreateCommunityRequest struct {
	Name             string   `json:"name" binding:"required,max=255"`
	Description      string   `json:"description"`
	Category         string   `json:"category" binding:"required,max=100"`
	MaxMembers       int      `json:"maxMembers" binding:"required,min=1"`
	MeetingFrequency string   `json:"meetingFrequency"`
	OpenChatLink     string   `json:"openChatLink"`
	Location         string   `json:"location"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

func (h *Handlers) CreateCommunity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	community := models.Community{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		MaxMembers:       req.MaxMembers,
		MeetingFrequency: req.MeetingFrequency,
		LeaderID:         userID,
		OpenChatLink:     req.OpenChatLink,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}
	if err := h.store.CreateCommunity(&community); err != nil {
		slog.Default().Error("create community failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create community"})
		return
	}

	c.JSON(http.StatusCreated, community)
}

func (h *Handlers) ListCommunities(c *gin.Context) {
	limit, offset := listParams(c)

	communities, err := h.store.GetCommunities(limit, offset)
	if err != nil {
		slog.Default().Error("list communities failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch communities"})
		return
	}
	c.JSON(http.StatusOK, communities)
}

func (h *Handlers) GetCommunity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	community, err := h.store.GetCommunity(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch community"})
		return
	}
	c.JSON(http.StatusOK, community)
}

// ListNearbyCommunities filters by the district token of the caller's
// stored location. A user with no extractable district gets an empty
// list, not an error.
func (h *Handlers) ListNearbyCommunities(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := listParams(c)

	user, err := h.store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	communities, err := h.store.GetCommunitiesNearby(user.Location, userID, limit, offset)
	if err != nil {
		slog.Default().Error("nearby communities failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby communities"})
		return
	}
	if communities == nil {
		communities = []models.Community{}
	}
	c.JSON(http.StatusOK, communities)
}

func (h *Handlers) JoinCommunity(c *gin.Context) {
	userID := c.GetString("user_id")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.JoinCommunity(id, userID); err != nil {
		writeMembershipError(c, err, "join community", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined community"})
}

func (h *Handlers) LeaveCommunity(c *gin.Context) {
	userID := c.GetString("user_id")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.LeaveCommunity(id, userID); err != nil {
		writeMembershipError(c, err, "leave community", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully left community"})
}

func (h *Handlers) ListUserCommunities(c *gin.Context) {
	userID := c.GetString("user_id")

	communities, err := h.store.GetUserCommunities(userID)
	if err != nil {
		slog.Default().Error("list user communities failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user communities"})
		return
	}
	c.JSON(http.StatusOK, communities)
}

// GetChatHistory serves GET /api/communities/:id/messages, the
// oldest-first snapshot clients load before listening on the socket.
func (h *Handlers) GetChatHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if _, err := h.store.GetCommunity(id); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat messages"})
		return
	}

	messages, err := h.store.GetChatMessages(id, limit)
	if err != nil {
		slog.Default().Error("chat history failed", "community_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func writeMembershipError(c *gin.Context, err error, op, userID string) {
	switch {
	case storage.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, storage.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"error": "Already joined"})
	case errors.Is(err, storage.ErrNotJoined):
		c.JSON(http.StatusConflict, gin.H{"error": "Not a member"})
	case errors.Is(err, storage.ErrCapacityFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Capacity reached"})
	case errors.Is(err, storage.ErrLeaderCannotLeave):
		c.JSON(http.StatusConflict, gin.H{"error": "Leader cannot leave own community"})
	default:
		slog.Default().Error(op+" failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func listParams(c *gin.Context) (limit, offset int) {
	limit = defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

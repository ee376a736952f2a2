package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hobbyconnect/server/internal/models"
	"github.com/hobbyconnect/server/internal/storage"

	"github.com/gin-gonic/gin"
)

type ProfileUpdateRequest struct {
	FirstName             *string   `json:"firstName"`
	LastName              *string   `json:"lastName"`
	ProfileImageURL       *string   `json:"profileImageUrl"`
	Gender                *string   `json:"gender"`
	Age                   *int      `json:"age" binding:"omitempty,min=1,max=120"`
	MBTI                  *string   `json:"mbti"`
	Budget                *string   `json:"budget"`
	TimeAvailability      *string   `json:"timeAvailability"`
	NetworkingPreference  *bool     `json:"networkingPreference"`
	UniqueHobbyPreference *bool     `json:"uniqueHobbyPreference"`
	BlacklistedHobbies    *[]string `json:"blacklistedHobbies"`
	WhitelistedHobbies    *[]string `json:"whitelistedHobbies"`
	Bio                   *string   `json:"bio"`
	Location              *string   `json:"location"`
	Latitude              *float64  `json:"latitude"`
	Longitude             *float64  `json:"longitude"`
}

// UpdateProfile serves PATCH /api/users/profile. Absent fields are
// left untouched.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := storage.ProfileUpdate{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		ProfileImageURL:       req.ProfileImageURL,
		Gender:                req.Gender,
		Age:                   req.Age,
		MBTI:                  req.MBTI,
		Budget:                req.Budget,
		TimeAvailability:      req.TimeAvailability,
		NetworkingPreference:  req.NetworkingPreference,
		UniqueHobbyPreference: req.UniqueHobbyPreference,
		Bio:                   req.Bio,
		Location:              req.Location,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
	}
	if req.BlacklistedHobbies != nil {
		list := models.StringList(*req.BlacklistedHobbies)
		patch.BlacklistedHobbies = &list
	}
	if req.WhitelistedHobbies != nil {
		list := models.StringList(*req.WhitelistedHobbies)
		patch.WhitelistedHobbies = &list
	}

	user, err := h.store.UpdateUserProfile(userID, patch)
	if err != nil {
		slog.Default().Error("profile update failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type FCMRegisterRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterFCMToken serves POST /api/fcm/register.
func (h *Handlers) RegisterFCMToken(c *gin.Context) {
	userID := c.GetString("user_id")

	var req FCMRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateUserFCMToken(userID, req.Token); err != nil {
		slog.Default().Error("fcm token update failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token registered"})
}

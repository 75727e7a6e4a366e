package controllers

import (
	"errors"
	"net/http"

	"github.com/cskyle2026/Diabetes/localization"
	"github.com/cskyle2026/Diabetes/models"
	"github.com/cskyle2026/Diabetes/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Sessions *services.SessionManager
	Hub      *services.RealtimeHub
}

type ProfileSetupInput struct {
	Age                int                      `json:"age" binding:"required"`
	Weight             float64                  `json:"weight"`
	Height             float64                  `json:"height"`
	Gender             string                   `json:"gender"`
	DietaryPreferences string                   `json:"dietary_preferences"`
	Conditions         []models.HealthCondition `json:"conditions"`
	Avatar             string                   `json:"avatar"`
}

// SetupProfile creates the health profile. An age below the minimum is a
// validation error: the screen does not change and no profile is created.
func (pc *ProfileController) SetupProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := pc.Sessions.Get(userID)

	var input ProfileSetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := models.NewHealthProfile(
		input.Age, input.Weight, input.Height,
		input.Gender, input.DietaryPreferences,
		input.Conditions, sess.Language(), input.Avatar,
	)
	if err != nil {
		if errors.Is(err, models.ErrUnderage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": localization.Translate(sess.Language(), "error_min_age")})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.SetProfile(profile)
	sess.SetScreen(models.ScreenUserProfile)
	pc.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventScreenChanged, Screen: models.ScreenUserProfile.String()})

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"screen":  models.ScreenUserProfile.String(),
	})
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := pc.Sessions.Get(userID)

	profile := sess.Profile()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile setup incomplete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"language": sess.Language(),
	})
}

type LanguageInput struct {
	Language models.LanguageCode `json:"language" binding:"required"`
}

// UpdateLanguage switches the active language from settings and writes it
// back into the profile so the two stay consistent.
func (pc *ProfileController) UpdateLanguage(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := pc.Sessions.Get(userID)

	var input LanguageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Language.Supported() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language code"})
		return
	}

	sess.SetLanguage(input.Language)
	c.JSON(http.StatusOK, gin.H{
		"language":     input.Language,
		"display_name": input.Language.DisplayName(),
	})
}

// ListLanguages returns the supported codes with display names for the
// settings picker.
func (pc *ProfileController) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, models.Languages)
}

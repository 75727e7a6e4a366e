package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cskyle2026/Diabetes/localization"
	"github.com/cskyle2026/Diabetes/models"
	"github.com/cskyle2026/Diabetes/services"
	"github.com/cskyle2026/Diabetes/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth     *services.AuthService
	Sessions *services.SessionManager
	Hub      *services.RealtimeHub
}

type RegisterInput struct {
	FullName        string              `json:"full_name" binding:"required"`
	Email           string              `json:"email" binding:"required,email"`
	Password        string              `json:"password" binding:"required"`
	ConfirmPassword string              `json:"confirm_password" binding:"required"`
	Language        models.LanguageCode `json:"language"`
}

// Register validates the form, creates the account and lands the new
// session on profile setup. The welcome email is decorative; its failure
// only logs.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := input.Language
	if !lang.Supported() {
		lang = models.DefaultLanguage
	}

	if err := utils.ValidateRegistrationPassword(input.Password, input.ConfirmPassword); err != nil {
		key := "error_password_complexity"
		if errors.Is(err, utils.ErrPasswordMismatch) {
			key = "error_password_mismatch"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": localization.Translate(lang, key)})
		return
	}

	user, err := ac.Auth.Register(input.Email, input.Password, input.FullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := utils.SendWelcomeEmail(user.Email, user.FullName, lang); err != nil {
		log.Printf("welcome email failed: %v", err)
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	sess := ac.Sessions.Get(user.ID)
	sess.SetLanguage(lang)
	sess.SetScreen(models.ScreenProfileSetup)
	ac.Hub.Broadcast(user.ID, services.SessionEvent{Type: services.EventScreenChanged, Screen: models.ScreenProfileSetup.String()})

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"screen": models.ScreenProfileSetup.String(),
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login issues a token and moves the session to the camera screen.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ac.Auth.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	sess := ac.Sessions.Get(user.ID)
	sess.SetScreen(models.ScreenCamera)
	ac.Hub.Broadcast(user.ID, services.SessionEvent{Type: services.EventScreenChanged, Screen: models.ScreenCamera.String()})

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"screen": models.ScreenCamera.String(),
	})
}

// Logout ends the session; profile, capture and result are discarded.
func (ac *AuthController) Logout(c *gin.Context) {
	userID := c.GetUint("userID")
	ac.Sessions.End(userID)
	c.JSON(http.StatusOK, gin.H{"screen": models.ScreenLogin.String()})
}

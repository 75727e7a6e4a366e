package controllers

import (
	"net/http"

	"github.com/cskyle2026/Diabetes/models"
	"github.com/cskyle2026/Diabetes/services"

	"github.com/gin-gonic/gin"
)

type CameraController struct {
	Sessions *services.SessionManager
	Hub      *services.RealtimeHub
}

type CaptureInput struct {
	// Image is the data-URI encoded photo from the capture device or
	// file picker. No size or format validation happens here; the
	// analysis service decodes the URI itself.
	Image string `json:"image" binding:"required"`
}

// Capture stores the photo in the session and moves to the result screen.
func (cc *CameraController) Capture(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := cc.Sessions.Get(userID)

	var input CaptureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	captureID := sess.SetCapturedImage(input.Image)
	sess.SetScreen(models.ScreenResult)
	cc.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventScreenChanged, Screen: models.ScreenResult.String()})

	c.JSON(http.StatusOK, gin.H{
		"capture_id": captureID,
		"screen":     models.ScreenResult.String(),
	})
}

// Retake drops the capture and its result together and returns to the
// camera. This is the only remediation after an analysis failure.
func (cc *CameraController) Retake(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := cc.Sessions.Get(userID)

	sess.ClearCapture()
	sess.SetScreen(models.ScreenCamera)
	cc.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventScreenChanged, Screen: models.ScreenCamera.String()})

	c.JSON(http.StatusOK, gin.H{"screen": models.ScreenCamera.String()})
}

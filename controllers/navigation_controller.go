package controllers

import (
	"net/http"

	"github.com/cskyle2026/Diabetes/models"
	"github.com/cskyle2026/Diabetes/services"

	"github.com/gin-gonic/gin"
)

type NavigationController struct {
	Sessions *services.SessionManager
	Hub      *services.RealtimeHub
}

type NavigateInput struct {
	Screen string `json:"screen" binding:"required"`
}

// Navigate overwrites the active screen. Every screen in the closed set
// is reachable from every other; the previous screen leaves nothing
// behind.
func (nc *NavigationController) Navigate(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := nc.Sessions.Get(userID)

	var input NavigateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	screen, ok := models.ParseScreen(input.Screen)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown screen"})
		return
	}

	sess.SetScreen(screen)
	nc.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventScreenChanged, Screen: screen.String()})

	c.JSON(http.StatusOK, gin.H{"screen": screen.String()})
}

// CurrentScreen reports the active screen for rendering.
func (nc *NavigationController) CurrentScreen(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := nc.Sessions.Get(userID)
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen().String()})
}

package controllers

import (
	"net/http"

	"github.com/cskyle2026/Diabetes/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
}

// GetProgress returns today's consumed totals against the goals. Loading
// performs the lazy day-boundary reset, so a stale date stamp yields the
// defaults.
func (pc *ProgressController) GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")
	progress := pc.Progress.Load(userID, services.Today())
	c.JSON(http.StatusOK, progress)
}

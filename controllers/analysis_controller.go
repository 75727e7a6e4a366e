package controllers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/cskyle2026/Diabetes/localization"
	"github.com/cskyle2026/Diabetes/models"
	"github.com/cskyle2026/Diabetes/services"
	"github.com/cskyle2026/Diabetes/utils"

	"github.com/gin-gonic/gin"
)

// FoodAnalyzer is the primary analysis contract.
type FoodAnalyzer interface {
	AnalyzeFood(ctx context.Context, imageDataURI string, profile *models.HealthProfile, lang models.LanguageCode) (*models.AnalysisResult, error)
}

// SpeechSynthesizer is the secondary, decorative contract.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

type AnalysisController struct {
	Sessions *services.SessionManager
	Analyzer FoodAnalyzer
	Speech   SpeechSynthesizer
	Progress *services.ProgressService
	Hub      *services.RealtimeHub
}

// Analyze runs the analysis contract for the session's capture. Exactly
// one analysis may be in flight per capture, and a completion arriving
// after the user replaced the capture is discarded.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := ac.Sessions.Get(userID)
	lang := sess.Language()

	profile := sess.Profile()
	if profile == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "profile setup incomplete"})
		return
	}

	image, captureID, err := sess.BeginAnalysis()
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, services.ErrNoCapture) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ac.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventAnalyzing})

	result, err := ac.Analyzer.AnalyzeFood(c.Request.Context(), image, profile, lang)
	if err != nil {
		sess.FailAnalysis(captureID)
		ac.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventAnalysisFailed})
		c.JSON(http.StatusBadGateway, gin.H{"error": localization.Translate(lang, "error_message")})
		return
	}

	if !sess.FinishAnalysis(captureID, result) {
		// The user retook or discarded the photo while this ran.
		c.JSON(http.StatusConflict, gin.H{"error": "capture no longer current"})
		return
	}
	ac.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventAnalysisReady, Payload: result})

	response := gin.H{
		"result":           result,
		"show_substitutes": result.ShowSubstitutes(),
	}

	// Speech narration is decorative: synthesis or decode failures only
	// log and never disturb the result.
	narration := fmt.Sprintf("%s. %s",
		localization.Translate(lang, "alert_"+string(result.AlertLevel)),
		result.Explanation,
	)
	if audio, err := ac.Speech.Synthesize(c.Request.Context(), narration); err != nil {
		log.Printf("speech synthesis failed: %v", err)
	} else if audio != "" {
		if wav, err := utils.PCMBase64ToWAV(audio); err != nil {
			log.Printf("speech decode failed: %v", err)
		} else {
			response["audio"] = base64.StdEncoding.EncodeToString(wav)
			response["audio_format"] = "audio/wav"
		}
	}

	c.JSON(http.StatusOK, response)
}

// Save confirms the result into the daily progress: nutrient strings are
// parsed by leading number, the day's totals are updated and persisted,
// and the session returns to the user profile screen.
func (ac *AnalysisController) Save(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := ac.Sessions.Get(userID)

	result, err := sess.ConfirmResult()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	delta := utils.DeltaFromNutrition(result.Nutrition)
	progress, err := ac.Progress.AddFood(userID, delta, services.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess.SetScreen(models.ScreenUserProfile)
	ac.Hub.Broadcast(userID, services.SessionEvent{Type: services.EventProgressSaved, Screen: models.ScreenUserProfile.String(), Payload: progress})

	c.JSON(http.StatusOK, gin.H{
		"progress": progress,
		"screen":   models.ScreenUserProfile.String(),
	})
}

// Result re-reads the stored result for rendering, without triggering a
// new analysis.
func (ac *AnalysisController) Result(c *gin.Context) {
	userID := c.GetUint("userID")
	sess := ac.Sessions.Get(userID)

	result := sess.Result()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis data available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":           result,
		"show_substitutes": result.ShowSubstitutes(),
	})
}

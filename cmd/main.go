package main

import (
	"context"
	"log"

	"github.com/cskyle2026/Diabetes/config"
	"github.com/cskyle2026/Diabetes/controllers"
	"github.com/cskyle2026/Diabetes/routes"
	"github.com/cskyle2026/Diabetes/services"
	"github.com/cskyle2026/Diabetes/utils"
)

func main() {
	config.InitDB()
	utils.InitSES()

	analyzer, err := services.NewAnalysisService(context.Background())
	if err != nil {
		log.Fatalf("analysis service init failed: %v", err)
	}
	defer analyzer.Close()

	sessions := services.NewSessionManager()
	hub := services.NewRealtimeHub()
	progress := services.NewProgressService(services.NewGormStore(config.DB))
	auth := services.NewAuthService(config.DB)
	speech := services.NewSpeechService()

	r := routes.SetupRouter(routes.Controllers{
		Auth:       &controllers.AuthController{Auth: auth, Sessions: sessions, Hub: hub},
		Profile:    &controllers.ProfileController{Sessions: sessions, Hub: hub},
		Navigation: &controllers.NavigationController{Sessions: sessions, Hub: hub},
		Camera:     &controllers.CameraController{Sessions: sessions, Hub: hub},
		Analysis:   &controllers.AnalysisController{Sessions: sessions, Analyzer: analyzer, Speech: speech, Progress: progress, Hub: hub},
		Progress:   &controllers.ProgressController{Progress: progress},
		Realtime:   &controllers.RealtimeController{Hub: hub},
	})
	r.Run(":8080")
}

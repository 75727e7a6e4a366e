package routes

import (
	"github.com/cskyle2026/Diabetes/controllers"
	"github.com/cskyle2026/Diabetes/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the wired handler set for SetupRouter.
type Controllers struct {
	Auth       *controllers.AuthController
	Profile    *controllers.ProfileController
	Navigation *controllers.NavigationController
	Camera     *controllers.CameraController
	Analysis   *controllers.AnalysisController
	Progress   *controllers.ProgressController
	Realtime   *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// Session-scoped app routes
	app := r.Group("/app")
	app.Use(middlewares.AuthMiddleware())
	{
		app.POST("/logout", ctrl.Auth.Logout)

		app.GET("/screen", ctrl.Navigation.CurrentScreen)
		app.PUT("/screen", ctrl.Navigation.Navigate)

		app.POST("/profile", ctrl.Profile.SetupProfile)
		app.GET("/profile", ctrl.Profile.GetProfile)
		app.GET("/settings/languages", ctrl.Profile.ListLanguages)
		app.PUT("/settings/language", ctrl.Profile.UpdateLanguage)

		app.POST("/camera/capture", ctrl.Camera.Capture)
		app.POST("/camera/retake", ctrl.Camera.Retake)

		app.POST("/analysis", ctrl.Analysis.Analyze)
		app.GET("/analysis", ctrl.Analysis.Result)
		app.POST("/analysis/save", ctrl.Analysis.Save)

		app.GET("/progress", ctrl.Progress.GetProgress)

		app.GET("/ws", ctrl.Realtime.Stream)
	}

	return r
}

package routes

import (
	"github.com/msherazsadiq/Healthify/config"
	"github.com/msherazsadiq/Healthify/controllers"
	"github.com/msherazsadiq/Healthify/middlewares"
	"github.com/msherazsadiq/Healthify/services"
	"github.com/msherazsadiq/Healthify/store"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	st := store.NewGormStore(config.DB)
	clock := services.SystemClock()
	hub := services.NewRealtimeHub()

	goalSvc := services.NewGoalService(st)
	dashSvc := services.NewDashboardService(st, goalSvc, clock)
	entrySvc := services.NewEntryService(st, clock, hub, dashSvc)
	historySvc := services.NewHistoryService(st)
	reminderSvc := services.NewReminderService(st)

	entryCtl := controllers.NewEntryController(entrySvc)
	dashCtl := controllers.NewDashboardController(dashSvc)
	historyCtl := controllers.NewHistoryController(historySvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	reminderCtl := controllers.NewReminderController(reminderSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.POST("/entries/steps", entryCtl.LogSteps)
		user.POST("/entries/water", entryCtl.LogWater)
		user.POST("/entries/sleep", entryCtl.LogSleep)
		user.POST("/entries/mood", entryCtl.LogMood)
		user.POST("/entries/weight", entryCtl.LogWeight)

		user.GET("/dashboard", dashCtl.GetDashboard)
		user.GET("/history", historyCtl.GetRange)

		user.GET("/goals", goalCtl.GetGoals)
		user.PUT("/goals/steps", goalCtl.UpdateStepGoal)
		user.PUT("/goals/water", goalCtl.UpdateWaterGoal)

		user.GET("/reminder", reminderCtl.GetReminder)
		user.PUT("/reminder", reminderCtl.UpdateReminder)

		user.GET("/realtime", realtimeCtl.DashboardWS)
	}

	return r
}

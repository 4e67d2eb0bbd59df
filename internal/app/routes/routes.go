package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/controllers"
	"github.com/rao756/utms-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	busController *controllers.BusController,
	driverController *controllers.DriverController,
	routeController *controllers.RouteController,
	scheduleController *controllers.ScheduleController,
	notificationController *controllers.NotificationController,
	userController *controllers.UserController,
	challanController *controllers.ChallanController,
	adminChallanController *controllers.AdminChallanController,
	uploadedChallanController *controllers.UploadedChallanController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/admin/login", authController.AdminLogin)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Timetable data every logged-in student can read
		authenticated.GET("/buses", busController.GetBuses)
		authenticated.GET("/drivers", driverController.GetDrivers)
		authenticated.GET("/routes", routeController.GetRoutes)
		authenticated.GET("/schedules", scheduleController.GetSchedules)
		authenticated.GET("/notifications", notificationController.GetNotifications)

		// Challan issuance and retrieval
		challans := authenticated.Group("/challans")
		{
			challans.POST("", challanController.IssueChallan)
			challans.POST("/:rollNo", challanController.IssueChallanForRollNo)
			challans.GET("/:rollNo", challanController.GetChallanByRollNo)
			challans.PATCH("/:rollNo", challanController.MarkDownloaded)
			challans.GET("/:rollNo/pdf", challanController.DownloadChallanPDF)
		}

		// The configuration read seeds defaults, so students hitting the
		// fee page always see issuance parameters
		authenticated.GET("/admin-challan", adminChallanController.GetConfig)

		// Proof-of-payment upload by the student
		authenticated.POST("/uploaded-challans", uploadedChallanController.Upload)

		// --- Admin-only routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.POST("/admins", authController.RegisterAdmin)
			admin.POST("/admins/:id", authController.PromoteAdmin)

			admin.POST("/buses", busController.CreateBus)
			admin.PUT("/buses/:id", busController.UpdateBus)
			admin.DELETE("/buses/:id", busController.DeleteBus)

			admin.POST("/drivers", driverController.CreateDriver)
			admin.PUT("/drivers/:id", driverController.UpdateDriver)
			admin.DELETE("/drivers/:id", driverController.DeleteDriver)

			admin.POST("/routes", routeController.CreateRoute)
			admin.PUT("/routes/:id", routeController.UpdateRoute)
			admin.DELETE("/routes/:id", routeController.DeleteRoute)

			admin.POST("/schedules", scheduleController.CreateSchedule)
			admin.PATCH("/schedules/:scheduleId", scheduleController.UpdateSchedule)
			admin.DELETE("/schedules/:scheduleId", scheduleController.DeleteSchedule)

			admin.POST("/notifications", notificationController.CreateNotification)
			admin.PUT("/notifications/:id", notificationController.UpdateNotification)
			admin.DELETE("/notifications/:id", notificationController.DeleteNotification)

			admin.GET("/users", userController.GetUsers)
			admin.GET("/users/:id", userController.GetUserByID)
			admin.PATCH("/users/:id/approve", userController.ApproveUser)
			admin.DELETE("/users/:id", userController.DeleteUser)

			admin.GET("/challans", challanController.GetChallans)

			admin.POST("/admin-challan", adminChallanController.CreateConfig)
			admin.PUT("/admin-challan", adminChallanController.UpdateConfig)
			admin.PUT("/admin-challan/:id", adminChallanController.UpdateConfigByID)

			admin.GET("/uploaded-challans", uploadedChallanController.GetUploads)
			admin.PUT("/uploaded-challans/:id", uploadedChallanController.ReviewUpload)
			admin.DELETE("/uploaded-challans/:id", uploadedChallanController.DeleteUpload)
		}
	}
}

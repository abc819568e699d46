package routes

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/hostelhive/hostelhive/internal/app/controllers"
	"github.com/hostelhive/hostelhive/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	dashboardController *controllers.DashboardController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.PUT("/:id/fee-status", studentController.SetFeeStatus)
	}

	// Room routes
	rooms := v1.Group("/rooms")
	{
		rooms.GET("", roomController.GetAllRooms)
		rooms.GET("/available", roomController.GetAvailableRooms)
		rooms.PUT("/:roomNumber/maintenance", roomController.SetMaintenance)
	}

	// Dashboard route
	v1.GET("/dashboard", dashboardController.GetMetrics)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Process-local metrics published through expvar
	router.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tasktrackr/controllers"
	"tasktrackr/middleware"
	"tasktrackr/repository"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)

	taskController := controllers.TaskController{Tasks: taskRepo}
	legacyController := controllers.LegacyController{Tasks: taskRepo}
	authController := controllers.AuthController{Users: userRepo}

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	v1 := r.Group("/api/v1")
	v1.GET("/tasks/", legacyController.ListTasks)
	v1.GET("/tasks/:task_id", legacyController.GetTask)
	v1.POST("/add_task", legacyController.AddTask)

	v2 := r.Group("/api/v2")
	v2.GET("/tasks/", taskController.ListTasks)
	v2.GET("/tasks/:task_id", taskController.GetTask)

	gated := v2.Group("/", middleware.RequireCredentials(userRepo))
	gated.POST("/tasks/", taskController.CreateTask)
	gated.PUT("/tasks/:task_id", taskController.UpdateTask)
	gated.DELETE("/tasks/:task_id", taskController.DeleteTask)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"status":            "error",
			"error description": "GET request not allowed here",
		})
	})

	return r
}

// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"JobOrganizer-backend/internal/controller"
	"JobOrganizer-backend/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	jc := controller.NewJobController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jc.GetJobs)
			jobs.POST("", jc.CreateJob)
			jobs.POST("/import", jc.ImportJobs)
			jobs.GET("/:id", jc.GetJob)
			jobs.PATCH("/:id", jc.UpdateJob)
			jobs.DELETE("/:id", jc.DeleteJob)
			jobs.POST("/:id/responses", jc.CreateJobResponse)
		}

		api.GET("/stats", jc.GetStats)
	}

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}

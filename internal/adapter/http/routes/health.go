package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", healthCheck)
	// Also exposed unversioned for load balancer probes.
	router.GET("/health", healthCheck)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

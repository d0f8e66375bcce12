package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logger "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Logger"
	interfaces "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Repository/Interfaces"
)

// HealthController handles health requests
type HealthController struct {
	readingRepo interfaces.ReadingRepository
	logger      *logger.Logger
}

// NewHealthController creates a new health controller
func NewHealthController(readingRepo interfaces.ReadingRepository, logger *logger.Logger) *HealthController {
	return &HealthController{
		readingRepo: readingRepo,
		logger:      logger,
	}
}

// RegisterRoutes registers the health routes with Gin
func (c *HealthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/health/live", c.HealthLive)
	router.GET("/health/ready", c.HealthReady)
}

func (c *HealthController) HealthLive(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (c *HealthController) HealthReady(ctx *gin.Context) {
	if err := c.readingRepo.Ping(ctx); err != nil {
		c.logger.ErrorWithError(err, "Readiness check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"store":  false,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"store":  true,
	})
}

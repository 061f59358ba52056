package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pss-admin/database"
	"gorm.io/gorm"
)

const (
	serviceName    = "pss-admin"
	serviceVersion = "1.0.0"
)

// HealthCheck reports the API status including database reachability
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":    "ok",
			"service":   serviceName,
			"version":   serviceVersion,
			"timestamp": time.Now().Format(time.RFC3339),
		}

		if err := database.Ping(c.Request.Context(), db); err != nil {
			body["status"] = "degraded"
			body["database"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}

		body["database"] = "ok"
		c.JSON(http.StatusOK, body)
	}
}

// Root answers the bare service probe
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	})
}

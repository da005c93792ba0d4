// controllers/health.go
package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController serves the banner and store-connectivity diagnostics.
type HealthController struct {
	DB *gorm.DB
}

// Root confirms the API is up
func (ctl *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Business Ops Dashboard API running"})
}

// TestDatabase reports store connectivity for quick diagnostics
func (ctl *HealthController) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "Running",
		"database":          "Not Available",
		"database_url":      "Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	sqlDB, err := ctl.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		response["database"] = "Error: " + msg
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "Connected & Working"
	response["connection_status"] = "Connected"
	if os.Getenv("DB_URL") != "" {
		response["database_url"] = "Set"
	}

	if tables, err := ctl.DB.Migrator().GetTables(); err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		response["collections"] = tables
	}

	c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/config"
	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
)

type DiagnosticHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewDiagnosticHandler(db *gorm.DB, cfg *config.Config) *DiagnosticHandler {
	return &DiagnosticHandler{db: db, cfg: cfg}
}

// Test godoc
// @Summary Connectivity probe
// @Description Reports per-table existence and whether the store configuration is present
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *DiagnosticHandler) Test(c *gin.Context) {
	tables := gin.H{}
	for _, name := range []string{"brands", "campaigns", "campaign_influencers"} {
		exists, err := repository.TableExists(h.db, name)
		entry := gin.H{"exists": exists, "error": nil}
		if err != nil {
			entry["error"] = err.Error()
		}
		tables[name] = entry
	}

	present := func(set bool) string {
		if set {
			return "set"
		}
		return "not set"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"connection": "working",
		"tables":     tables,
		"environment": gin.H{
			"database": present(h.cfg.DB.IsSet()),
			"webhook":  present(h.cfg.MetricsWebhookURL != ""),
		},
	})
}

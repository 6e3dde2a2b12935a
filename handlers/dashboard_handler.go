// handlers/dashboard_handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"erpdash/config"
	"erpdash/models"
	"erpdash/services"
	"erpdash/store"
)

// Dashboard is the thin HTTP adapter over the query façade and the
// refresh trigger. It shapes JSON and maps error conditions to status
// codes; all real work happens in the services layer.
type Dashboard struct {
	query     *services.Query
	refresher *services.Refresher
	reports   config.ReportsConfig
	log       *zap.Logger
}

func NewDashboard(query *services.Query, refresher *services.Refresher, reports config.ReportsConfig, log *zap.Logger) *Dashboard {
	return &Dashboard{
		query:     query,
		refresher: refresher,
		reports:   reports,
		log:       log,
	}
}

// Register mounts all routes on the router.
func (h *Dashboard) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/summary", h.GetSummary)
	api.GET("/department/:name", h.GetDepartment)
	api.POST("/refresh", h.TriggerRefresh)
	api.GET("/download/:report_type", h.DownloadReport)

	r.GET("/health", h.GetHealth)
}

// GetSummary serves the derived summary for the current snapshot.
func (h *Dashboard) GetSummary(c *gin.Context) {
	summary, err := h.query.Summary()
	if err != nil {
		h.respondNoData(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDepartment serves one dataset by department name.
func (h *Dashboard) GetDepartment(c *gin.Context) {
	kind, err := models.ParseKind(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department"})
		return
	}

	resp, err := h.query.Dataset(kind)
	if err != nil {
		h.respondNoData(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TriggerRefresh kicks off an on-demand refresh without blocking the
// request. When a cycle is already running the trigger is a documented
// no-op, not an error; callers poll the snapshot timestamp for the
// outcome.
func (h *Dashboard) TriggerRefresh(c *gin.Context) {
	if h.refresher.Running() {
		c.JSON(http.StatusAccepted, models.RefreshResponse{Status: "Refresh already in progress"})
		return
	}
	go h.refresher.TryRefresh(context.Background())
	c.JSON(http.StatusOK, models.RefreshResponse{Status: "Refresh initiated"})
}

// DownloadReport serves the latest artifact of the requested type as an
// attachment. Valid types: "excel" or "<department>_csv".
func (h *Dashboard) DownloadReport(c *gin.Context) {
	path, ok := h.latestArtifactPath(c.Param("report_type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report type"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// GetHealth reports process health; available before the first refresh.
func (h *Dashboard) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.query.Health())
}

func (h *Dashboard) latestArtifactPath(reportType string) (string, bool) {
	if reportType == "excel" {
		return filepath.Join(h.reports.Dir, "daily_report.xlsx"), true
	}
	name, ok := strings.CutSuffix(reportType, "_csv")
	if !ok {
		return "", false
	}
	kind, err := models.ParseKind(name)
	if err != nil {
		return "", false
	}
	return filepath.Join(h.reports.CSVDir, kind.FileBase()+".csv"), true
}

func (h *Dashboard) respondNoData(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNoData) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data available"})
		return
	}
	h.log.Error("query failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

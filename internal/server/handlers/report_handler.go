package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentalhub/backoffice/internal/domain/models"
	"github.com/rentalhub/backoffice/internal/repository/mongodb"
	"github.com/rentalhub/backoffice/internal/service/reporting"
)

const dateLayout = "2006-01-02"

// ReportHandler serves generated reports and archived snapshots.
type ReportHandler struct {
	runner  *reporting.Runner
	archive mongodb.Repository
	logger  *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(runner *reporting.Runner, archive mongodb.Repository, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{runner: runner, archive: archive, logger: logger}
}

// Generate runs one report for the requested type and window.
func (h *ReportHandler) Generate(c *gin.Context) {
	reportType, err := models.ParseReportType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := reporting.ParseRangeMode(c.DefaultQuery("range", string(reporting.Range30Days)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := reporting.ReportRequest{
		Type: reportType,
		Mode: mode,
		Now:  time.Now().UTC(),
	}

	if mode == reporting.RangeCustom {
		req.CustomStart, err = time.Parse(dateLayout, c.Query("start"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be a YYYY-MM-DD date"})
			return
		}
		req.CustomEnd, err = time.Parse(dateLayout, c.Query("end"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be a YYYY-MM-DD date"})
			return
		}
	}

	report, err := h.runner.Run(c.Request.Context(), req)
	switch {
	case errors.Is(err, reporting.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, reporting.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": "report request superseded by a newer one"})
		return
	case err != nil:
		h.logger.Error("failed generating report",
			zap.String("type", string(reportType)), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load report data, please retry"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Snapshots lists the most recent archived report snapshots.
func (h *ReportHandler) Snapshots(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 || limit > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
		return
	}

	snapshots, err := h.archive.RecentSnapshots(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed listing snapshots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list snapshots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

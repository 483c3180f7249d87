package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rentalhub/backoffice/internal/config"
	"github.com/rentalhub/backoffice/internal/domain/models"
	"github.com/rentalhub/backoffice/internal/repository/mongodb"
	"github.com/rentalhub/backoffice/internal/repository/sheets"
	"github.com/rentalhub/backoffice/internal/service/reporting"
)

// Scheduler manages the periodic report snapshot job.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	archive      mongodb.Repository
	exporter     sheets.Exporter // nil when the sheets sink is not configured
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, archive mongodb.Repository, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", cfg.Timezone))
		location = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		archive:      archive,
		exporter:     exporter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.snapshotReports)
	if err != nil {
		s.logger.Error("failed to schedule report snapshots", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// snapshotReports generates trailing-30-day snapshots of every report type,
// archives them and exports summary rows. One failing report type does not
// abort the others.
func (s *Scheduler) snapshotReports() {
	s.logger.Info("generating report snapshots")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, reportType := range models.AllReportTypes() {
		report, err := s.reportingSvc.Run(ctx, reporting.ReportRequest{
			Type: reportType,
			Mode: reporting.Range30Days,
		})
		if err != nil {
			s.logger.Error("failed to generate report snapshot",
				zap.String("type", string(reportType)), zap.Error(err))
			continue
		}

		snapshot := models.SnapshotOf(*report)

		if err := s.archive.SaveSnapshot(ctx, snapshot); err != nil {
			s.logger.Error("failed to archive report snapshot",
				zap.String("type", string(reportType)), zap.Error(err))
			continue
		}

		if s.exporter != nil {
			if err := s.exporter.AppendSummary(ctx, snapshot); err != nil {
				s.logger.Error("failed to export report snapshot",
					zap.String("type", string(reportType)), zap.Error(err))
				continue
			}
		}

		s.logger.Info("report snapshot stored", zap.String("type", string(reportType)))
	}
}

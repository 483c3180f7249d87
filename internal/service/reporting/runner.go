package reporting

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

// ErrSuperseded signals that a newer report request was issued while this one
// was in flight; its result has been discarded.
var ErrSuperseded = errors.New("report request superseded by a newer one")

// Runner enforces last-request-wins semantics over the orchestrator: when
// report parameters change before a prior run completes, the prior run's
// result is dropped on arrival rather than delivered. Each run is a full
// replacement of the previous one, never a merge.
type Runner struct {
	svc    *Service
	seq    atomic.Uint64
	logger *zap.Logger
}

// NewRunner wires a runner around the given orchestrator.
func NewRunner(svc *Service, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{svc: svc, logger: logger}
}

// Run executes the request and returns its report unless a newer request was
// issued in the meantime, in which case ErrSuperseded is returned and the
// computed result is discarded.
func (r *Runner) Run(ctx context.Context, req ReportRequest) (*models.Report, error) {
	id := r.seq.Add(1)

	report, err := r.svc.Run(ctx, req)

	if r.seq.Load() != id {
		r.logger.Debug("stale report result dropped",
			zap.String("type", string(req.Type)),
			zap.Uint64("request", id))
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

package job

import (
	"context"

	"go.uber.org/zap"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/repository"
)

// ReconcileJob repairs divergence between host decisions and participants.
// An accept writes both rows in one transaction, but rows written before
// that or touched by manual intervention can drift: an accepted candidate
// with no participant row would see the event in no list. The job inserts
// the missing participant rows.
type ReconcileJob struct {
	hostDecisionRepo repository.HostDecisionRepository
	participantRepo  repository.ParticipantRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewReconcileJob creates a new ReconcileJob instance
func NewReconcileJob(
	hostDecisionRepo repository.HostDecisionRepository,
	participantRepo repository.ParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ReconcileJob {
	return &ReconcileJob{
		hostDecisionRepo: hostDecisionRepo,
		participantRepo:  participantRepo,
		metrics:          m,
		logger:           logger,
	}
}

// Run executes one reconcile pass
func (j *ReconcileJob) Run() {
	ctx := context.Background()

	orphaned, err := j.hostDecisionRepo.FindAcceptedWithoutParticipant(ctx)
	if err != nil {
		j.logger.Error("Failed to find accepted candidates without participant rows", zap.Error(err))
		return
	}

	if len(orphaned) == 0 {
		return
	}

	j.logger.Info("Reconciling accepted candidates without participant rows",
		zap.Int("count", len(orphaned)),
	)

	repaired := 0
	for _, decision := range orphaned {
		participant := &domain.Participant{
			EventUUID: decision.EventUUID,
			UserID:    decision.UserID,
		}
		if err := j.participantRepo.Upsert(ctx, participant); err != nil {
			j.logger.Error("Failed to repair participant row",
				zap.String("eventUUID", decision.EventUUID.String()),
				zap.String("userID", decision.UserID.String()),
				zap.Error(err),
			)
			continue
		}
		repaired++
		j.metrics.IncrementParticipantReconciled()
	}

	j.logger.Info("Reconcile pass completed",
		zap.Int("repaired", repaired),
		zap.Int("failed", len(orphaned)-repaired),
	)
}

package scheduler

import (
	"time"

	"github.com/opinio-app/survey_backend/internal/domain"
	"go.uber.org/zap"
)

// RetentionScheduler anonymizes deleted-user snapshots once their retention
// window has passed. Anonymization is the only mutation snapshots ever see.
type RetentionScheduler struct {
	snapshotRepo domain.UserSnapshotRepository
	retention    time.Duration
	logger       *zap.Logger
	ticker       *time.Ticker
	done         chan struct{}
}

// NewRetentionScheduler creates a new retention scheduler instance.
func NewRetentionScheduler(snapshotRepo domain.UserSnapshotRepository, retention time.Duration, logger *zap.Logger) *RetentionScheduler {
	return &RetentionScheduler{
		snapshotRepo: snapshotRepo,
		retention:    retention,
		logger:       logger,
		done:         make(chan struct{}),
	}
}

// Start runs one pass immediately and then every 24 hours.
func (s *RetentionScheduler) Start() {
	s.logger.Info("snapshot retention scheduler started",
		zap.Duration("retention", s.retention),
	)

	s.AnonymizeExpiredSnapshots()

	s.ticker = time.NewTicker(24 * time.Hour)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.AnonymizeExpiredSnapshots()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop halts the scheduler.
func (s *RetentionScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		s.logger.Info("snapshot retention scheduler stopped")
	}
}

// AnonymizeExpiredSnapshots blanks identity fields of snapshots older than
// the retention window.
func (s *RetentionScheduler) AnonymizeExpiredSnapshots() {
	cutoff := time.Now().Add(-s.retention)
	count, err := s.snapshotRepo.AnonymizeOlderThan(cutoff)
	if err != nil {
		s.logger.Error("snapshot anonymization pass failed", zap.Error(err))
		return
	}
	if count > 0 {
		s.logger.Info("anonymized expired snapshots", zap.Int("count", count))
	}
}

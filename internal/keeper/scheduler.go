package keeper

import (
	"clarity/internal/keeper/interfaces"
	"clarity/internal/providers"
	"clarity/internal/services"
	"clarity/internal/structures"
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	service   services.LedgerServiceInterface
	snapshots *SnapshotManager
	metrics   providers.MetricsProviderInterface
	clock     services.Clock
	cron      *gron.Cron
	opsMu     sync.Mutex

	sweeps      atomic.Int64
	expired     atomic.Int64
	closed      atomic.Int64
	saves       atomic.Int64
	failedSaves atomic.Int64
	lastSweep   atomic.Time
	lastSave    atomic.Time
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		_ = s.Persist()
	})

	s.cron.AddFunc(gron.Every(s.config.Ledger.KeeperInterval), func() {
		s.sweep()
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeKeeper, "Keeper started: sweep every %s, save every %s",
		s.config.Ledger.KeeperInterval, s.config.Persistence.SaveInterval)
}

func (s *Scheduler) sweep() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	now := s.clock.Now()
	res := s.service.Sweep(now)

	s.sweeps.Inc()
	s.expired.Add(int64(res.ExpiredSubscriptions))
	s.closed.Add(int64(res.ClosedProposals))
	s.lastSweep.Store(now)
	s.metrics.AddSweptSubscriptions(res.ExpiredSubscriptions)

	if res.ExpiredSubscriptions > 0 || res.ClosedProposals > 0 {
		s.logger.Infof(providers.TypeKeeper, "Sweep at %s: %d subscriptions expired, %d proposals closed",
			now.Format(time.RFC3339), res.ExpiredSubscriptions, res.ClosedProposals)
		return
	}
	s.logger.Debugf(providers.TypeKeeper, "Sweep at %s: nothing to do", now.Format(time.RFC3339))
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.snapshots.Load(ctx)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	err := s.snapshots.Save(ctx)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.failedSaves.Inc()
		s.logger.Errorf(providers.TypeKeeper, "Error while persisting ledger: %s", err)
		return err
	}
	s.saves.Inc()
	s.lastSave.Store(s.clock.Now())
	s.logger.Debugf(providers.TypeKeeper, "Persisted ledger to %s", s.snapshots.store.Name())
	return nil
}

func (s *Scheduler) Stats() interfaces.KeeperStats {
	return interfaces.KeeperStats{
		Sweeps:               s.sweeps.Load(),
		ExpiredSubscriptions: s.expired.Load(),
		ClosedProposals:      s.closed.Load(),
		Saves:                s.saves.Load(),
		FailedSaves:          s.failedSaves.Load(),
		LastSweep:            s.lastSweep.Load(),
		LastSave:             s.lastSave.Load(),
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.LedgerServiceInterface, snapshots *SnapshotManager, metrics providers.MetricsProviderInterface, clock services.Clock) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		service:   service,
		snapshots: snapshots,
		metrics:   metrics,
		clock:     clock,
	}
}

package prescriptions

import (
	"context"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

const renderWorkerLockKey = "prescriptions:render_worker:lock"

// RenderWorker periodically retries prescriptions whose document render
// failed at issue time, so a flaky renderer or object store never leaves a
// prescription permanently without its PDF.
type RenderWorker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	repo    contracts.PrescriptionRepository
	usecase contracts.PrescriptionUsecase
	stop    chan struct{}
}

func NewRenderWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	repo contracts.PrescriptionRepository,
	usecase contracts.PrescriptionUsecase,
) *RenderWorker {
	return &RenderWorker{
		log:     log,
		cfg:     cfg,
		locker:  lockerSvc,
		repo:    repo,
		usecase: usecase,
		stop:    make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *RenderWorker) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(w.cfg.App.RenderWorkerIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	stopped := make(chan struct{})

	w.log.Info("prescription render worker started",
		zap.Duration("interval", interval))

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *RenderWorker) runOnce(ctx context.Context, now time.Time) {
	interval := time.Duration(w.cfg.App.RenderWorkerIntervalInSeconds) * time.Second
	ttl := interval - time.Second
	if ttl < time.Second {
		ttl = time.Second
	}

	acquired, lockVal, err := w.locker.TryLock(ctx, renderWorkerLockKey, ttl)
	if err != nil {
		w.log.Info("render worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("render worker lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, renderWorkerLockKey, lockVal); err != nil {
			w.log.Error("render worker unlock failed", zap.Error(err))
		}
	}()

	// Leave freshly inserted prescriptions alone so the worker never races
	// the synchronous render still running in the issuance request.
	grace := time.Duration(w.cfg.App.RenderRetryGraceInSeconds) * time.Second
	olderThan := now.Add(-grace)

	batch := w.cfg.App.RenderWorkerBatchSize
	if batch <= 0 {
		batch = 1
	}

	pending, err := w.repo.FindAwaitingDocument(ctx, olderThan, batch)
	if err != nil {
		w.log.Error("render worker failed to list pending prescriptions", zap.Error(err))
		return
	}
	if len(pending) == 0 {
		return
	}

	w.log.Info("render worker retrying pending documents", zap.Int("count", len(pending)))

	for _, prescription := range pending {
		if _, err := w.usecase.RenderDocument(ctx, prescription.DoctorID, prescription.ID); err != nil {
			w.log.Error("render worker retry failed",
				zap.String("prescription_id", prescription.ID),
				zap.Error(err),
			)
		}
	}
}

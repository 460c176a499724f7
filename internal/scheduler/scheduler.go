package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"morningbrief/internal/builder"
	"morningbrief/internal/services"
)

const runTimeout = 2 * time.Minute

// Scheduler runs the full collect-build-send pipeline on a cron spec. One
// run per tick; a tick firing while the previous run is still in flight is
// skipped.
type Scheduler struct {
	aggregator *services.Aggregator
	builder    *builder.Builder
	notifier   *services.Notifier
	logger     *zap.Logger
	cron       *cron.Cron
	spec       string
	mu         sync.Mutex
	inFlight   bool
	lastRun    time.Time
}

func NewScheduler(aggregator *services.Aggregator, b *builder.Builder, notifier *services.Notifier, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		aggregator: aggregator,
		builder:    b,
		notifier:   notifier,
		logger:     logger,
		cron:       cron.New(),
		spec:       spec,
	}
}

func (s *Scheduler) Start() error {
	entryID, err := s.cron.AddFunc(s.spec, s.runBrief)
	if err != nil {
		return err
	}

	s.cron.Start()

	s.logger.Info("Scheduler started",
		zap.String("spec", s.spec),
		zap.Time("next_run", s.cron.Entry(entryID).Next))

	return nil
}

func (s *Scheduler) runBrief() {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		s.logger.Warn("Skipping scheduled run, previous run still in flight")
		return
	}
	s.inFlight = true
	s.lastRun = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	startTime := time.Now()
	s.logger.Info("Starting scheduled brief", zap.Time("start_time", startTime))

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	snapshot := s.aggregator.Collect(ctx)

	if snapshot.SectionCount() == 0 {
		err := fmt.Errorf("all data sources failed")
		s.logger.Error("Nothing to send", zap.Error(err))
		if sendErr := s.notifier.SendError(ctx, err); sendErr != nil {
			s.logger.Error("Failed to deliver error notice", zap.Error(sendErr))
		}
		return
	}

	message := s.builder.Build(snapshot)

	if err := s.notifier.Send(ctx, message); err != nil {
		s.logger.Error("Scheduled brief failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}

	s.logger.Info("Scheduled brief completed",
		zap.Int("sections", snapshot.SectionCount()),
		zap.Duration("duration", time.Since(startTime)))
}

// ForceRun triggers a brief outside the cron spec.
func (s *Scheduler) ForceRun() {
	s.logger.Info("Manually triggering brief")
	go s.runBrief()
}

// Stop halts the cron loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) LastRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

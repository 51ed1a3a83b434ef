package scheduler

import (
	"context"
	"fmt"
	"time"

	"sien_official/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ScanObserver receives the outcome of every scheduled scan (metrics).
type ScanObserver func(res usecase.ScanResult, err error)

// DeadlineScheduler runs the deadline scan on a cron spec inside the API process.
// A tick that fires while the previous scan is still running is skipped.
type DeadlineScheduler struct {
	cron    *cron.Cron
	scan    usecase.IDeadlineAlertUseCase
	observe ScanObserver
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func New(spec string, loc *time.Location, scan usecase.IDeadlineAlertUseCase, observe ScanObserver, logger *zap.Logger) (*DeadlineScheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "deadline_scheduler"))
	cl := cronLogger{l: logger.Sugar()}

	s := &DeadlineScheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		scan:    scan,
		observe: observe,
		logger:  logger,
		timeout: 5 * time.Minute,
		now:     time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid ALERT_SCHEDULE %q: %w", spec, err)
	}
	return s, nil
}

func (s *DeadlineScheduler) Start() {
	s.logger.Info("deadline scheduler started")
	s.cron.Start()
}

// Stop halts new ticks and waits for a running scan, or for ctx to end.
func (s *DeadlineScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.logger.Info("deadline scheduler stopped")
}

func (s *DeadlineScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	res, err := s.scan.ScanAndAlert(ctx, s.now())
	if s.observe != nil {
		s.observe(res, err)
	}
	if err != nil {
		s.logger.Error("scheduled deadline scan failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled deadline scan", zap.Int("checked", res.Checked), zap.Int("sent", res.Sent))
}

// cronLogger routes robfig/cron logs through zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "err", err)...)
}

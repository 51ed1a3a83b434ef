package usecase

import (
	"context"
	"sync"
	"time"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"
)

const (
	// AlertLeadTime is how far ahead of a deadline the alert fires.
	AlertLeadTime = 24 * time.Hour
	// AlertGracePeriod keeps overdue orders eligible for a late alert.
	AlertGracePeriod = 48 * time.Hour
)

// ScanResult reports one deadline scan. Checked counts every non-terminal order
// with a deadline, including those whose deadline could not be parsed.
type ScanResult struct {
	Checked int `json:"checked"`
	Sent    int `json:"sent"`
}

type IDeadlineAlertUseCase interface {
	ScanAndAlert(ctx context.Context, now time.Time) (ScanResult, error)
}

type DeadlineAlertUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.INotifier
	loc      *time.Location
	logger   *zap.Logger

	// serializes scans started by this process; other processes are not coordinated
	mu sync.Mutex
}

var _ IDeadlineAlertUseCase = (*DeadlineAlertUseCase)(nil)

// NewDeadlineAlertUseCase builds the scan. loc is used for deadlines that carry no zone (nil = UTC).
func NewDeadlineAlertUseCase(repo interfaces.IOrderRepository, notifier interfaces.INotifier, loc *time.Location, logger *zap.Logger) *DeadlineAlertUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeadlineAlertUseCase{repo: repo, notifier: notifier, loc: loc, logger: logger}
}

// ScanAndAlert notifies once for every open order whose deadline is within AlertLeadTime
// (or overdue by less than AlertGracePeriod) and marks it alertSent.
//
// A failed notification is logged and the order stays unmarked for the next scan.
// A failed write-back is logged too; the mail already went out, so it still counts as sent.
func (u *DeadlineAlertUseCase) ScanAndAlert(ctx context.Context, now time.Time) (ScanResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.repo.All(ctx, interfaces.ActiveOrders)
	if err != nil {
		return ScanResult{}, err
	}

	var res ScanResult
	for _, o := range orders {
		if o.Status.IsTerminal() || o.Deadline == "" {
			continue
		}
		res.Checked++

		if !u.due(o, now) {
			continue
		}

		if err := u.notifier.Notify(ctx, interfaces.TemplateDeadlineAlert, o); err != nil {
			u.logger.Warn("deadline alert notification failed",
				zap.String("order_id", o.ID),
				zap.String("template", string(interfaces.TemplateDeadlineAlert)),
				zap.Error(err),
			)
			continue
		}
		res.Sent++

		if err := u.markSent(ctx, o.ID); err != nil {
			u.logger.Error("deadline alert write-back failed", zap.String("order_id", o.ID), zap.Error(err))
		}
	}

	u.logger.Info("deadline scan finished", zap.Int("checked", res.Checked), zap.Int("sent", res.Sent))
	return res, nil
}

func (u *DeadlineAlertUseCase) due(o entities.Order, now time.Time) bool {
	if o.AlertSent {
		return false
	}
	deadline, err := dateparse.ParseIn(o.Deadline, u.loc)
	if err != nil {
		u.logger.Debug("skipping unparseable deadline", zap.String("order_id", o.ID), zap.String("deadline", o.Deadline))
		return false
	}
	remaining := deadline.Sub(now)
	return remaining <= AlertLeadTime && remaining > -AlertGracePeriod
}

// markSent re-reads the list so earlier write-backs in the same scan are not overwritten,
// then flags only the alertSent field of the current record.
func (u *DeadlineAlertUseCase) markSent(ctx context.Context, id string) error {
	current, err := u.repo.All(ctx, interfaces.ActiveOrders)
	if err != nil {
		return err
	}
	index := indexOfOrder(current, id)
	if index < 0 {
		u.logger.Warn("alerted order left the active list before write-back", zap.String("order_id", id))
		return nil
	}
	sent := true
	updated := entities.OrderPatch{AlertSent: &sent}.ApplyTo(current[index])
	return u.repo.SetAt(ctx, interfaces.ActiveOrders, index, updated)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultPageLimit    = 50
	defaultPaymentTitle = "Mix & Mastering"
)

// IOrderUseCase exposes the order lifecycle.
//
// Every mutation is a read of the whole list followed by a positional write.
// Positions are only valid for the snapshot that was just read and nothing here
// guards against a second writer in between (single operator assumption).
type IOrderUseCase interface {
	Create(ctx context.Context, fields map[string]any) (entities.Order, error)
	ListPage(ctx context.Context, skip, limit int) ([]entities.Order, error)
	ListArchive(ctx context.Context) ([]entities.Order, error)
	UpdateByID(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
	UpdateByIndex(ctx context.Context, index int, patch entities.OrderPatch) (entities.Order, error)
	ArchiveByIndex(ctx context.Context, index int) (moved bool, err error)
	RestoreByIndex(ctx context.Context, index int) (moved bool, err error)
	CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (string, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.INotifier
	payments interfaces.IPaymentGateway
	logger   *zap.Logger

	now func() time.Time
	ids orderIDGenerator
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order lifecycle. notifier and payments may be nil.
func NewOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.INotifier, payments interfaces.IPaymentGateway, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{
		repo:     repo,
		notifier: notifier,
		payments: payments,
		logger:   logger,
		now:      time.Now,
	}
}

// Create stores a new order at the head of the active list, then notifies the admin.
//
// id, date, status and alertSent are always system-assigned; form values for them are dropped.
// A notification failure is logged and does not fail the call.
func (u *OrderUseCase) Create(ctx context.Context, fields map[string]any) (entities.Order, error) {
	now := u.now()
	patch := entities.NewOrderPatch(fields)
	patch.Status = nil
	patch.AlertSent = nil

	o := patch.ApplyTo(entities.Order{
		ID:        u.ids.next(now),
		CreatedAt: now.UTC(),
		Status:    entities.OrderStatusNotStarted,
	})

	if err := u.repo.Prepend(ctx, interfaces.ActiveOrders, o); err != nil {
		return entities.Order{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.Notify(ctx, interfaces.TemplateNewOrder, o); err != nil {
			u.logger.Warn("new order notification failed",
				zap.String("order_id", o.ID),
				zap.String("template", string(interfaces.TemplateNewOrder)),
				zap.Error(err),
			)
		}
	}
	return o, nil
}

// ListPage returns active orders newest first. limit <= 0 means DefaultPageLimit, skip < 0 means 0.
func (u *OrderUseCase) ListPage(ctx context.Context, skip, limit int) ([]entities.Order, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if skip < 0 {
		skip = 0
	}
	return u.repo.Range(ctx, interfaces.ActiveOrders, skip, skip+limit-1)
}

func (u *OrderUseCase) ListArchive(ctx context.Context) ([]entities.Order, error) {
	return u.repo.All(ctx, interfaces.ArchiveOrders)
}

func (u *OrderUseCase) UpdateByID(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	all, err := u.repo.All(ctx, interfaces.ActiveOrders)
	if err != nil {
		return entities.Order{}, err
	}
	index := indexOfOrder(all, id)
	if index < 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return u.writeAt(ctx, index, all[index], patch)
}

// UpdateByIndex patches the order at a position of the current active list.
func (u *OrderUseCase) UpdateByIndex(ctx context.Context, index int, patch entities.OrderPatch) (entities.Order, error) {
	all, err := u.repo.All(ctx, interfaces.ActiveOrders)
	if err != nil {
		return entities.Order{}, err
	}
	if index < 0 || index >= len(all) {
		return entities.Order{}, ErrOrderNotFound
	}
	return u.writeAt(ctx, index, all[index], patch)
}

func (u *OrderUseCase) writeAt(ctx context.Context, index int, current entities.Order, patch entities.OrderPatch) (entities.Order, error) {
	updated := patch.ApplyTo(current)
	if err := u.repo.SetAt(ctx, interfaces.ActiveOrders, index, updated); err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// ArchiveByIndex moves the order at index to the head of the archive list with the archived status.
// An out-of-range index is a no-op (moved == false, err == nil).
//
// The archive copy is written before the active list is rewritten, so a failure in between
// leaves the order in both lists rather than in neither. Once started, the move ignores
// cancellation of ctx.
func (u *OrderUseCase) ArchiveByIndex(ctx context.Context, index int) (bool, error) {
	ctx = context.WithoutCancel(ctx)
	active, err := u.repo.All(ctx, interfaces.ActiveOrders)
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(active) {
		return false, nil
	}

	moved := active[index]
	moved.Status = entities.OrderStatusArchived
	remaining := without(active, index)

	if err := u.repo.Prepend(ctx, interfaces.ArchiveOrders, moved); err != nil {
		return false, err
	}
	if err := u.repo.Rewrite(ctx, interfaces.ActiveOrders, remaining); err != nil {
		return false, err
	}
	return true, nil
}

// RestoreByIndex moves the archived order at index back to the head of the active list,
// resetting its status. alertSent is carried through unchanged.
//
// The archive is rewritten before the order is prepended to the active list. If that prepend
// fails, the order is in neither list and only the error (and the log line) carries it.
// Cancellation of ctx is ignored so a dropped client cannot open that window.
func (u *OrderUseCase) RestoreByIndex(ctx context.Context, index int) (bool, error) {
	ctx = context.WithoutCancel(ctx)
	archived, err := u.repo.All(ctx, interfaces.ArchiveOrders)
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(archived) {
		return false, nil
	}

	restored := archived[index]
	restored.Status = entities.OrderStatusNotStarted
	remaining := without(archived, index)

	if err := u.repo.Rewrite(ctx, interfaces.ArchiveOrders, remaining); err != nil {
		return false, err
	}
	if err := u.repo.Prepend(ctx, interfaces.ActiveOrders, restored); err != nil {
		u.logger.Error("restored order dropped from archive but not re-added",
			zap.String("order_id", restored.ID), zap.Error(err))
		return false, err
	}
	return true, nil
}

// CreatePaymentLink asks the gateway for a checkout link and stores it on the order.
func (u *OrderUseCase) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (string, error) {
	if u.payments == nil {
		return "", ErrPaymentGatewayNotConfigured
	}
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return "", ErrInvalidOrderID
	}
	if req.Amount <= 0 {
		return "", ErrInvalidPayload
	}

	all, err := u.repo.All(ctx, interfaces.ActiveOrders)
	if err != nil {
		return "", err
	}
	index := indexOfOrder(all, req.OrderID)
	if index < 0 {
		return "", ErrOrderNotFound
	}
	if strings.TrimSpace(req.Title) == "" {
		req.Title = all[index].Field(entities.FieldSongTitle)
	}
	if strings.TrimSpace(req.Title) == "" {
		req.Title = defaultPaymentTitle
	}

	link, err := u.payments.CreatePaymentLink(ctx, req)
	if err != nil {
		return "", err
	}

	patch := entities.OrderPatch{Fields: map[string]any{entities.FieldPaymentLink: link}}
	if _, err := u.UpdateByID(ctx, req.OrderID, patch); err != nil {
		return "", err
	}
	return link, nil
}

func indexOfOrder(orders []entities.Order, id string) int {
	for i, o := range orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func without(orders []entities.Order, index int) []entities.Order {
	out := make([]entities.Order, 0, len(orders)-1)
	out = append(out, orders[:index]...)
	return append(out, orders[index+1:]...)
}

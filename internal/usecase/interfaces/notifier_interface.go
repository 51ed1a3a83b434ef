package interfaces

import (
	"context"

	"sien_official/internal/domain/entities"
)

// NotificationTemplate selects the mail rendered by the notifier.
type NotificationTemplate string

const (
	TemplateNewOrder      NotificationTemplate = "new_order"
	TemplateDeadlineAlert NotificationTemplate = "deadline_alert"
)

// INotifier sends transactional mail. Callers treat it as fire-and-forget:
// a returned error is logged, never retried and never rolls back a store write.
type INotifier interface {
	Notify(ctx context.Context, template NotificationTemplate, order entities.Order) error
}

package interfaces

import (
	"context"

	"sien_official/internal/domain/entities"
)

// OrderList names one of the two order collections.
type OrderList string

const (
	ActiveOrders  OrderList = "orders"
	ArchiveOrders OrderList = "archive"
)

// IOrderRepository is the typed view of the order lists in the record store.
//
// Positions are only meaningful for the snapshot that produced them.
type IOrderRepository interface {
	Prepend(ctx context.Context, list OrderList, o entities.Order) error
	Range(ctx context.Context, list OrderList, start, stop int) ([]entities.Order, error)
	All(ctx context.Context, list OrderList) ([]entities.Order, error)
	SetAt(ctx context.Context, list OrderList, index int, o entities.Order) error
	// Rewrite replaces the whole list in a single store write.
	Rewrite(ctx context.Context, list OrderList, orders []entities.Order) error
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"
)

// OrderKVRepository stores orders as JSON list elements in the record store.
//
// Storage model:
//   - key "orders": active orders, newest first
//   - key "archive": archived orders, most recently archived first
type OrderKVRepository struct {
	store interfaces.IRecordStore
}

var _ interfaces.IOrderRepository = (*OrderKVRepository)(nil)

func NewOrderKVRepository(store interfaces.IRecordStore) *OrderKVRepository {
	return &OrderKVRepository{store: store}
}

func (r *OrderKVRepository) Prepend(ctx context.Context, list interfaces.OrderList, o entities.Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding order %s: %w", o.ID, err)
	}
	return r.store.ListPush(ctx, string(list), raw)
}

func (r *OrderKVRepository) Range(ctx context.Context, list interfaces.OrderList, start, stop int) ([]entities.Order, error) {
	raws, err := r.store.ListRange(ctx, string(list), start, stop)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(raws))
	for i, raw := range raws {
		var o entities.Order
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("decoding %s element %d: %w", list, i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderKVRepository) All(ctx context.Context, list interfaces.OrderList) ([]entities.Order, error) {
	return r.Range(ctx, list, 0, -1)
}

func (r *OrderKVRepository) SetAt(ctx context.Context, list interfaces.OrderList, index int, o entities.Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding order %s: %w", o.ID, err)
	}
	return r.store.ListSet(ctx, string(list), index, raw)
}

func (r *OrderKVRepository) Rewrite(ctx context.Context, list interfaces.OrderList, orders []entities.Order) error {
	raws := make([]json.RawMessage, 0, len(orders))
	for _, o := range orders {
		raw, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encoding order %s: %w", o.ID, err)
		}
		raws = append(raws, raw)
	}

	return r.store.ListReplace(ctx, string(list), raws)
}

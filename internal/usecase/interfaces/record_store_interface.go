package interfaces

import (
	"context"
	"encoding/json"
)

// IRecordStore abstracts the hosted key-value service.
//
// Values are opaque JSON documents. Lists follow Redis semantics:
//   - ListPush prepends (head insertion)
//   - ListRange is inclusive on both ends; negative indexes count from the tail (-1 = last)
//   - a missing key reads as an empty list / absent scalar
//   - ListReplace swaps the whole list in one write; readers see the old list or the new one
//
// No operation spans more than one key and none is transactional with another call.
type IRecordStore interface {
	Get(ctx context.Context, key string) (value json.RawMessage, found bool, err error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	ListRange(ctx context.Context, key string, start, stop int) ([]json.RawMessage, error)
	ListSet(ctx context.Context, key string, index int, value json.RawMessage) error
	ListPush(ctx context.Context, key string, values ...json.RawMessage) error
	ListReplace(ctx context.Context, key string, values []json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

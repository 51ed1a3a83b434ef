package repository

import (
	"context"
	"encoding/json"
	"sync"

	"sien_official/internal/usecase/interfaces"
)

// MemoryRecordStore keeps every key in process memory.
//
// Each call is atomic on its own; sequences of calls are not, which matches the hosted store.
type MemoryRecordStore struct {
	mu      sync.Mutex
	scalars map[string]json.RawMessage
	lists   map[string][]json.RawMessage
}

var _ interfaces.IRecordStore = (*MemoryRecordStore)(nil)

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		scalars: make(map[string]json.RawMessage),
		lists:   make(map[string][]json.RawMessage),
	}
}

func (s *MemoryRecordStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.scalars[key]
	if !ok {
		return nil, false, nil
	}
	return cloneRaw(v), true, nil
}

func (s *MemoryRecordStore) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, key)
	s.scalars[key] = cloneRaw(value)
	return nil
}

func (s *MemoryRecordStore) ListRange(_ context.Context, key string, start, stop int) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[key]
	lo, hi, ok := listBounds(len(list), start, stop)
	if !ok {
		return []json.RawMessage{}, nil
	}
	out := make([]json.RawMessage, 0, hi-lo+1)
	for _, v := range list[lo : hi+1] {
		out = append(out, cloneRaw(v))
	}
	return out, nil
}

func (s *MemoryRecordStore) ListSet(_ context.Context, key string, index int, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[key]
	i, ok := listIndex(len(list), index)
	if !ok {
		return ErrIndexOutOfRange
	}
	list[i] = cloneRaw(value)
	return nil
}

func (s *MemoryRecordStore) ListPush(_ context.Context, key string, values ...json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scalars, key)
	list := s.lists[key]
	head := make([]json.RawMessage, 0, len(values)+len(list))
	for i := len(values) - 1; i >= 0; i-- {
		head = append(head, cloneRaw(values[i]))
	}
	s.lists[key] = append(head, list...)
	return nil
}

// ListReplace stores values as the whole list, head first.
func (s *MemoryRecordStore) ListReplace(_ context.Context, key string, values []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scalars, key)
	if len(values) == 0 {
		delete(s.lists, key)
		return nil
	}
	list := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		list = append(list, cloneRaw(v))
	}
	s.lists[key] = list
	return nil
}

func (s *MemoryRecordStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scalars, key)
	delete(s.lists, key)
	return nil
}

func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}

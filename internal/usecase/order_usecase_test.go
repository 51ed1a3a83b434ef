package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"sien_official/internal/adapter/persistence/repository"
	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"
	mock_interfaces "sien_official/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newMemoryOrders() *repository.OrderKVRepository {
	return repository.NewOrderKVRepository(repository.NewMemoryRecordStore())
}

func newTestOrderUseCase(repo interfaces.IOrderRepository, n interfaces.INotifier, p interfaces.IPaymentGateway) *OrderUseCase {
	uc := NewOrderUseCase(repo, n, p, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func seedOrders(t *testing.T, repo interfaces.IOrderRepository, list interfaces.OrderList, ids ...string) {
	t.Helper()
	// pushed in reverse so the list reads in the given order
	for i := len(ids) - 1; i >= 0; i-- {
		o := entities.Order{ID: ids[i], CreatedAt: fixedNow, Status: entities.OrderStatusInProgress,
			Fields: map[string]any{entities.FieldSongTitle: "song " + ids[i]}}
		if err := repo.Prepend(context.Background(), list, o); err != nil {
			t.Fatalf("seeding %s: %v", list, err)
		}
	}
}

func listIDs(t *testing.T, repo interfaces.IOrderRepository, list interfaces.OrderList) []string {
	t.Helper()
	all, err := repo.All(context.Background(), list)
	if err != nil {
		t.Fatalf("reading %s: %v", list, err)
	}
	out := make([]string, 0, len(all))
	for _, o := range all {
		out = append(out, o.ID)
	}
	return out
}

func expectIDs(t *testing.T, repo interfaces.IOrderRepository, list interfaces.OrderList, want ...string) {
	t.Helper()
	got := listIDs(t, repo, list)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %s to be %v, got %v", list, want, got)
	}
}

// flakyStore fails writes to one key and honours context cancellation on every write.
type flakyStore struct {
	*repository.MemoryRecordStore
	failKey   string
	afterPush func()
}

func (s *flakyStore) check(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == s.failKey {
		return errors.New("write failed")
	}
	return nil
}

func (s *flakyStore) ListPush(ctx context.Context, key string, values ...json.RawMessage) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	if err := s.MemoryRecordStore.ListPush(ctx, key, values...); err != nil {
		return err
	}
	if s.afterPush != nil {
		s.afterPush()
	}
	return nil
}

func (s *flakyStore) ListReplace(ctx context.Context, key string, values []json.RawMessage) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	return s.MemoryRecordStore.ListReplace(ctx, key, values)
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("new order is first and system fields win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "old")
		uc := newTestOrderUseCase(repo, notifier, nil)

		notifier.EXPECT().Notify(gomock.Any(), interfaces.TemplateNewOrder, gomock.AssignableToTypeOf(entities.Order{})).Return(nil)

		created, err := uc.Create(context.Background(), map[string]any{
			"id":                     "forged",
			"status":                 "納品済み",
			"alertSent":              true,
			entities.FieldClientName: "しえん",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "1748779200000" {
			t.Fatalf("expected time-based id, got %q", created.ID)
		}
		if created.Status != entities.OrderStatusNotStarted || created.AlertSent {
			t.Fatalf("system fields were overridden: status=%q alertSent=%v", created.Status, created.AlertSent)
		}
		if created.Field(entities.FieldClientName) != "しえん" {
			t.Fatalf("expected client name kept, got %v", created.Field(entities.FieldClientName))
		}

		page, err := uc.ListPage(context.Background(), 0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page) != 1 || page[0].ID != created.ID {
			t.Fatalf("expected new order first, got %+v", page)
		}
		if !page[0].CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created at %v, got %v", fixedNow, page[0].CreatedAt)
		}
	})

	t.Run("notification failure does not fail the create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		repo := newMemoryOrders()
		uc := newTestOrderUseCase(repo, notifier, nil)

		notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Create(context.Background(), map[string]any{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := len(listIDs(t, repo, interfaces.ActiveOrders)); n != 1 {
			t.Fatalf("expected 1 stored order, got %d", n)
		}
	})

	t.Run("store failure skips notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := newTestOrderUseCase(repo, notifier, nil)

		repo.EXPECT().Prepend(gomock.Any(), interfaces.ActiveOrders, gomock.Any()).Return(errors.New("db"))

		_, err := uc.Create(context.Background(), map[string]any{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("ids stay unique within one millisecond", func(t *testing.T) {
		uc := newTestOrderUseCase(newMemoryOrders(), nil, nil)
		a, err := uc.Create(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := uc.Create(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID == b.ID || b.ID != "1748779200001" {
			t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
		}
	})
}

func TestOrderUseCase_ListPage(t *testing.T) {
	cases := []struct {
		name              string
		skip, limit       int
		wantStart, wantTo int
	}{
		{name: "defaults", skip: 0, limit: 0, wantStart: 0, wantTo: 49},
		{name: "negative skip", skip: -3, limit: 10, wantStart: 0, wantTo: 9},
		{name: "page", skip: 10, limit: 5, wantStart: 10, wantTo: 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := newTestOrderUseCase(repo, nil, nil)

			repo.EXPECT().Range(gomock.Any(), interfaces.ActiveOrders, tc.wantStart, tc.wantTo).Return([]entities.Order{}, nil)

			if _, err := uc.ListPage(context.Background(), tc.skip, tc.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("out of range is empty", func(t *testing.T) {
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1", "2")
		uc := newTestOrderUseCase(repo, nil, nil)
		page, err := uc.ListPage(context.Background(), 5, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page) != 0 {
			t.Fatalf("expected empty page, got %d orders", len(page))
		}
	})
}

func TestOrderUseCase_UpdateByID(t *testing.T) {
	t.Run("patch overwrites only patched fields", func(t *testing.T) {
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1", "2", "3")
		uc := newTestOrderUseCase(repo, nil, nil)

		patch := entities.NewOrderPatch(map[string]any{"status": "修正対応中", "memo": "v2 sent"})
		updated, err := uc.UpdateByID(context.Background(), "2", patch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusRevising {
			t.Fatalf("expected revising status, got %q", updated.Status)
		}

		all, _ := repo.All(context.Background(), interfaces.ActiveOrders)
		if len(all) != 3 || all[1].ID != "2" {
			t.Fatalf("expected order 2 to stay at index 1, got %+v", all)
		}
		if all[1].Status != entities.OrderStatusRevising || all[1].Field("memo") != "v2 sent" {
			t.Fatalf("patch not stored: %+v", all[1])
		}
		if all[1].Field(entities.FieldSongTitle) != "song 2" {
			t.Fatalf("unpatched field lost: %+v", all[1])
		}
		if all[0].Status != entities.OrderStatusInProgress {
			t.Fatalf("neighbour changed: %+v", all[0])
		}
	})

	t.Run("missing id leaves list unchanged", func(t *testing.T) {
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1", "2")
		before, _ := repo.All(context.Background(), interfaces.ActiveOrders)
		uc := newTestOrderUseCase(repo, nil, nil)

		_, err := uc.UpdateByID(context.Background(), "404", entities.NewOrderPatch(map[string]any{"status": "x"}))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}

		after, _ := repo.All(context.Background(), interfaces.ActiveOrders)
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("list changed: before=%+v after=%+v", before, after)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := newTestOrderUseCase(nil, nil, nil)
		if _, err := uc.UpdateByID(context.Background(), "  ", entities.OrderPatch{}); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("alertSent cannot be cleared", func(t *testing.T) {
		repo := newMemoryOrders()
		o := entities.Order{ID: "1", CreatedAt: fixedNow, Status: entities.OrderStatusInProgress, AlertSent: true}
		if err := repo.Prepend(context.Background(), interfaces.ActiveOrders, o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := newTestOrderUseCase(repo, nil, nil)

		updated, err := uc.UpdateByID(context.Background(), "1", entities.NewOrderPatch(map[string]any{"alertSent": false}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.AlertSent {
			t.Fatal("alertSent went back to false")
		}
	})
}

func TestOrderUseCase_UpdateByIndex(t *testing.T) {
	repo := newMemoryOrders()
	seedOrders(t, repo, interfaces.ActiveOrders, "1", "2")
	uc := newTestOrderUseCase(repo, nil, nil)

	deadline := "2025-06-10"
	updated, err := uc.UpdateByIndex(context.Background(), 1, entities.OrderPatch{Deadline: &deadline})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "2" || updated.Deadline != deadline {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := uc.UpdateByIndex(context.Background(), 2, entities.OrderPatch{Deadline: &deadline}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderUseCase_ArchiveAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("archive moves exactly the indexed record", func(t *testing.T) {
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1", "2", "3")
		seedOrders(t, repo, interfaces.ArchiveOrders, "0")
		uc := newTestOrderUseCase(repo, nil, nil)

		moved, err := uc.ArchiveByIndex(ctx, 1)
		if err != nil || !moved {
			t.Fatalf("expected move, got moved=%v err=%v", moved, err)
		}
		expectIDs(t, repo, interfaces.ActiveOrders, "1", "3")
		expectIDs(t, repo, interfaces.ArchiveOrders, "2", "0")

		archived, _ := uc.ListArchive(ctx)
		if archived[0].Status != entities.OrderStatusArchived {
			t.Fatalf("expected archived status, got %q", archived[0].Status)
		}
		if archived[0].Field(entities.FieldSongTitle) != "song 2" {
			t.Fatalf("fields lost on archive: %+v", archived[0])
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1")
		uc := newTestOrderUseCase(repo, nil, nil)

		for _, idx := range []int{-1, 1, 99} {
			if moved, err := uc.ArchiveByIndex(ctx, idx); err != nil || moved {
				t.Fatalf("archive %d: moved=%v err=%v", idx, moved, err)
			}
			if moved, err := uc.RestoreByIndex(ctx, idx); err != nil || moved {
				t.Fatalf("restore %d: moved=%v err=%v", idx, moved, err)
			}
		}
		expectIDs(t, repo, interfaces.ActiveOrders, "1")
		expectIDs(t, repo, interfaces.ArchiveOrders)
	})

	t.Run("restore round trip resets status and keeps alertSent", func(t *testing.T) {
		repo := newMemoryOrders()
		o := entities.Order{ID: "7", CreatedAt: fixedNow, Status: entities.OrderStatusDelivered, AlertSent: true}
		if err := repo.Prepend(ctx, interfaces.ActiveOrders, o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seedOrders(t, repo, interfaces.ActiveOrders, "8")
		uc := newTestOrderUseCase(repo, nil, nil)

		if moved, err := uc.ArchiveByIndex(ctx, 1); err != nil || !moved {
			t.Fatalf("archive: moved=%v err=%v", moved, err)
		}
		if moved, err := uc.RestoreByIndex(ctx, 0); err != nil || !moved {
			t.Fatalf("restore: moved=%v err=%v", moved, err)
		}

		expectIDs(t, repo, interfaces.ActiveOrders, "7", "8")
		expectIDs(t, repo, interfaces.ArchiveOrders)
		active, _ := repo.All(ctx, interfaces.ActiveOrders)
		if active[0].Status != entities.OrderStatusNotStarted || !active[0].AlertSent {
			t.Fatalf("unexpected restored order: %+v", active[0])
		}
	})

	t.Run("failed active rewrite keeps the active list", func(t *testing.T) {
		store := &flakyStore{MemoryRecordStore: repository.NewMemoryRecordStore()}
		repo := repository.NewOrderKVRepository(store)
		seedOrders(t, repo, interfaces.ActiveOrders, "a", "b", "c", "d")
		store.failKey = string(interfaces.ActiveOrders)
		uc := newTestOrderUseCase(repo, nil, nil)

		if _, err := uc.ArchiveByIndex(ctx, 0); err == nil {
			t.Fatal("expected archive error")
		}
		expectIDs(t, repo, interfaces.ActiveOrders, "a", "b", "c", "d")
		expectIDs(t, repo, interfaces.ArchiveOrders, "a")
	})

	t.Run("failed archive rewrite keeps both lists", func(t *testing.T) {
		store := &flakyStore{MemoryRecordStore: repository.NewMemoryRecordStore()}
		repo := repository.NewOrderKVRepository(store)
		seedOrders(t, repo, interfaces.ActiveOrders, "a")
		seedOrders(t, repo, interfaces.ArchiveOrders, "x", "y")
		store.failKey = string(interfaces.ArchiveOrders)
		uc := newTestOrderUseCase(repo, nil, nil)

		if _, err := uc.RestoreByIndex(ctx, 1); err == nil {
			t.Fatal("expected restore error")
		}
		expectIDs(t, repo, interfaces.ActiveOrders, "a")
		expectIDs(t, repo, interfaces.ArchiveOrders, "x", "y")
	})

	t.Run("cancellation mid-move does not split the move", func(t *testing.T) {
		store := &flakyStore{MemoryRecordStore: repository.NewMemoryRecordStore()}
		repo := repository.NewOrderKVRepository(store)
		seedOrders(t, repo, interfaces.ActiveOrders, "a", "b")
		uc := newTestOrderUseCase(repo, nil, nil)

		cctx, cancel := context.WithCancel(ctx)
		defer cancel()
		store.afterPush = cancel

		moved, err := uc.ArchiveByIndex(cctx, 0)
		if err != nil || !moved {
			t.Fatalf("expected completed move, got moved=%v err=%v", moved, err)
		}
		if cctx.Err() == nil {
			t.Fatal("expected the caller context to be cancelled during the move")
		}
		expectIDs(t, repo, interfaces.ActiveOrders, "b")
		expectIDs(t, repo, interfaces.ArchiveOrders, "a")
	})

	t.Run("archive write order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newTestOrderUseCase(repo, nil, nil)

		orders := []entities.Order{{ID: "1"}, {ID: "2"}}
		gomock.InOrder(
			repo.EXPECT().All(gomock.Any(), interfaces.ActiveOrders).Return(orders, nil),
			repo.EXPECT().Prepend(gomock.Any(), interfaces.ArchiveOrders, gomock.Any()).Return(nil),
			repo.EXPECT().Rewrite(gomock.Any(), interfaces.ActiveOrders, []entities.Order{{ID: "2"}}).Return(nil),
		)

		moved, err := uc.ArchiveByIndex(ctx, 0)
		if err != nil || !moved {
			t.Fatalf("expected move, got moved=%v err=%v", moved, err)
		}
		if orders[0].ID != "1" {
			t.Fatal("input slice was modified")
		}
	})
}

func TestOrderUseCase_CreatePaymentLink(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway not configured", func(t *testing.T) {
		uc := newTestOrderUseCase(newMemoryOrders(), nil, nil)
		_, err := uc.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{OrderID: "1", Amount: 1})
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestOrderUseCase(newMemoryOrders(), nil, mock_interfaces.NewMockIPaymentGateway(ctrl))

		cases := []struct {
			req  interfaces.PaymentLinkRequest
			want error
		}{
			{req: interfaces.PaymentLinkRequest{Amount: 1}, want: ErrInvalidOrderID},
			{req: interfaces.PaymentLinkRequest{OrderID: "1", Amount: 0}, want: ErrInvalidPayload},
			{req: interfaces.PaymentLinkRequest{OrderID: "missing", Amount: 10}, want: ErrOrderNotFound},
		}
		for _, tc := range cases {
			if _, err := uc.CreatePaymentLink(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("%+v: expected %v, got %v", tc.req, tc.want, err)
			}
		}
	})

	t.Run("stores link on the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1")
		uc := newTestOrderUseCase(repo, nil, gateway)

		gateway.EXPECT().CreatePaymentLink(gomock.Any(), interfaces.PaymentLinkRequest{OrderID: "1", Title: "song 1", Amount: 12000}).
			Return("https://pay.example/1", nil)

		link, err := uc.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{OrderID: " 1 ", Amount: 12000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link != "https://pay.example/1" {
			t.Fatalf("unexpected link: %s", link)
		}

		all, _ := repo.All(ctx, interfaces.ActiveOrders)
		if all[0].Field(entities.FieldPaymentLink) != "https://pay.example/1" {
			t.Fatalf("link not stored: %+v", all[0])
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := newMemoryOrders()
		seedOrders(t, repo, interfaces.ActiveOrders, "1")
		uc := newTestOrderUseCase(repo, nil, gateway)

		gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return("", errors.New("mp down"))

		_, err := uc.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{OrderID: "1", Title: "x", Amount: 1})
		if err == nil || err.Error() != "mp down" {
			t.Fatalf("expected mp down, got %v", err)
		}
	})
}

package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sien_official/internal/adapter/http/handlers/mocks"
	"sien_official/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/order", h.Create)
	r.GET("/api/order", MethodNotAllowed)
	return r
}

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stores form fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		created := 0
		r := newOrderRouter(NewOrderHandler(orders, func() { created++ }))

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any) (entities.Order, error) {
				if fields[entities.FieldSongTitle] != "夜に駆ける" {
					return entities.Order{}, errors.New("fields not forwarded")
				}
				return entities.Order{ID: "1748779200000"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(`{"曲名":"夜に駆ける","プラン":"Standard"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		want := `{"success":true,"message":"Order received","orderId":"1748779200000"}`
		if w.Body.String() != want {
			t.Fatalf("expected %s, got %s", want, w.Body.String())
		}
		if created != 1 {
			t.Fatalf("expected onCreated once, got %d", created)
		}
	})

	t.Run("empty body is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(orders, nil))

		orders.EXPECT().Create(gomock.Any(), gomock.Nil()).Return(entities.Order{ID: "1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/order", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(`{"曲名":`)))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		created := false
		r := newOrderRouter(NewOrderHandler(orders, func() { created = true }))

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("db down")) {
			t.Fatalf("store error leaked: %s", w.Body.String())
		}
		if created {
			t.Fatal("onCreated must not run on failure")
		}
	})

	t.Run("other methods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/order", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})
}

package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		if e.Error() != "ORDER_NOT_FOUND: Order not found" {
			t.Fatalf("unexpected error text: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Error != "Order not found" || body.Code != "ORDER_NOT_FOUND" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("dynamodb unavailable")
		e := NewDomainError("INTERNAL_ERROR", "Server Error", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.ToHTTPError().Error != "Server Error" {
			t.Fatalf("cause must not leak into the body: %+v", e.ToHTTPError())
		}
	})
}

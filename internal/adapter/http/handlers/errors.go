package handlers

import (
	"errors"
	"net/http"

	"sien_official/internal/usecase"
	"sien_official/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
	errMethodNotAllowed = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method Not Allowed", http.StatusMethodNotAllowed)
)

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownAction):
		return pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown portfolio category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPayload):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Server Error", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// MethodNotAllowed answers 405 for verbs a route does not serve.
func MethodNotAllowed(c *gin.Context) {
	writeError(c, errMethodNotAllowed)
}

package usecase

import "errors"

var (
	ErrOrderNotFound               = errors.New("order not found")
	ErrInvalidOrderID              = errors.New("invalid order id")
	ErrUnknownAction               = errors.New("unknown action")
	ErrInvalidPayload              = errors.New("invalid payload")
	ErrInvalidCategory             = errors.New("invalid portfolio category")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

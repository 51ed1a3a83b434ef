package interfaces

import "context"

// PaymentLinkRequest describes the checkout a client is asked to pay.
type PaymentLinkRequest struct {
	OrderID string
	Title   string
	Amount  float64
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (link string, err error)
}

package payments

import (
	"context"
	"errors"
	"net/url"

	"sien_official/internal/config"
	"sien_official/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMissingInitPoint = errors.New("mercado pago preference has no init_point")

const mockCheckoutURL = "https://sandbox.mercadopago.com/checkout/v1/redirect"

// PreferenceCreator is the part of preference.Client the gateway calls.
type PreferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway turns a payment request into a hosted checkout link (preference init_point).
type MercadoPagoGateway struct {
	client   PreferenceCreator
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.PaymentsConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "payment_gateway"))

	if cfg.Mock {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger}, nil
	}

	if cfg.AccessToken == "" {
		logger.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(sdkCfg), logger: logger}, nil
}

// NewMercadoPagoGatewayWithClient is used by tests and by callers that build their own SDK client.
func NewMercadoPagoGatewayWithClient(client PreferenceCreator, logger *zap.Logger) *MercadoPagoGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MercadoPagoGateway{client: client, logger: logger}
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (string, error) {
	if g != nil && g.mockMode {
		link := mockCheckoutURL + "?pref_id=" + url.QueryEscape("mock-"+req.OrderID)
		g.logger.Info("mock payment link created", zap.String("order_id", req.OrderID))
		return link, nil
	}

	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: req.OrderID,
		Items: []preference.ItemRequest{
			{
				ID:        req.OrderID,
				Title:     req.Title,
				Quantity:  1,
				UnitPrice: req.Amount,
			},
		},
	})
	if err != nil {
		g.logger.Error("sdk create preference failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return "", err
	}
	if resp == nil || resp.InitPoint == "" {
		return "", ErrMissingInitPoint
	}

	g.logger.Info("payment link created", zap.String("order_id", req.OrderID), zap.String("preference_id", resp.ID))
	return resp.InitPoint, nil
}

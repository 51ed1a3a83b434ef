package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"
)

// Admin write actions accepted by POST /api/admin.
const (
	ActionUpdatePortfolio   = "update_portfolio"
	ActionUpdatePrices      = "update_prices"
	ActionUpdateNews        = "update_news"
	ActionUpdateVoices      = "update_voices"
	ActionUpdateOrderStatus = "update_order_status"
	ActionArchiveOrder      = "archive_order"
	ActionRestoreOrder      = "restore_order"
	ActionCreatePaymentLink = "create_payment_link"
)

// AdminActionRequest is the envelope of every admin write. Data is decoded per action.
type AdminActionRequest struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data"`
}

// FlexibleID accepts an id sent either as a JSON string or a JSON number.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

type UpdatePortfolioRequest struct {
	Category string                   `json:"category"`
	Items    []entities.PortfolioItem `json:"items"`
}

// UpdateOrderStatusRequest targets an order by id, or by list position when no id is given.
type UpdateOrderStatusRequest struct {
	OrderID  FlexibleID     `json:"orderId"`
	Index    *int           `json:"index"`
	Status   *string        `json:"status"`
	Deadline *string        `json:"deadline"`
	Updates  map[string]any `json:"updates"`
}

// ToPatch folds the top-level status and deadline over the free-form updates.
func (r UpdateOrderStatusRequest) ToPatch() entities.OrderPatch {
	merged := make(map[string]any, len(r.Updates)+2)
	for k, v := range r.Updates {
		merged[k] = v
	}
	if r.Status != nil {
		merged[entities.FieldStatus] = *r.Status
	}
	if r.Deadline != nil {
		merged[entities.FieldDeadline] = *r.Deadline
	}
	return entities.NewOrderPatch(merged)
}

type OrderIndexRequest struct {
	Index *int `json:"index"`
}

// UnmarshalJSON also accepts the index as a numeric string, which is what form inputs send.
func (r *OrderIndexRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Index json.RawMessage `json:"index"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw.Index) == 0 || string(raw.Index) == "null" {
		return nil
	}
	var i int
	if err := json.Unmarshal(raw.Index, &i); err == nil {
		r.Index = &i
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Index, &s); err != nil {
		return err
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	r.Index = &i
	return nil
}

type CreatePaymentLinkRequest struct {
	OrderID FlexibleID `json:"orderId"`
	Title   string     `json:"title"`
	Amount  float64    `json:"amount"`
}

func (r CreatePaymentLinkRequest) ToDomain() interfaces.PaymentLinkRequest {
	return interfaces.PaymentLinkRequest{
		OrderID: string(r.OrderID),
		Title:   strings.TrimSpace(r.Title),
		Amount:  r.Amount,
	}
}

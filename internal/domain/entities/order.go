package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OrderStatus is the free-form workflow state of a commission request.
//
// No transition table is enforced: the admin panel may write any value.
// The deadline alert scan only cares whether a status is terminal.
type OrderStatus string

const (
	OrderStatusNotStarted OrderStatus = "未着手"
	OrderStatusInProgress OrderStatus = "作業中"
	OrderStatusRevising   OrderStatus = "修正対応中"
	OrderStatusCancelled  OrderStatus = "キャンセル"
	OrderStatusDelivered  OrderStatus = "納品済み"
	OrderStatusClosed     OrderStatus = "取引終了"
	OrderStatusArchived   OrderStatus = "アーカイブ"
)

// IsTerminal reports whether orders in this status are excluded from deadline alerts.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCancelled, OrderStatusDelivered, OrderStatusClosed:
		return true
	}
	return false
}

// Reserved record keys. Everything else submitted by the intake form is kept in Order.Fields.
const (
	FieldID          = "id"
	FieldDate        = "date"
	FieldStatus      = "status"
	FieldDeadline    = "deadline"
	FieldAlertSent   = "alertSent"
	FieldPaymentLink = "paymentLink"
)

// Intake form keys used by notifications.
const (
	FieldClientName     = "ご依頼者名"
	FieldEmail          = "メールアドレス"
	FieldTwitterID      = "TwitterID(任意)"
	FieldContactMethod  = "希望する連絡手段"
	FieldSongTitle      = "曲名"
	FieldPlan           = "プラン"
	FieldRecordedSource = "レコーディング済み音源"
	FieldKeyChange      = "キー変更"
	FieldReferenceURL   = "参考URL(任意)"
	FieldRequestNotes   = "ご要望・ご質問・特記事項など"
)

const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Order is one customer commission request.
//
// Storage model (record store):
//   - lists "orders" (active) and "archive", newest first
//   - each element is a flat JSON object: reserved keys plus the opaque intake fields
type Order struct {
	ID        string
	CreatedAt time.Time
	Status    OrderStatus
	Deadline  string
	AlertSent bool

	// Fields carries the customer-supplied intake fields and any admin-added keys.
	Fields map[string]any
}

// Field returns an opaque field rendered as text, or "" when absent.
func (o Order) Field(name string) string {
	v, ok := o.Fields[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Clone returns a copy that does not share the Fields map.
func (o Order) Clone() Order {
	c := o
	c.Fields = make(map[string]any, len(o.Fields))
	for k, v := range o.Fields {
		c.Fields[k] = v
	}
	return c
}

func (o Order) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Fields)+5)
	for k, v := range o.Fields {
		out[k] = v
	}
	out[FieldID] = o.ID
	if !o.CreatedAt.IsZero() {
		out[FieldDate] = o.CreatedAt.UTC().Format(createdAtLayout)
	}
	out[FieldStatus] = string(o.Status)
	if o.Deadline != "" {
		out[FieldDeadline] = o.Deadline
	}
	if o.AlertSent {
		out[FieldAlertSent] = true
	}
	return json.Marshal(out)
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Order{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		switch k {
		case FieldID:
			o.ID = scalarString(v)
		case FieldDate:
			s := scalarString(v)
			if s == "" {
				continue
			}
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				// kept as written so the record still reads and re-saves unchanged
				o.Fields[k] = v
				continue
			}
			o.CreatedAt = t
		case FieldStatus:
			o.Status = OrderStatus(scalarString(v))
		case FieldDeadline:
			o.Deadline = strings.TrimSpace(scalarString(v))
		case FieldAlertSent:
			b, _ := v.(bool)
			o.AlertSent = b
		default:
			o.Fields[k] = v
		}
	}
	return nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

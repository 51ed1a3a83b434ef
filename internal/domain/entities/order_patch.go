package entities

// OrderPatch is a shallow, merge-if-present update of an order.
// Absent (nil) fields leave the stored value untouched.
type OrderPatch struct {
	Status    *OrderStatus
	Deadline  *string
	AlertSent *bool
	Fields    map[string]any
}

// NewOrderPatch splits a free-form update map into typed reserved fields and opaque fields.
// The immutable keys (id, date) are dropped.
func NewOrderPatch(updates map[string]any) OrderPatch {
	var p OrderPatch
	for k, v := range updates {
		switch k {
		case FieldID, FieldDate:
			continue
		case FieldStatus:
			s := OrderStatus(scalarString(v))
			p.Status = &s
		case FieldDeadline:
			d := scalarString(v)
			p.Deadline = &d
		case FieldAlertSent:
			if b, ok := v.(bool); ok {
				p.AlertSent = &b
			}
		default:
			if p.Fields == nil {
				p.Fields = make(map[string]any)
			}
			p.Fields[k] = v
		}
	}
	return p
}

// IsEmpty reports whether applying the patch would change nothing.
func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.Deadline == nil && p.AlertSent == nil && len(p.Fields) == 0
}

// ApplyTo returns o with the patch merged over it.
//
// alertSent only moves false -> true; a patch cannot clear it.
func (p OrderPatch) ApplyTo(o Order) Order {
	out := o.Clone()
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Deadline != nil {
		out.Deadline = *p.Deadline
	}
	if p.AlertSent != nil && *p.AlertSent {
		out.AlertSent = true
	}
	for k, v := range p.Fields {
		out.Fields[k] = v
	}
	return out
}

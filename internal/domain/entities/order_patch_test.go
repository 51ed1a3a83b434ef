package entities

import "testing"

func TestNewOrderPatch(t *testing.T) {
	p := NewOrderPatch(map[string]any{
		"id":          "hijack",
		"date":        "2000-01-01T00:00:00Z",
		"status":      "作業中",
		"deadline":    "2025-04-01",
		"alertSent":   true,
		"paymentLink": "https://example.test/pay",
	})

	if p.Status == nil || *p.Status != OrderStatusInProgress {
		t.Fatalf("unexpected status: %v", p.Status)
	}
	if p.Deadline == nil || *p.Deadline != "2025-04-01" {
		t.Fatalf("unexpected deadline: %v", p.Deadline)
	}
	if p.AlertSent == nil || !*p.AlertSent {
		t.Fatalf("unexpected alertSent: %v", p.AlertSent)
	}
	if _, ok := p.Fields["id"]; ok {
		t.Fatalf("id must be dropped")
	}
	if _, ok := p.Fields["date"]; ok {
		t.Fatalf("date must be dropped")
	}
	if p.Fields[FieldPaymentLink] != "https://example.test/pay" {
		t.Fatalf("unexpected fields: %v", p.Fields)
	}
}

func TestOrderPatch_ApplyTo(t *testing.T) {
	base := Order{
		ID:       "1",
		Status:   OrderStatusNotStarted,
		Deadline: "2025-01-01",
		Fields:   map[string]any{FieldSongTitle: "King", FieldPlan: "MIX"},
	}

	t.Run("only patched fields change", func(t *testing.T) {
		status := OrderStatusInProgress
		p := OrderPatch{Status: &status, Fields: map[string]any{FieldPlan: "SPEED"}}
		got := p.ApplyTo(base)
		if got.Status != OrderStatusInProgress || got.Field(FieldPlan) != "SPEED" {
			t.Fatalf("patched fields not applied: %+v", got)
		}
		if got.Deadline != "2025-01-01" || got.Field(FieldSongTitle) != "King" || got.ID != "1" {
			t.Fatalf("unpatched fields changed: %+v", got)
		}
		if base.Field(FieldPlan) != "MIX" {
			t.Fatalf("ApplyTo mutated its input")
		}
	})

	t.Run("alertSent cannot be cleared", func(t *testing.T) {
		sent := base
		sent.AlertSent = true
		f := false
		got := OrderPatch{AlertSent: &f}.ApplyTo(sent)
		if !got.AlertSent {
			t.Fatalf("alertSent went back to false")
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		if !(OrderPatch{}).IsEmpty() {
			t.Fatalf("expected empty patch")
		}
		if NewOrderPatch(map[string]any{"id": "x"}).IsEmpty() != true {
			t.Fatalf("patch with only immutable keys must be empty")
		}
	})
}

package request

import (
	"encoding/json"
	"testing"

	"sien_official/internal/domain/entities"
)

func TestFlexibleID(t *testing.T) {
	cases := map[string]string{
		`"1740821400000"`: "1740821400000",
		`1740821400000`:   "1740821400000",
		`" 42 "`:          "42",
	}
	for in, want := range cases {
		var f FlexibleID
		if err := json.Unmarshal([]byte(in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if string(f) != want {
			t.Fatalf("expected %q, got %q", want, f)
		}
	}

	var f FlexibleID
	if err := json.Unmarshal([]byte(`{}`), &f); err == nil {
		t.Fatalf("expected error for object id")
	}
}

func TestUpdateOrderStatusRequest_ToPatch(t *testing.T) {
	var req UpdateOrderStatusRequest
	body := `{"orderId":"1","status":"作業中","deadline":"2025-06-10","updates":{"status":"ignored","memo":"x","id":"forged"}}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := req.ToPatch()
	if p.Status == nil || *p.Status != entities.OrderStatusInProgress {
		t.Fatalf("top-level status must win: %+v", p.Status)
	}
	if p.Deadline == nil || *p.Deadline != "2025-06-10" {
		t.Fatalf("unexpected deadline: %+v", p.Deadline)
	}
	if p.Fields["memo"] != "x" {
		t.Fatalf("expected memo in fields: %+v", p.Fields)
	}
	if _, ok := p.Fields["id"]; ok {
		t.Fatalf("id must not be patchable")
	}
}

func TestOrderIndexRequest(t *testing.T) {
	cases := []struct {
		body    string
		want    *int
		wantErr bool
	}{
		{body: `{"index":2}`, want: intPtr(2)},
		{body: `{"index":"3"}`, want: intPtr(3)},
		{body: `{}`, want: nil},
		{body: `{"index":null}`, want: nil},
		{body: `{"index":"abc"}`, wantErr: true},
	}
	for _, tc := range cases {
		var r OrderIndexRequest
		err := json.Unmarshal([]byte(tc.body), &r)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.body)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.body, err)
		}
		if (tc.want == nil) != (r.Index == nil) || (tc.want != nil && *tc.want != *r.Index) {
			t.Fatalf("%s: expected %v, got %v", tc.body, tc.want, r.Index)
		}
	}
}

func intPtr(i int) *int { return &i }

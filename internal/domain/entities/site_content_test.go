package entities

import (
	"encoding/json"
	"testing"
)

func TestNormalizeVideoID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"  https://youtu.be/dQw4w9WgXcQ?t=42 ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/CmDJUGPB-b8", "CmDJUGPB-b8"},
		{"https://www.youtube.com/watch?feature=share&v=e1xCOsgWG0M", "e1xCOsgWG0M"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"  video_id_1 ", "video_id_1"},
		{"https://youtu.be/short", "https://youtu.be/short"},
	}
	for _, tc := range cases {
		if got := NormalizeVideoID(tc.in); got != tc.want {
			t.Fatalf("NormalizeVideoID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPortfolioCategory_Valid(t *testing.T) {
	for _, c := range []PortfolioCategory{PortfolioWorks, PortfolioMix, PortfolioOrig} {
		if !c.Valid() {
			t.Fatalf("expected %s valid", c)
		}
	}
	if PortfolioCategory("orders").Valid() {
		t.Fatalf("orders must not be a portfolio category")
	}
}

func TestPortfolioItem_JSONKeepsUnknownKeys(t *testing.T) {
	cases := []struct {
		name string
		in   string
		id   string
		out  string
	}{
		{
			name: "extra keys untouched",
			in:   `{"id":"abc","priority":"1","plan_name":"Mix","meta":{"x":[1,2]}}`,
			id:   "abc",
			out:  `{"id":"abc","meta":{"x":[1,2]},"plan_name":"Mix","priority":"1"}`,
		},
		{
			name: "missing id",
			in:   `{"title":"t"}`,
			out:  `{"id":"","title":"t"}`,
		},
		{
			name: "numeric id kept as sent",
			in:   `{"id":123,"title":"t"}`,
			out:  `{"id":123,"title":"t"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p PortfolioItem
			if err := json.Unmarshal([]byte(tc.in), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.ID != tc.id {
				t.Fatalf("expected id %q, got %q", tc.id, p.ID)
			}
			b, err := json.Marshal(p)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.out {
				t.Fatalf("expected %s, got %s", tc.out, b)
			}
		})
	}
}

func TestPortfolioItem_NormalizedIDWins(t *testing.T) {
	var p PortfolioItem
	if err := json.Unmarshal([]byte(`{"id":"https://youtu.be/dQw4w9WgXcQ","title":"t"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p.ID = NormalizeVideoID(p.ID)
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"id":"dQw4w9WgXcQ","title":"t"}` {
		t.Fatalf("unexpected JSON: %s", b)
	}
}

package entities

import (
	"encoding/json"
	"regexp"
	"strings"
)

// PortfolioCategory names one of the portfolio lists shown on the site.
type PortfolioCategory string

const (
	PortfolioWorks PortfolioCategory = "works"
	PortfolioMix   PortfolioCategory = "mix"
	PortfolioOrig  PortfolioCategory = "orig"
)

func (c PortfolioCategory) Valid() bool {
	switch c {
	case PortfolioWorks, PortfolioMix, PortfolioOrig:
		return true
	}
	return false
}

// PortfolioItem is one embedded YouTube video.
//
// ID is the only key the server interprets. Every other key (title, priority, comment, ...)
// is kept as the raw JSON the admin sent, so fields added by the admin UI survive a round trip.
type PortfolioItem struct {
	ID     string
	Fields map[string]json.RawMessage
}

func (p PortfolioItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Fields)+1)
	for k, v := range p.Fields {
		out[k] = v
	}
	if _, kept := out[fieldPortfolioID]; !kept || p.ID != "" {
		id, err := json.Marshal(p.ID)
		if err != nil {
			return nil, err
		}
		out[fieldPortfolioID] = id
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a string id into ID. A non-string id stays in Fields untouched.
func (p *PortfolioItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = PortfolioItem{Fields: raw}
	if v, ok := raw[fieldPortfolioID]; ok {
		var id string
		if err := json.Unmarshal(v, &id); err == nil {
			p.ID = id
			delete(p.Fields, fieldPortfolioID)
		}
	}
	return nil
}

const fieldPortfolioID = "id"

// Whole-value sections are stored as the admin sent them. These are what an absent key reads as.
var (
	DefaultPrices = json.RawMessage(`{}`)
	DefaultNews   = json.RawMessage(`{"text":"","visible":false}`)
	DefaultVoices = json.RawMessage(`[]`)
)

// SiteContent is the public projection of the site: everything except orders.
//
// Prices is an object of plan lists keyed by service, News is {text, visible} and Voices is
// a list of testimonials. Their inner shape belongs to the front end.
type SiteContent struct {
	Works  []PortfolioItem
	Mix    []PortfolioItem
	Orig   []PortfolioItem
	Prices json.RawMessage
	News   json.RawMessage
	Voices json.RawMessage
}

var youTubeIDPattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// NormalizeVideoID reduces a pasted YouTube URL to its 11-character video id.
// Input that does not yield exactly 11 characters is returned trimmed but otherwise verbatim.
func NormalizeVideoID(raw string) string {
	id := strings.TrimSpace(raw)
	m := youTubeIDPattern.FindStringSubmatch(id)
	if m != nil && len(m[2]) == 11 {
		return m[2]
	}
	return id
}

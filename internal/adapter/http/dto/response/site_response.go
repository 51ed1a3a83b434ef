package response

import (
	"encoding/json"

	"sien_official/internal/domain/entities"
)

// PublicContentResponse is the unauthenticated projection. It has no order fields by construction.
type PublicContentResponse struct {
	Works  []entities.PortfolioItem `json:"works"`
	Mix    []entities.PortfolioItem `json:"mix"`
	Orig   []entities.PortfolioItem `json:"orig"`
	Prices json.RawMessage          `json:"prices" swaggertype:"object"`
	News   json.RawMessage          `json:"news" swaggertype:"object"`
	Voices json.RawMessage          `json:"voices" swaggertype:"array,object"`
}

func FromSiteContent(c entities.SiteContent) PublicContentResponse {
	return PublicContentResponse{
		Works:  orEmpty(c.Works),
		Mix:    orEmpty(c.Mix),
		Orig:   orEmpty(c.Orig),
		Prices: rawOr(c.Prices, entities.DefaultPrices),
		News:   rawOr(c.News, entities.DefaultNews),
		Voices: rawOr(c.Voices, entities.DefaultVoices),
	}
}

type AdminContentResponse struct {
	PublicContentResponse
	Orders  []entities.Order `json:"orders"`
	Archive []entities.Order `json:"archive"`
}

func FromAdminContent(c entities.SiteContent, orders, archive []entities.Order) AdminContentResponse {
	return AdminContentResponse{
		PublicContentResponse: FromSiteContent(c),
		Orders:                orEmpty(orders),
		Archive:               orEmpty(archive),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func rawOr(raw, def json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return def
	}
	return raw
}

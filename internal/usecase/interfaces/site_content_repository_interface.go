package interfaces

import (
	"context"
	"encoding/json"

	"sien_official/internal/domain/entities"
)

// ISiteContentRepository persists the whole-value site keys. Every write replaces the stored value.
// Prices, news and voices are kept as raw JSON; an absent key reads as the entities default.
type ISiteContentRepository interface {
	GetPortfolio(ctx context.Context, category entities.PortfolioCategory) ([]entities.PortfolioItem, error)
	SetPortfolio(ctx context.Context, category entities.PortfolioCategory, items []entities.PortfolioItem) error
	GetPrices(ctx context.Context) (json.RawMessage, error)
	SetPrices(ctx context.Context, prices json.RawMessage) error
	GetNews(ctx context.Context) (json.RawMessage, error)
	SetNews(ctx context.Context, news json.RawMessage) error
	GetVoices(ctx context.Context) (json.RawMessage, error)
	SetVoices(ctx context.Context, voices json.RawMessage) error
}

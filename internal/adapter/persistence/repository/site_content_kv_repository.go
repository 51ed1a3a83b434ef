package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"
)

const (
	portfolioKeyPrefix = "portfolio_"
	pricesKey          = "site_prices"
	newsKey            = "site_news"
	voicesKey          = "site_voices"
)

// SiteContentKVRepository stores each site section as one whole JSON value.
// Prices, news and voices are written byte for byte. An absent key reads as the section's empty default.
type SiteContentKVRepository struct {
	store interfaces.IRecordStore
}

var _ interfaces.ISiteContentRepository = (*SiteContentKVRepository)(nil)

func NewSiteContentKVRepository(store interfaces.IRecordStore) *SiteContentKVRepository {
	return &SiteContentKVRepository{store: store}
}

func PortfolioKey(category entities.PortfolioCategory) string {
	return portfolioKeyPrefix + string(category)
}

func (r *SiteContentKVRepository) GetPortfolio(ctx context.Context, category entities.PortfolioCategory) ([]entities.PortfolioItem, error) {
	items := []entities.PortfolioItem{}
	if err := r.get(ctx, PortfolioKey(category), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.PortfolioItem{}
	}
	return items, nil
}

func (r *SiteContentKVRepository) SetPortfolio(ctx context.Context, category entities.PortfolioCategory, items []entities.PortfolioItem) error {
	if items == nil {
		items = []entities.PortfolioItem{}
	}
	return r.set(ctx, PortfolioKey(category), items)
}

func (r *SiteContentKVRepository) GetPrices(ctx context.Context) (json.RawMessage, error) {
	return r.getRaw(ctx, pricesKey, entities.DefaultPrices)
}

func (r *SiteContentKVRepository) SetPrices(ctx context.Context, prices json.RawMessage) error {
	return r.store.Set(ctx, pricesKey, orDefault(prices, entities.DefaultPrices))
}

func (r *SiteContentKVRepository) GetNews(ctx context.Context) (json.RawMessage, error) {
	return r.getRaw(ctx, newsKey, entities.DefaultNews)
}

func (r *SiteContentKVRepository) SetNews(ctx context.Context, news json.RawMessage) error {
	return r.store.Set(ctx, newsKey, orDefault(news, entities.DefaultNews))
}

func (r *SiteContentKVRepository) GetVoices(ctx context.Context) (json.RawMessage, error) {
	return r.getRaw(ctx, voicesKey, entities.DefaultVoices)
}

func (r *SiteContentKVRepository) SetVoices(ctx context.Context, voices json.RawMessage) error {
	return r.store.Set(ctx, voicesKey, orDefault(voices, entities.DefaultVoices))
}

// getRaw returns the stored JSON as is, or def when the key is absent or null.
func (r *SiteContentKVRepository) getRaw(ctx context.Context, key string, def json.RawMessage) (json.RawMessage, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return def, nil
	}
	return orDefault(raw, def), nil
}

func orDefault(raw, def json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return def
	}
	return raw
}

func (r *SiteContentKVRepository) get(ctx context.Context, key string, dst any) error {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (r *SiteContentKVRepository) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return r.store.Set(ctx, key, raw)
}

package usecase

import (
	"bytes"
	"context"
	"encoding/json"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"
)

// ISiteContentUseCase reads and replaces the public site sections.
// Every update replaces the whole section.
type ISiteContentUseCase interface {
	PublicContent(ctx context.Context) (entities.SiteContent, error)
	UpdatePortfolio(ctx context.Context, category entities.PortfolioCategory, items []entities.PortfolioItem) ([]entities.PortfolioItem, error)
	UpdatePrices(ctx context.Context, prices json.RawMessage) error
	UpdateNews(ctx context.Context, news json.RawMessage) error
	UpdateVoices(ctx context.Context, voices json.RawMessage) error
}

type SiteContentUseCase struct {
	repo interfaces.ISiteContentRepository
}

var _ ISiteContentUseCase = (*SiteContentUseCase)(nil)

func NewSiteContentUseCase(repo interfaces.ISiteContentRepository) *SiteContentUseCase {
	return &SiteContentUseCase{repo: repo}
}

// PublicContent returns every section except orders. Absent sections come back as empty defaults.
func (u *SiteContentUseCase) PublicContent(ctx context.Context) (entities.SiteContent, error) {
	var c entities.SiteContent
	var err error

	if c.Works, err = u.repo.GetPortfolio(ctx, entities.PortfolioWorks); err != nil {
		return entities.SiteContent{}, err
	}
	if c.Mix, err = u.repo.GetPortfolio(ctx, entities.PortfolioMix); err != nil {
		return entities.SiteContent{}, err
	}
	if c.Orig, err = u.repo.GetPortfolio(ctx, entities.PortfolioOrig); err != nil {
		return entities.SiteContent{}, err
	}
	if c.Prices, err = u.repo.GetPrices(ctx); err != nil {
		return entities.SiteContent{}, err
	}
	if c.News, err = u.repo.GetNews(ctx); err != nil {
		return entities.SiteContent{}, err
	}
	if c.Voices, err = u.repo.GetVoices(ctx); err != nil {
		return entities.SiteContent{}, err
	}
	return c, nil
}

// UpdatePortfolio normalizes every item id to a bare YouTube id before storing the list.
// Every other item key is stored untouched.
func (u *SiteContentUseCase) UpdatePortfolio(ctx context.Context, category entities.PortfolioCategory, items []entities.PortfolioItem) ([]entities.PortfolioItem, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	clean := make([]entities.PortfolioItem, 0, len(items))
	for _, it := range items {
		it.ID = entities.NormalizeVideoID(it.ID)
		clean = append(clean, it)
	}
	if err := u.repo.SetPortfolio(ctx, category, clean); err != nil {
		return nil, err
	}
	return clean, nil
}

// UpdatePrices stores the price table as sent. It must be a JSON object; null resets it.
func (u *SiteContentUseCase) UpdatePrices(ctx context.Context, prices json.RawMessage) error {
	if !isJSONKind(prices, '{') {
		return ErrInvalidPayload
	}
	return u.repo.SetPrices(ctx, prices)
}

// UpdateNews stores the banner as sent. It must be a JSON object; null resets it.
func (u *SiteContentUseCase) UpdateNews(ctx context.Context, news json.RawMessage) error {
	if !isJSONKind(news, '{') {
		return ErrInvalidPayload
	}
	return u.repo.SetNews(ctx, news)
}

// UpdateVoices stores the testimonials as sent. They must be a JSON array; null resets them.
func (u *SiteContentUseCase) UpdateVoices(ctx context.Context, voices json.RawMessage) error {
	if !isJSONKind(voices, '[') {
		return ErrInvalidPayload
	}
	return u.repo.SetVoices(ctx, voices)
}

// isJSONKind reports whether raw is valid JSON whose top-level value opens with delim, or is null.
func isJSONKind(raw json.RawMessage, delim byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return false
	}
	return trimmed[0] == delim || string(trimmed) == "null"
}

package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"sien_official/internal/domain/entities"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultSeed []byte

// seedYAML is the YAML shape accepted by `sienctl seed`. Section bodies are free-form
// and reach the store as the JSON rendering of the YAML.
type seedYAML struct {
	Portfolio map[entities.PortfolioCategory][]map[string]any `yaml:"portfolio"`
	Prices    map[string]any                                  `yaml:"prices"`
	News      map[string]any                                  `yaml:"news"`
	Voices    []any                                           `yaml:"voices"`
}

// seedFile is a parsed seed. Absent sections are nil and left untouched.
type seedFile struct {
	Portfolio map[entities.PortfolioCategory][]entities.PortfolioItem
	Prices    json.RawMessage
	News      json.RawMessage
	Voices    json.RawMessage
}

func parseSeed(data []byte) (seedFile, error) {
	var y seedYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return seedFile{}, fmt.Errorf("parse seed: %w", err)
	}

	s := seedFile{Portfolio: make(map[entities.PortfolioCategory][]entities.PortfolioItem, len(y.Portfolio))}
	for category, items := range y.Portfolio {
		if !category.Valid() {
			return seedFile{}, fmt.Errorf("parse seed: unknown portfolio category %q", category)
		}
		parsed := []entities.PortfolioItem{}
		if err := reencode(items, &parsed); err != nil {
			return seedFile{}, fmt.Errorf("parse seed: portfolio %s: %w", category, err)
		}
		s.Portfolio[category] = parsed
	}

	var err error
	if y.Prices != nil {
		if s.Prices, err = json.Marshal(y.Prices); err != nil {
			return seedFile{}, fmt.Errorf("parse seed: prices: %w", err)
		}
	}
	if y.News != nil {
		if s.News, err = json.Marshal(y.News); err != nil {
			return seedFile{}, fmt.Errorf("parse seed: news: %w", err)
		}
	}
	if y.Voices != nil {
		if s.Voices, err = json.Marshal(y.Voices); err != nil {
			return seedFile{}, fmt.Errorf("parse seed: voices: %w", err)
		}
	}
	return s, nil
}

func reencode(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func (c *cli) seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Overwrite portfolio and price content with seed data",
		Long: `Overwrites the site content sections present in the seed file.
Without --file the built-in defaults are applied (portfolio works/mix/orig and both price tables).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := defaultSeed
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				data = b
			}
			s, err := parseSeed(data)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			for _, category := range []entities.PortfolioCategory{entities.PortfolioWorks, entities.PortfolioMix, entities.PortfolioOrig} {
				items, ok := s.Portfolio[category]
				if !ok {
					continue
				}
				if _, err := c.svc.Site.UpdatePortfolio(ctx, category, items); err != nil {
					return err
				}
				fmt.Fprintf(out, "portfolio %s: %d items\n", category, len(items))
			}
			if s.Prices != nil {
				if err := c.svc.Site.UpdatePrices(ctx, s.Prices); err != nil {
					return err
				}
				fmt.Fprintln(out, "prices updated")
			}
			if s.News != nil {
				if err := c.svc.Site.UpdateNews(ctx, s.News); err != nil {
					return err
				}
				fmt.Fprintln(out, "news updated")
			}
			if s.Voices != nil {
				if err := c.svc.Site.UpdateVoices(ctx, s.Voices); err != nil {
					return err
				}
				fmt.Fprintln(out, "voices updated")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "seed YAML file (defaults to the built-in content)")
	return cmd
}

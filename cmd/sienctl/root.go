package main

import (
	"context"
	"encoding/json"
	"io"

	"sien_official/internal/app"

	"github.com/spf13/cobra"
)

type servicesFactory func(ctx context.Context) (*app.Services, error)

type cli struct {
	build servicesFactory
	svc   *app.Services
}

func newRootCmd(build servicesFactory) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:           "sienctl",
		Short:         "Operator tool for the Sien Official backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			c.svc = svc
			return nil
		},
	}

	root.AddCommand(c.scanCmd())
	root.AddCommand(c.seedCmd())
	root.AddCommand(c.ordersCmd())
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

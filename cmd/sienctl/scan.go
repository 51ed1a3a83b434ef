package main

import (
	"time"

	"github.com/spf13/cobra"
)

func (c *cli) scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run one deadline alert scan and print {checked, sent}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.svc.Alerts.ScanAndAlert(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

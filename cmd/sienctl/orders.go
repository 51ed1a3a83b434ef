package main

import (
	"fmt"
	"strconv"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase"

	"github.com/spf13/cobra"
)

func (c *cli) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and move orders",
	}
	cmd.AddCommand(c.ordersListCmd())
	cmd.AddCommand(c.ordersMoveCmd("archive", "Move the active order at INDEX to the archive"))
	cmd.AddCommand(c.ordersMoveCmd("restore", "Move the archived order at INDEX back to the active list"))
	return cmd
}

func (c *cli) ordersListCmd() *cobra.Command {
	var (
		skip, limit int
		archive     bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a page of active orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				orders []entities.Order
				err    error
			)
			if archive {
				orders, err = c.svc.Orders.ListArchive(cmd.Context())
			} else {
				orders, err = c.svc.Orders.ListPage(cmd.Context(), skip, limit)
			}
			if err != nil {
				return err
			}
			if orders == nil {
				orders = []entities.Order{}
			}
			return printJSON(cmd.OutOrStdout(), orders)
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "orders to skip")
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultPageLimit, "orders per page")
	cmd.Flags().BoolVar(&archive, "archive", false, "list the archive instead")
	return cmd
}

func (c *cli) ordersMoveCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " INDEX",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("INDEX must be an integer: %w", err)
			}
			move := c.svc.Orders.ArchiveByIndex
			if name == "restore" {
				move = c.svc.Orders.RestoreByIndex
			}
			moved, err := move(cmd.Context(), index)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Fprintf(cmd.OutOrStdout(), "no order at index %d\n", index)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order at index %d moved (%s)\n", index, name)
			return nil
		},
	}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearOrdersYes bool

var clearOrdersCmd = &cobra.Command{
	Use:   "clear-orders",
	Short: "Delete all orders and order items, keeping users and medicines",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		orders, items, err := s.OrderCounts(ctx)
		if err != nil {
			return err
		}
		if orders == 0 && items == 0 {
			fmt.Println("No orders found - order history is already clean")
			return nil
		}

		fmt.Printf("Found %d orders and %d order items in %s\n", orders, items, cfg.DatabasePath)
		if !clearOrdersYes && !confirm("Delete ALL order history?") {
			fmt.Println("Aborted")
			return nil
		}

		delOrders, delItems, err := s.ClearOrderHistory(ctx)
		if err != nil {
			return err
		}
		logger.Info().Int64("orders", delOrders).Int64("items", delItems).Msg("order history cleared")
		fmt.Printf("Removed %d orders and %d order items\n", delOrders, delItems)
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	clearOrdersCmd.Flags().BoolVar(&clearOrdersYes, "yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(clearOrdersCmd)
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pharmatool/internal/search"
)

var (
	searchThreshold float64
	searchLimit     int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run the bot's fuzzy medicine search against the database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		meds, err := s.ActiveMedicines(context.Background())
		if err != nil {
			return err
		}

		opt := search.DefaultOptions()
		opt.Threshold = searchThreshold
		opt.Limit = searchLimit

		results := search.NewIndex(meds).Search(query, opt)
		if len(results) == 0 {
			fmt.Printf("No matches for %q above threshold %.2f\n", query, opt.Threshold)
			return nil
		}

		fmt.Printf("Matches for %q:\n", query)
		for i, r := range results {
			fmt.Printf("%d. %s - %.3f (%d%%) - %.2f ETB, stock %d\n",
				i+1, r.Medicine.Name, r.Score, int(r.Score*100), r.Medicine.Price, r.Medicine.Stock)
		}
		return nil
	},
}

func init() {
	def := search.DefaultOptions()
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", def.Threshold, "minimum similarity score")
	searchCmd.Flags().IntVar(&searchLimit, "limit", def.Limit, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

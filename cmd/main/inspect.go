package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the bot's tables in a new database file",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Init(context.Background()); err != nil {
			return err
		}
		logger.Info().Str("db", cfg.DatabasePath).Msg("schema initialized")
		fmt.Printf("Database initialized at %s\n", cfg.DatabasePath)
		return nil
	},
}

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Show the contact settings stored in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		ok, err := s.HasContactSettings(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Contact settings table not found")
			return nil
		}

		settings, err := s.ContactSettings(ctx)
		if err != nil {
			return err
		}
		if len(settings) == 0 {
			fmt.Println("Contact settings table is empty")
			return nil
		}
		for _, c := range settings {
			fmt.Printf("%s: %s\n", c.Key, c.Value)
		}
		return nil
	},
}

var medicinesCmd = &cobra.Command{
	Use:   "medicines",
	Short: "List active medicines grouped by therapeutic category",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		meds, err := s.ActiveMedicines(context.Background())
		if err != nil {
			return err
		}

		categories := 0
		current := "\x00"
		for _, m := range meds {
			if m.Category != current {
				name := m.Category
				if name == "" {
					name = "Uncategorized"
				}
				fmt.Printf("\n%s:\n", name)
				current = m.Category
				categories++
			}
			fmt.Printf("  - %s - %.2f ETB (stock: %d)\n", m.Name, m.Price, m.Stock)
		}
		fmt.Printf("\nTotal: %d medicines in %d categories\n", len(meds), categories)
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Dump the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		tables, err := s.Tables(ctx)
		if err != nil {
			return err
		}
		for _, table := range tables {
			cols, err := s.TableColumns(ctx, table)
			if err != nil {
				return err
			}
			fmt.Printf("--- %s ---\n", table)
			for _, c := range cols {
				flags := ""
				if c.NotNull {
					flags += " NOT NULL"
				}
				if c.PrimaryKey {
					flags += " PK"
				}
				fmt.Printf("  %-22s %-12s%s\n", c.Name, c.Type, flags)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd, contactsCmd, medicinesCmd, schemaCmd)
}

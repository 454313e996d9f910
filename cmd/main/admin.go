package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pharmatool/internal/envfile"
	"pharmatool/internal/store"
)

var setAdminPromote bool

var setAdminCmd = &cobra.Command{
	Use:   "set-admin <telegram-id>",
	Short: "Write the admin's Telegram id into the settings file",
	Long: `Writes ADMIN_TELEGRAM_ID into the settings file the bot reads.
Get the id by messaging @userinfobot on Telegram. With --promote the
matching database user is also given the admin role.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("%q is not a valid Telegram id", args[0])
		}

		if err := envfile.Set(cfg.EnvFile, "ADMIN_TELEGRAM_ID", args[0]); err != nil {
			return err
		}
		fmt.Printf("Admin Telegram id set to %d in %s\n", id, cfg.EnvFile)

		if setAdminPromote {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.SetUserRole(context.Background(), id, store.RoleAdmin); err != nil {
				return fmt.Errorf("%w (the user must message the bot once first)", err)
			}
			fmt.Println("Database role updated to admin")
		}

		logger.Info().Int64("telegram_id", id).Bool("promoted", setAdminPromote).Msg("admin configured")
		return nil
	},
}

var adminStatusCmd = &cobra.Command{
	Use:   "admin-status",
	Short: "Check whether the configured admin id maps to an admin user",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Business: %s\n", cfg.BusinessName)
		if cfg.ContactPhone != "" {
			fmt.Printf("Contact:  %s\n", cfg.ContactPhone)
		}
		if cfg.ContactEmail != "" {
			fmt.Printf("Email:    %s\n", cfg.ContactEmail)
		}

		if cfg.AdminTelegramID == 0 {
			fmt.Println("\nNo admin id configured - run: pharmatool set-admin <telegram-id>")
			return nil
		}
		fmt.Printf("\nAdmin Telegram id: %d\n", cfg.AdminTelegramID)

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		u, err := s.UserByTelegramID(context.Background(), cfg.AdminTelegramID)
		if err != nil {
			return err
		}
		if u == nil {
			fmt.Println("User not found in database - they must message the bot once, then re-check")
			return nil
		}

		fmt.Printf("User:     %s %s (@%s)\n", u.FirstName, u.LastName, u.Username)
		fmt.Printf("Role:     %s\n", u.Role)
		if u.IsAdmin() {
			fmt.Println("Admin status confirmed")
		} else {
			fmt.Println("User exists but is not an admin - run: pharmatool set-admin --promote",
				cfg.AdminTelegramID)
		}
		return nil
	},
}

func init() {
	setAdminCmd.Flags().BoolVar(&setAdminPromote, "promote", false, "also set the database role to admin")
	rootCmd.AddCommand(setAdminCmd, adminStatusCmd)
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherhub/server/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	seedName     string
	seedEmail    string
	seedPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create an admin user",
	Long: `Create an admin user directly in the database.

Flags take precedence over the ADMIN_NAME, ADMIN_EMAIL, and ADMIN_PASSWORD
environment variables. Seeding is idempotent: an existing email is left
untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		if seedName != "" {
			cfg.AdminBootstrap.Name = seedName
		}
		if seedEmail != "" {
			cfg.AdminBootstrap.Email = seedEmail
		}
		if seedPassword != "" {
			cfg.AdminBootstrap.Password = seedPassword
		}
		if cfg.AdminBootstrap.Name == "" || cfg.AdminBootstrap.Email == "" || cfg.AdminBootstrap.Password == "" {
			return fmt.Errorf("name, email, and password are required")
		}

		logger := config.NewLogger(cfg.Logging)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		if err := bootstrapAdminUser(ctx, pool, cfg, logger); err != nil {
			return err
		}
		fmt.Println("admin user seeded")
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedName, "name", "", "admin display name")
	seedAdminCmd.Flags().StringVar(&seedEmail, "email", "", "admin email")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "", "admin password")
}

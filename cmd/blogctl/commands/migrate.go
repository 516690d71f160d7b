package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the embedded schema migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back the last migration
  status  - Show migration status
  version - Print the current schema version`,
}

func init() {
	for _, command := range []struct{ name, short string }{
		{"up", "Apply pending migrations"},
		{"down", "Roll back the last migration"},
		{"status", "Show migration status"},
		{"version", "Print the current schema version"},
	} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   command.name,
			Short: command.short,
			Args:  cobra.NoArgs,
			RunE:  runMigrate(command.name),
		})
	}

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(command string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sqldb, err := db.OpenSQL(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		return db.Migrate(ctx, sqldb, command)
	}
}

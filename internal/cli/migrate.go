package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cortexa/relay/internal/infrastructure/postgres"
	"github.com/cortexa/relay/internal/logger"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "migrate",
		Short:         "Apply pending database migrations and exit",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}

			pg, err := postgres.NewService(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer pg.Close()

			if err := pg.Migrate(cmd.Context()); err != nil {
				return err
			}

			log := logger.For(logger.DATABASE)
			log.Info().Msg("Migrations applied")
			return nil
		},
	}
}

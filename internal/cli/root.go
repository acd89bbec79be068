package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the root command for the cortexa CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cortexa",
		Short: "Cortexa chat relay",
		Long:  "Relays chat messages between Stream users and an OpenAI model, keeping history in PostgreSQL.",
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

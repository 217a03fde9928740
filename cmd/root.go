package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Diogo1912/jobbi/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobbi",
	Short: "AI-assisted job search aggregator",
	Long: `Jobbi collects job postings from public boards and your own list of
career pages, scores them against your preferences, and keeps a local
tracking board for applications.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if appInstance := app.GetAppFromContext(ctx); appInstance != nil {
		appInstance.Close()
	}
}

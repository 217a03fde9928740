package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/app"
	"github.com/Diogo1912/jobbi/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fetch jobs periodically in the foreground",
	Long: `Run fetch cycles on an interval until interrupted. The first cycle
starts immediately.`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		interval, _ := cmd.Flags().GetInt("interval")
		if interval <= 0 {
			interval = application.Config.WatchIntervalHours
		}
		if interval <= 0 {
			interval = 6
		}
		limit, _ := cmd.Flags().GetInt("limit")

		sched := scheduler.New(interval, func(ctx context.Context) {
			saved, err := runFetchCycle(ctx, application, limit, false)
			if err != nil && !errors.Is(err, app.ErrNoJobsFound) {
				log.Printf("[watch] fetch cycle failed: %v", err)
				return
			}
			log.Printf("[watch] cycle complete, %d new jobs", saved)
		})

		if err := sched.Start(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer sched.Stop()

		fmt.Printf("Watching for new jobs every %dh. Ctrl-C to stop.\n", interval)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		fmt.Println("\nStopping.")
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 0, "Hours between fetch cycles (default from config)")
	watchCmd.Flags().Int("limit", 30, "Maximum new jobs to save per cycle")
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/ai"
	"github.com/Diogo1912/jobbi/internal/app"
	"github.com/Diogo1912/jobbi/internal/database"
	"github.com/Diogo1912/jobbi/internal/extract"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url...]",
	Short: "Extract jobs from career pages with AI",
	Long: `Fetch each career page, reduce it to readable text, and ask the
configured AI provider to pull out job listings. Without arguments the URLs
saved via 'jobbi prefs urls' are used.`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		render, _ := cmd.Flags().GetBool("render")

		settings, err := database.GetSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			os.Exit(1)
		}

		urls := args
		if len(urls) == 0 {
			urls = settings.ScrapeURLs
		}
		if len(urls) == 0 {
			fmt.Println("No URLs to scrape. Add some with 'jobbi prefs urls --add <url>'")
			return
		}

		client, err := application.AIClient()
		if err != nil {
			if errors.Is(err, ai.ErrNotConfigured) {
				fmt.Println("AI provider not configured, nothing to do.")
				fmt.Println("Set a key with 'jobbi config set --key gemini_key --value <key>'")
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pipeline := extract.NewPipeline(client, application.HTTPClient, render)
		pipeline.Delay = application.ScrapeDelay()

		jobs := pipeline.ScrapeAll(cmd.Context(), urls)
		if len(jobs) == 0 {
			fmt.Println("No jobs extracted.")
			return
		}

		// Scraped jobs take the same rank-then-dedupe path as fetched ones.
		saved, err := persistRanked(rankCandidates(jobs, settings.Profile), 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n✓ Extracted %d jobs, saved %d new\n", len(jobs), saved)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	scrapeCmd.Flags().Bool("render", false, "Load pages in a headless browser before extraction")
}

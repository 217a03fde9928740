package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/ai"
	"github.com/Diogo1912/jobbi/internal/app"
	"github.com/Diogo1912/jobbi/internal/database"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate job suggestions from your profile",
	Long: `Ask the configured AI provider to suggest realistic openings matching
your preference profile. Suggestions are saved alongside fetched jobs with
source "AI Suggested".`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		save, _ := cmd.Flags().GetBool("save")

		settings, err := database.GetSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			os.Exit(1)
		}

		client, err := application.AIClient()
		if err != nil {
			if errors.Is(err, ai.ErrNotConfigured) {
				fmt.Println("AI provider not configured.")
				fmt.Println("Set a key with 'jobbi config set --key gemini_key --value <key>'")
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Generating suggestions...")
		jobs, err := client.GenerateListings(cmd.Context(), settings.Profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(jobs) == 0 {
			fmt.Println("No suggestions this time.")
			return
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("%d suggestions", len(jobs))))
		for i, job := range jobs {
			fmt.Printf("\n%d. %s\n", i+1, valueStyle.Render(job.Title))
			fmt.Printf("   %s %s · %s\n", labelStyle.Render("At:"), job.Company, job.Location)
			if job.Salary != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Salary:"), job.Salary)
			}
			fmt.Printf("   %s %s\n", labelStyle.Render("URL:"), job.URL)
		}

		if !save {
			fmt.Println("\nRun with --save to keep these in your job list.")
			return
		}

		// Suggestions take the same rank-then-dedupe path as fetched jobs.
		saved, err := persistRanked(rankCandidates(jobs, settings.Profile), 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n✓ Saved %d suggestions\n", saved)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().Bool("save", false, "Save suggestions to the job list")
}

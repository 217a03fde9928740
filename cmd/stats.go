package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/database"
	"github.com/Diogo1912/jobbi/pkg/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View collection and tracking statistics",
	Run: func(cmd *cobra.Command, args []string) {
		bySource, err := database.CountJobsBySource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		byStatus, err := database.CountTrackedByStatus()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logs, err := database.GetSearchLogs(5)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		total := 0
		for _, n := range bySource {
			total += n
		}

		fmt.Println(titleStyle.Render("Jobbi Statistics"))

		fmt.Printf("%s %d\n", labelStyle.Render("Saved Jobs:"), total)
		if total > 0 {
			sources := make([]string, 0, len(bySource))
			for s := range bySource {
				sources = append(sources, s)
			}
			sort.Strings(sources)
			for _, s := range sources {
				fmt.Printf("  %s: %d\n", s, bySource[s])
			}
		}

		tracked := 0
		for _, n := range byStatus {
			tracked += n
		}
		fmt.Printf("\n%s %d\n", labelStyle.Render("Tracked Applications:"), tracked)
		for _, status := range models.AllStatuses {
			if n := byStatus[status]; n > 0 {
				fmt.Printf("  %s: %d\n", status, n)
			}
		}

		if applied := byStatus[models.StatusApplied] + byStatus[models.StatusInterview] +
			byStatus[models.StatusOffer] + byStatus[models.StatusAccepted] +
			byStatus[models.StatusRejected]; applied > 0 {
			advanced := byStatus[models.StatusInterview] + byStatus[models.StatusOffer] +
				byStatus[models.StatusAccepted]
			fmt.Printf("\n%s %.1f%%\n", labelStyle.Render("Interview Rate:"),
				float64(advanced)/float64(applied)*100)
		}

		if len(logs) > 0 {
			fmt.Printf("\n%s\n", labelStyle.Render("Recent Fetches"))
			for _, l := range logs {
				query := l.Query
				if query == "" {
					query = "(no profile)"
				}
				fmt.Printf("  %s  %q, %d jobs\n", l.CreatedAt.Format("Jan 2 15:04"), query, l.JobsFound)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

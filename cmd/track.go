package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/database"
	"github.com/Diogo1912/jobbi/pkg/models"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track application progress",
}

var trackAddCmd = &cobra.Command{
	Use:   "add <job-id>",
	Short: "Add a job to the tracking board",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobID := parseJobID(args[0])
		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")

		trackWithStatus(jobID, status, notes)
	},
}

var trackUpdateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Change status or notes of a tracked job",
	Example: `  jobbi track update 12 --status APPLIED
  jobbi track update 12 --status INTERVIEW --notes "phone screen on Friday"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobID := parseJobID(args[0])
		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")

		trackWithStatus(jobID, status, notes)
	},
}

var trackRemoveCmd = &cobra.Command{
	Use:   "remove <job-id>",
	Short: "Remove a job from the tracking board",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobID := parseJobID(args[0])

		if err := database.RemoveTracked(jobID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fmt.Printf("Job %d is not on the board\n", jobID)
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Removed job %d from the board\n", jobID)
	},
}

var trackBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the tracking board grouped by status",
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := database.GetTrackedEntries()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("Nothing tracked yet. Start with 'jobbi track add <job-id>'")
			return
		}

		byStatus := map[models.JobStatus][]*database.TrackedEntry{}
		for _, e := range entries {
			byStatus[e.Tracked.Status] = append(byStatus[e.Tracked.Status], e)
		}

		fmt.Println(titleStyle.Render("Application Board"))
		for _, status := range models.AllStatuses {
			group := byStatus[status]
			if len(group) == 0 {
				continue
			}
			fmt.Printf("\n%s (%d)\n", labelStyle.Render(string(status)), len(group))
			for _, e := range group {
				fmt.Printf("  %s %s · %s\n", labelStyle.Render(fmt.Sprintf("#%d", e.Job.ID)),
					e.Job.Title, e.Job.Company)
				if e.Tracked.AppliedAt != nil {
					fmt.Printf("      %s %s\n", labelStyle.Render("Applied:"),
						e.Tracked.AppliedAt.Format("2006-01-02"))
				}
				if e.Tracked.Notes != "" {
					fmt.Printf("      %s %s\n", labelStyle.Render("Notes:"), e.Tracked.Notes)
				}
			}
		}
		fmt.Printf("\n%s %d\n", labelStyle.Render("Total:"), len(entries))
	},
}

func trackWithStatus(jobID int, status, notes string) {
	if !models.ValidStatus(status) {
		fmt.Fprintf(os.Stderr, "Invalid status %q. Valid: %v\n", status, models.AllStatuses)
		os.Exit(1)
	}

	err := database.TrackJob(jobID, models.JobStatus(strings.ToUpper(status)), notes)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fmt.Printf("No job with id %d. List jobs with 'jobbi jobs list'\n", jobID)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Job %d is now %s\n", jobID, strings.ToUpper(status))
}

func parseJobID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid job id: %s\n", arg)
		os.Exit(1)
	}
	return id
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackUpdateCmd)
	trackCmd.AddCommand(trackRemoveCmd)
	trackCmd.AddCommand(trackBoardCmd)

	trackAddCmd.Flags().String("status", "SAVED", "Initial status")
	trackAddCmd.Flags().String("notes", "", "Notes for this application")
	trackUpdateCmd.Flags().String("status", "SAVED", "New status")
	trackUpdateCmd.Flags().String("notes", "", "Notes for this application")
}

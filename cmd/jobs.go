package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/database"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse saved jobs",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved jobs",
	Run: func(cmd *cobra.Command, args []string) {
		sourceFilter, _ := cmd.Flags().GetString("source")

		jobs, err := database.GetAllJobs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching jobs: %v\n", err)
			os.Exit(1)
		}
		if len(jobs) == 0 {
			fmt.Println("No jobs saved yet. Run 'jobbi fetch' to get started.")
			return
		}

		shown := 0
		fmt.Println(titleStyle.Render("Saved Jobs"))
		for _, job := range jobs {
			if sourceFilter != "" && !strings.EqualFold(job.Source, sourceFilter) {
				continue
			}
			shown++
			fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("#%-4d", job.ID)),
				valueStyle.Render(fmt.Sprintf("%s · %s (%s, %s)", job.Title, job.Company, job.Location, job.Source)))
		}
		fmt.Printf("\n%s %d\n", labelStyle.Render("Total:"), shown)
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show full details of a saved job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid job id: %s\n", args[0])
			os.Exit(1)
		}

		job, err := database.GetJob(id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fmt.Printf("No job with id %d\n", id)
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(titleStyle.Render(job.Title))
		fmt.Printf("%s %s\n", labelStyle.Render("Company:"), job.Company)
		fmt.Printf("%s %s\n", labelStyle.Render("Location:"), job.Location)
		fmt.Printf("%s %s\n", labelStyle.Render("Type:"), job.Type)
		if job.Salary != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Salary:"), job.Salary)
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Source:"), job.Source)
		if job.URL != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("URL:"), job.URL)
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Posted:"), job.PostedAt.Format("2006-01-02"))
		if job.Description != "" {
			fmt.Printf("\n%s\n%s\n", labelStyle.Render("Description"), valueStyle.Render(job.Description))
		}
	},
}

var clearJobsCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved jobs",
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes every saved job and its tracking entry.")
			fmt.Println("Re-run with --yes to confirm.")
			return
		}

		n, err := database.DeleteAllJobs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Deleted %d jobs\n", n)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(showJobCmd)
	jobsCmd.AddCommand(clearJobsCmd)

	listJobsCmd.Flags().String("source", "", "Only show jobs from this source")
	clearJobsCmd.Flags().Bool("yes", false, "Skip confirmation")
}

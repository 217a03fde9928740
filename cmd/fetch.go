package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/aggregator"
	"github.com/Diogo1912/jobbi/internal/app"
	"github.com/Diogo1912/jobbi/internal/database"
	"github.com/Diogo1912/jobbi/internal/dedupe"
	"github.com/Diogo1912/jobbi/internal/keywords"
	"github.com/Diogo1912/jobbi/internal/matcher"
	"github.com/Diogo1912/jobbi/internal/source"
	"github.com/Diogo1912/jobbi/pkg/models"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch new jobs from all boards",
	Long: `Pull current postings from the built-in job boards, score them against
your preference profile, drop duplicates, and save the best matches.`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		saved, err := runFetchCycle(cmd.Context(), application, limit, all)
		if err != nil {
			if errors.Is(err, app.ErrNoJobsFound) {
				fmt.Println("No jobs found from any source. Please try again later.")
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if saved == 0 {
			fmt.Println("No new jobs matched. Try 'jobbi prefs set' to widen your profile.")
			return
		}
		fmt.Printf("\n✓ Saved %d new jobs. Browse them with 'jobbi jobs list'\n", saved)
	},
}

// runFetchCycle is one aggregation pass: fetch, rank, dedupe, persist. Shared
// with the watch command. Returns the number of newly saved jobs.
func runFetchCycle(ctx context.Context, application *app.App, limit int, all bool) (int, error) {
	settings, err := database.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}

	connectors := source.All(application.HTTPClient)
	raw := aggregator.FetchAll(ctx, connectors, application.FetchTimeout())
	if len(raw) == 0 {
		return 0, app.ErrNoJobsFound
	}

	// Mix sources so unranked output is not dominated by whichever board
	// answered first.
	aggregator.Shuffle(raw)

	profile := settings.Profile
	if all {
		// Unranked pass-through: everything is kept with score zero.
		profile = models.PreferenceProfile{}
	}
	scored := rankCandidates(raw, profile)

	saved, err := persistRanked(scored, limit)
	if err != nil {
		return saved, err
	}

	names := make([]string, len(connectors))
	for i, c := range connectors {
		names[i] = c.Name()
	}
	if err := database.LogSearch("Fetched from: "+strings.Join(names, ", "), saved); err != nil {
		return saved, err
	}
	return saved, nil
}

// rankCandidates scores candidates against the profile. When the profile
// filters out everything, it falls back to an unranked pass-through: better
// to surface unranked jobs than nothing. Every persistence path goes through
// this, whether candidates came from boards, scraped pages or AI suggestions.
func rankCandidates(raw []models.RawJob, profile models.PreferenceProfile) []models.ScoredJob {
	scored := matcher.Rank(raw, profile, keywords.DefaultTable)
	if len(scored) == 0 {
		scored = matcher.Rank(raw, models.PreferenceProfile{}, keywords.DefaultTable)
	}
	return scored
}

// persistRanked dedupes scored candidates against the stored corpus and saves
// the survivors, printing each with its score. Returns the number saved.
func persistRanked(scored []models.ScoredJob, limit int) (int, error) {
	known, err := database.KnownIdentities()
	if err != nil {
		return 0, fmt.Errorf("failed to load known jobs: %w", err)
	}

	candidates := make([]models.RawJob, len(scored))
	scoreByIdentity := make(map[dedupe.Identity]models.ScoredJob, len(scored))
	for i, s := range scored {
		candidates[i] = s.Job
		scoreByIdentity[dedupe.CompositeKey(s.Job.Title, s.Job.Company)] = s
	}
	fresh := dedupe.Dedupe(candidates, known)

	if limit > 0 && len(fresh) > limit {
		fresh = fresh[:limit]
	}

	saved := 0
	for _, rj := range fresh {
		job := persistable(rj)
		if err := database.CreateJob(job); err != nil {
			if errors.Is(err, database.ErrDuplicateJob) {
				continue
			}
			return saved, fmt.Errorf("failed to save job: %w", err)
		}
		saved++

		s := scoreByIdentity[dedupe.CompositeKey(rj.Title, rj.Company)]
		printScoredJob(job, s.Score, s.Reasons)
	}
	return saved, nil
}

// persistable normalizes a raw posting for storage.
func persistable(raw models.RawJob) *models.Job {
	postedAt := time.Now()
	if raw.PostedAt != nil {
		postedAt = *raw.PostedAt
	}
	return &models.Job{
		Title:       raw.Title,
		Company:     raw.Company,
		Location:    raw.Location,
		Type:        models.MapJobType(raw.Type),
		Salary:      raw.Salary,
		Description: raw.Description,
		URL:         raw.URL,
		Source:      raw.Source,
		PostedAt:    postedAt,
	}
}

func printScoredJob(job *models.Job, score int, reasons []string) {
	fmt.Printf("\n%s %s\n", labelStyle.Render(fmt.Sprintf("#%d", job.ID)), valueStyle.Render(job.Title))
	fmt.Printf("   %s %s · %s · %s\n", labelStyle.Render("At:"), job.Company, job.Location, job.Source)
	if job.Salary != "" {
		fmt.Printf("   %s %s\n", labelStyle.Render("Salary:"), job.Salary)
	}
	if score > 0 {
		fmt.Printf("   %s %s\n", labelStyle.Render("Score:"), scoreStyle.Render(fmt.Sprintf("%d", score)))
		for _, r := range reasons {
			fmt.Printf("     · %s\n", r)
		}
	}
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().Int("limit", 30, "Maximum number of new jobs to save")
	fetchCmd.Flags().Bool("all", false, "Save everything, skip preference scoring")
}

// Package matcher scores postings against the user's preference profile.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Diogo1912/jobbi/internal/keywords"
	"github.com/Diogo1912/jobbi/pkg/models"
)

// Scoring weights. These are contracts, not tunables: tests and stored scores
// depend on the exact arithmetic.
const (
	roleTitleWeight   = 20
	roleTextWeight    = 5
	skillWeight       = 10
	skillCap          = 30
	locationWeight    = 15
	remoteBonus       = 15
	industryWeight    = 10
	dealBreakerWeight = -100
)

// Score computes the weighted relevance of a job for the given profile and
// returns the score with the ordered list of match reasons.
func Score(job models.RawJob, profile models.PreferenceProfile, table keywords.Table) (int, []string) {
	title := strings.ToLower(job.Title)
	location := strings.ToLower(job.Location)
	// "elsewhere" for role keywords means description and company, not title.
	rest := strings.ToLower(job.Description + " " + job.Company)
	text := title + " " + rest

	score := 0
	var reasons []string

	for _, kw := range table.Extract(profile.DesiredRoles) {
		switch {
		case strings.Contains(title, kw):
			score += roleTitleWeight
			reasons = append(reasons, fmt.Sprintf("role %q in title", kw))
		case strings.Contains(rest, kw):
			score += roleTextWeight
			reasons = append(reasons, fmt.Sprintf("role %q in description", kw))
		}
	}

	skillScore := 0
	for _, kw := range table.Extract(profile.Skills) {
		if !strings.Contains(text, kw) {
			continue
		}
		skillScore += skillWeight
		reasons = append(reasons, fmt.Sprintf("skill %q", kw))
	}
	if skillScore > skillCap {
		skillScore = skillCap
	}
	score += skillScore

	for _, kw := range table.Extract(profile.PreferredLocations) {
		if strings.Contains(location, kw) {
			score += locationWeight
			reasons = append(reasons, fmt.Sprintf("location %q", kw))
			break // flat bonus, not per keyword
		}
	}

	if strings.Contains(strings.ToLower(profile.RemotePreference), "remote") {
		if models.MapJobType(job.Type) == models.JobTypeRemote || strings.Contains(location, "remote") {
			score += remoteBonus
			reasons = append(reasons, "remote match")
		}
	}

	for _, kw := range table.Extract(profile.Industries) {
		if strings.Contains(text, kw) {
			score += industryWeight
			reasons = append(reasons, fmt.Sprintf("industry %q", kw))
			break
		}
	}

	// Strong penalty, not a hard veto: enough role-title matches can still
	// outweigh it.
	for _, kw := range table.Extract(profile.DealBreakers) {
		if strings.Contains(text, kw) {
			score += dealBreakerWeight
			reasons = append(reasons, fmt.Sprintf("deal-breaker %q", kw))
			break
		}
	}

	return score, reasons
}

// Rank scores every job, filters to positive scores and sorts descending.
// Ties preserve input order. A profile with no role, skill or industry
// keywords disables scoring entirely: every candidate passes through
// unranked with score zero.
func Rank(jobs []models.RawJob, profile models.PreferenceProfile, table keywords.Table) []models.ScoredJob {
	scored := make([]models.ScoredJob, 0, len(jobs))

	if emptyProfile(profile, table) {
		for _, job := range jobs {
			scored = append(scored, models.ScoredJob{Job: job})
		}
		return scored
	}

	for _, job := range jobs {
		score, reasons := Score(job, profile, table)
		if score <= 0 {
			continue
		}
		scored = append(scored, models.ScoredJob{Job: job, Score: score, Reasons: reasons})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func emptyProfile(profile models.PreferenceProfile, table keywords.Table) bool {
	return len(table.Extract(profile.DesiredRoles)) == 0 &&
		len(table.Extract(profile.Skills)) == 0 &&
		len(table.Extract(profile.Industries)) == 0
}

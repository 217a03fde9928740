package matcher

import (
	"testing"

	"github.com/Diogo1912/jobbi/internal/keywords"
	"github.com/Diogo1912/jobbi/pkg/models"
)

var table = keywords.DefaultTable

func TestScoreRoleTitleBeatsDescription(t *testing.T) {
	profile := models.PreferenceProfile{DesiredRoles: "engineer"}

	inTitle := models.RawJob{Title: "Software Engineer", Company: "Acme"}
	inDesc := models.RawJob{Title: "Open Position", Company: "Acme", Description: "We need an engineer"}

	titleScore, _ := Score(inTitle, profile, table)
	descScore, _ := Score(inDesc, profile, table)

	if titleScore != 20 {
		t.Errorf("title match score = %d, expected 20", titleScore)
	}
	if descScore != 5 {
		t.Errorf("description match score = %d, expected 5", descScore)
	}
}

func TestScoreRoleKeywordsUncapped(t *testing.T) {
	profile := models.PreferenceProfile{DesiredRoles: "senior backend golang engineer"}
	job := models.RawJob{Title: "Senior Backend Golang Engineer", Company: "Acme"}

	score, reasons := Score(job, profile, table)
	if score != 80 {
		t.Errorf("score = %d, expected 80 (4 title matches x 20), reasons: %v", score, reasons)
	}
}

func TestScoreSkillCap(t *testing.T) {
	profile := models.PreferenceProfile{Skills: "go, python, rust, kubernetes, docker"}
	job := models.RawJob{
		Title:       "Platform Engineer",
		Company:     "Acme",
		Description: "go python rust kubernetes docker",
	}

	score, _ := Score(job, profile, table)
	if score != 30 {
		t.Errorf("skill contribution should cap at 30, got %d", score)
	}
}

func TestScoreLocationFlat(t *testing.T) {
	profile := models.PreferenceProfile{PreferredLocations: "berlin, munich"}
	job := models.RawJob{Title: "Engineer", Company: "Acme", Location: "Berlin or Munich"}

	score, _ := Score(job, profile, table)
	if score != 15 {
		t.Errorf("location bonus should be flat +15, got %d", score)
	}
}

func TestScoreRemoteBonus(t *testing.T) {
	profile := models.PreferenceProfile{RemotePreference: "remote only please"}

	tests := []struct {
		name     string
		job      models.RawJob
		expected int
	}{
		{
			name:     "normalized remote type",
			job:      models.RawJob{Title: "Engineer", Type: "REMOTE", Location: "Anywhere"},
			expected: 15,
		},
		{
			name:     "remote in location string",
			job:      models.RawJob{Title: "Engineer", Type: "FULL_TIME", Location: "Remote (EU)"},
			expected: 15,
		},
		{
			name:     "on-site job gets nothing",
			job:      models.RawJob{Title: "Engineer", Type: "FULL_TIME", Location: "London"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := Score(tt.job, profile, table)
			if score != tt.expected {
				t.Errorf("score = %d, expected %d", score, tt.expected)
			}
		})
	}
}

func TestScoreDealBreakerExactPenalty(t *testing.T) {
	job := models.RawJob{Title: "Software Engineer", Company: "Acme", Description: "heavy php legacy"}
	base := models.PreferenceProfile{DesiredRoles: "engineer"}
	withBreaker := models.PreferenceProfile{DesiredRoles: "engineer", DealBreakers: "php"}

	baseScore, _ := Score(job, base, table)
	penalized, _ := Score(job, withBreaker, table)

	if baseScore-penalized != 100 {
		t.Errorf("deal-breaker should cost exactly 100: %d vs %d", baseScore, penalized)
	}
}

func TestScoreDealBreakerNotAbsoluteVeto(t *testing.T) {
	// Six role keywords in the title outweigh the -100 penalty.
	profile := models.PreferenceProfile{
		DesiredRoles: "senior staff backend golang platform engineer",
		DealBreakers: "oncall",
	}
	job := models.RawJob{
		Title:       "Senior Staff Backend Golang Platform Engineer",
		Company:     "Acme",
		Description: "weekly oncall rotation",
	}

	score, _ := Score(job, profile, table)
	if score != 20 {
		t.Errorf("score = %d, expected 20 (120 - 100)", score)
	}
}

func TestRankEmptyProfilePassThrough(t *testing.T) {
	jobs := []models.RawJob{
		{Title: "Zebra Handler", Company: "Zoo"},
		{Title: "Accountant", Company: "Ledger Inc"},
	}

	got := Rank(jobs, models.PreferenceProfile{PreferredLocations: "berlin"}, table)
	if len(got) != len(jobs) {
		t.Fatalf("empty profile should pass all %d jobs, got %d", len(jobs), len(got))
	}
	for i, sj := range got {
		if sj.Job.Title != jobs[i].Title || sj.Score != 0 {
			t.Errorf("pass-through should preserve order and leave scores at 0: %+v", sj)
		}
	}
}

func TestRankFiltersAndSorts(t *testing.T) {
	profile := models.PreferenceProfile{DesiredRoles: "engineer", Skills: "python"}
	jobs := []models.RawJob{
		{Title: "Software Engineer", Company: "Acme", Description: "Python required"},
		{Title: "Sales Rep", Company: "Acme", Description: "no tech"},
	}

	got := Rank(jobs, profile, table)
	if len(got) != 1 {
		t.Fatalf("expected only the engineer job to survive, got %d results", len(got))
	}
	if got[0].Job.Title != "Software Engineer" {
		t.Errorf("wrong survivor: %v", got[0].Job.Title)
	}
	if got[0].Score < 20 || got[0].Score > 30 {
		t.Errorf("score = %d, expected title role match (20) plus skill (10)", got[0].Score)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	profile := models.PreferenceProfile{DesiredRoles: "engineer"}
	jobs := []models.RawJob{
		{Title: "Engineer", Company: "First"},
		{Title: "Engineer", Company: "Second"},
		{Title: "Engineer", Company: "Third"},
	}

	got := Rank(jobs, profile, table)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, company := range []string{"First", "Second", "Third"} {
		if got[i].Job.Company != company {
			t.Errorf("tie-break should preserve input order, position %d is %s", i, got[i].Job.Company)
		}
	}
}

func TestRankDescending(t *testing.T) {
	profile := models.PreferenceProfile{DesiredRoles: "engineer"}
	jobs := []models.RawJob{
		{Title: "Manager", Company: "Acme", Description: "engineer adjacent"}, // 5
		{Title: "Engineer", Company: "Acme"},                                  // 20
	}

	got := Rank(jobs, profile, table)
	if len(got) != 2 || got[0].Score != 20 || got[1].Score != 5 {
		t.Errorf("expected descending scores [20 5], got %+v", got)
	}
}

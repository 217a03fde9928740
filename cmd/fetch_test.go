package cmd

import (
	"path/filepath"
	"testing"

	"github.com/Diogo1912/jobbi/internal/database"
	"github.com/Diogo1912/jobbi/pkg/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if err := database.Initialize(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("database.Initialize: %v", err)
	}
	t.Cleanup(func() { database.Close() })
}

func TestRankCandidatesScoresAndFilters(t *testing.T) {
	profile := models.PreferenceProfile{DesiredRoles: "engineer"}
	raw := []models.RawJob{
		{Title: "Backend Engineer", Company: "Acme"},
		{Title: "Sales Rep", Company: "Acme"},
	}

	got := rankCandidates(raw, profile)
	if len(got) != 1 {
		t.Fatalf("expected only the engineer to survive, got %d", len(got))
	}
	if got[0].Job.Title != "Backend Engineer" || got[0].Score == 0 {
		t.Errorf("survivor should carry a score: %+v", got[0])
	}
}

func TestRankCandidatesFallbackWhenFiltered(t *testing.T) {
	// A profile that matches nothing falls back to an unranked pass-through.
	profile := models.PreferenceProfile{DesiredRoles: "astronaut"}
	raw := []models.RawJob{
		{Title: "Sales Rep", Company: "Acme"},
		{Title: "Accountant", Company: "Ledger Inc"},
	}

	got := rankCandidates(raw, profile)
	if len(got) != len(raw) {
		t.Fatalf("fallback should keep all %d jobs, got %d", len(raw), len(got))
	}
	for _, sj := range got {
		if sj.Score != 0 {
			t.Errorf("fallback jobs should be unranked: %+v", sj)
		}
	}
}

// Scraped and AI-suggested candidates reuse this path, so scoring applies to
// them the same way it does to board fetches.
func TestPersistRankedScoresAndDedupes(t *testing.T) {
	setupTestDB(t)

	profile := models.PreferenceProfile{DesiredRoles: "engineer"}
	raw := []models.RawJob{
		{Title: "Backend Engineer", Company: "Acme", URL: "https://acme.example/1", Source: "acme.example"},
		{Title: "Sales Rep", Company: "Acme", URL: "https://acme.example/2", Source: "acme.example"},
	}

	saved, err := persistRanked(rankCandidates(raw, profile), 0)
	if err != nil {
		t.Fatalf("persistRanked error: %v", err)
	}
	if saved != 1 {
		t.Fatalf("expected 1 saved job, got %d", saved)
	}

	jobs, err := database.GetAllJobs()
	if err != nil {
		t.Fatalf("GetAllJobs error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Backend Engineer" {
		t.Errorf("wrong job persisted: %+v", jobs)
	}

	// A second pass over the same candidates is a no-op against the corpus.
	saved, err = persistRanked(rankCandidates(raw, profile), 0)
	if err != nil {
		t.Fatalf("persistRanked error on second pass: %v", err)
	}
	if saved != 0 {
		t.Errorf("already-known jobs should not save again, got %d", saved)
	}
}

func TestPersistRankedLimit(t *testing.T) {
	setupTestDB(t)

	raw := []models.RawJob{
		{Title: "Engineer A", Company: "Acme", URL: "https://acme.example/a", Source: "acme.example"},
		{Title: "Engineer B", Company: "Beta", URL: "https://beta.example/b", Source: "beta.example"},
		{Title: "Engineer C", Company: "Gamma", URL: "https://gamma.example/c", Source: "gamma.example"},
	}

	saved, err := persistRanked(rankCandidates(raw, models.PreferenceProfile{}), 2)
	if err != nil {
		t.Fatalf("persistRanked error: %v", err)
	}
	if saved != 2 {
		t.Errorf("limit should cap saves at 2, got %d", saved)
	}
}

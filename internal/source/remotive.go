package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Diogo1912/jobbi/internal/sanitize"
	"github.com/Diogo1912/jobbi/pkg/models"
)

const remotiveDefaultURL = "https://remotive.com/api/remote-jobs?limit=20"

// Remotive fetches remote jobs from the Remotive public API.
type Remotive struct {
	BaseURL string
	client  *http.Client
}

func NewRemotive(client *http.Client) *Remotive {
	return &Remotive{BaseURL: remotiveDefaultURL, client: client}
}

func (r *Remotive) Name() string { return "Remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	Location        string `json:"candidate_required_location"`
	Salary          string `json:"salary"`
	Description     string `json:"description"`
	URL             string `json:"url"`
	PublicationDate string `json:"publication_date"`
}

func (r *Remotive) Fetch(ctx context.Context) ([]models.RawJob, error) {
	body, err := getBody(ctx, r.client, r.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	var resp remotiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	jobs := make([]models.RawJob, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		location := j.Location
		if location == "" {
			location = "Remote" // remote-only board
		}

		job := models.RawJob{
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    location,
			Type:        "REMOTE",
			Salary:      j.Salary,
			Description: sanitize.Description(j.Description, descriptionCap),
			URL:         j.URL,
			Source:      "Remotive",
		}
		if t, err := time.Parse("2006-01-02T15:04:05", j.PublicationDate); err == nil {
			job.PostedAt = timePtr(t)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

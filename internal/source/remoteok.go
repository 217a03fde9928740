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

const (
	remoteOKDefaultURL = "https://remoteok.com/api"
	remoteOKMaxJobs    = 20
)

// RemoteOK fetches remote tech jobs. The API returns a JSON array whose first
// element is legal/metadata, not a job.
type RemoteOK struct {
	BaseURL string
	client  *http.Client
}

func NewRemoteOK(client *http.Client) *RemoteOK {
	return &RemoteOK{BaseURL: remoteOKDefaultURL, client: client}
}

func (r *RemoteOK) Name() string { return "RemoteOK" }

type remoteOKJob struct {
	ID          string  `json:"id"`
	Position    string  `json:"position"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Date        string  `json:"date"`
}

func (r *RemoteOK) Fetch(ctx context.Context) ([]models.RawJob, error) {
	body, err := getBody(ctx, r.client, r.BaseURL, map[string]string{
		"User-Agent": "Jobbi Job Search App",
	})
	if err != nil {
		return nil, err
	}

	var entries []remoteOKJob
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	if len(entries) > 0 {
		entries = entries[1:] // skip metadata element
	}
	if len(entries) > remoteOKMaxJobs {
		entries = entries[:remoteOKMaxJobs]
	}

	jobs := make([]models.RawJob, 0, len(entries))
	for _, j := range entries {
		if j.Position == "" {
			continue
		}

		location := j.Location
		if location == "" {
			location = "Remote"
		}

		salary := ""
		if j.SalaryMin > 0 && j.SalaryMax > 0 {
			salary = fmt.Sprintf("$%.0f - $%.0f", j.SalaryMin, j.SalaryMax)
		}

		url := j.URL
		if url == "" {
			url = "https://remoteok.com/l/" + j.ID
		}

		job := models.RawJob{
			Title:       j.Position,
			Company:     j.Company,
			Location:    location,
			Type:        "REMOTE",
			Salary:      salary,
			Description: sanitize.Description(j.Description, descriptionCap),
			URL:         url,
			Source:      "RemoteOK",
		}
		if t, err := time.Parse(time.RFC3339, j.Date); err == nil {
			job.PostedAt = timePtr(t)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

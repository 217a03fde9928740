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
	arbeitnowDefaultURL = "https://arbeitnow.com/api/job-board-api"
	arbeitnowMaxJobs    = 20
)

// Arbeitnow fetches Europe + remote jobs from the Arbeitnow job board API.
type Arbeitnow struct {
	BaseURL string
	client  *http.Client
}

func NewArbeitnow(client *http.Client) *Arbeitnow {
	return &Arbeitnow{BaseURL: arbeitnowDefaultURL, client: client}
}

func (a *Arbeitnow) Name() string { return "Arbeitnow" }

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Remote      bool   `json:"remote"`
	Description string `json:"description"`
	URL         string `json:"url"`
	CreatedAt   int64  `json:"created_at"` // unix seconds
}

func (a *Arbeitnow) Fetch(ctx context.Context) ([]models.RawJob, error) {
	body, err := getBody(ctx, a.client, a.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	var resp arbeitnowResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	data := resp.Data
	if len(data) > arbeitnowMaxJobs {
		data = data[:arbeitnowMaxJobs]
	}

	jobs := make([]models.RawJob, 0, len(data))
	for _, j := range data {
		location := j.Location
		jobType := "FULL_TIME"
		if j.Remote {
			jobType = "REMOTE"
			if location == "" {
				location = "Remote"
			}
		} else if location == "" {
			location = "Europe"
		}

		job := models.RawJob{
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    location,
			Type:        jobType,
			Description: sanitize.Description(j.Description, descriptionCap),
			URL:         j.URL,
			Source:      "Arbeitnow",
		}
		if j.CreatedAt > 0 {
			job.PostedAt = timePtr(time.Unix(j.CreatedAt, 0).UTC())
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

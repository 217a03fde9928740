package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/Diogo1912/jobbi/internal/sanitize"
	"github.com/Diogo1912/jobbi/pkg/models"
)

const (
	adzunaDefaultURL = "https://www.adzuna.co.uk/jobs/rss?q=developer"
	adzunaMaxJobs    = 10
)

// Adzuna fetches UK jobs from the Adzuna RSS feed, which needs no API key.
type Adzuna struct {
	BaseURL string
	client  *http.Client
}

func NewAdzuna(client *http.Client) *Adzuna {
	return &Adzuna{BaseURL: adzunaDefaultURL, client: client}
}

func (a *Adzuna) Name() string { return "Adzuna" }

type adzunaRSS struct {
	Channel struct {
		Items []adzunaItem `xml:"item"`
	} `xml:"channel"`
}

type adzunaItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Source      string `xml:"source"`
}

func (a *Adzuna) Fetch(ctx context.Context) ([]models.RawJob, error) {
	body, err := getBody(ctx, a.client, a.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	var feed adzunaRSS
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("xml unmarshal: %w", err)
	}

	items := feed.Channel.Items
	if len(items) > adzunaMaxJobs {
		items = items[:adzunaMaxJobs]
	}

	jobs := make([]models.RawJob, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		company := item.Source
		if company == "" {
			company = "Unknown"
		}

		jobs = append(jobs, models.RawJob{
			Title:       sanitize.DecodeEntities(item.Title),
			Company:     sanitize.DecodeEntities(company),
			Location:    "UK",
			Type:        "FULL_TIME",
			Description: sanitize.Description(item.Description, descriptionCap),
			URL:         item.Link,
			Source:      "Adzuna",
		})
	}
	return jobs, nil
}

package extract

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Diogo1912/jobbi/internal/ai"
	"github.com/Diogo1912/jobbi/pkg/models"
)

// DefaultDelay spaces out sequential page fetches.
const DefaultDelay = time.Second

// Extractor pulls job records from page content. Satisfied by *ai.Client.
type Extractor interface {
	ExtractJobs(ctx context.Context, pageText string, links []ai.PageLink, domain, pageURL string) ([]models.RawJob, error)
}

// Fetcher retrieves page HTML. Swapped for a headless browser when the page
// needs script execution.
type Fetcher func(ctx context.Context, pageURL string) (string, error)

// Pipeline scrapes a list of URLs one at a time. A failed URL logs and moves
// on; one broken careers page never aborts the run.
type Pipeline struct {
	Extractor Extractor
	Fetch     Fetcher
	Delay     time.Duration
	Sleep     func(time.Duration) // injectable for tests
}

// NewPipeline builds a plain-HTTP pipeline. Pass render to use a headless
// browser for fetching instead.
func NewPipeline(extractor Extractor, client *http.Client, render bool) *Pipeline {
	fetch := func(ctx context.Context, pageURL string) (string, error) {
		return FetchPage(ctx, client, pageURL)
	}
	if render {
		fetch = RenderPage
	}
	return &Pipeline{
		Extractor: extractor,
		Fetch:     fetch,
		Delay:     DefaultDelay,
		Sleep:     time.Sleep,
	}
}

// ScrapeURL fetches and extracts a single page.
func (p *Pipeline) ScrapeURL(ctx context.Context, pageURL string) ([]models.RawJob, error) {
	htmlSrc, err := p.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(htmlSrc, pageURL)
	if err != nil {
		return nil, err
	}

	return p.Extractor.ExtractJobs(ctx, page.Text, page.Links, Domain(pageURL), pageURL)
}

// ScrapeAll processes URLs sequentially with a delay between requests.
// Failures are logged per URL and do not affect siblings.
func (p *Pipeline) ScrapeAll(ctx context.Context, urls []string) []models.RawJob {
	var all []models.RawJob
	first := true

	for _, pageURL := range urls {
		pageURL = strings.TrimSpace(pageURL)
		if pageURL == "" {
			continue
		}
		if !first && p.Delay > 0 {
			p.Sleep(p.Delay)
		}
		first = false

		jobs, err := p.ScrapeURL(ctx, pageURL)
		if err != nil {
			log.Printf("[extract] %s: %v", pageURL, err)
			continue
		}
		log.Printf("[extract] %s: %d jobs", pageURL, len(jobs))
		all = append(all, jobs...)
	}
	return all
}

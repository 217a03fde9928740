package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Diogo1912/jobbi/internal/ai"
	"github.com/Diogo1912/jobbi/pkg/models"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Careers</title><style>body { color: red; }</style></head>
<body>
<nav><a href="/home">Home page link</a></nav>
<script>var tracking = "noise";</script>
<h1>Open Positions</h1>
<p>We are hiring engineers.</p>
<a href="/jobs/1">Senior Backend Engineer</a>
<a href="https://other.example.com/jobs/2">Platform Engineer</a>
<a href="/jobs/3">Go</a>
<footer>Copyright notice text here</footer>
</body>
</html>`

func TestParsePageText(t *testing.T) {
	page, err := ParsePage(samplePage, "https://acme.com/careers")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}

	if !strings.Contains(page.Text, "Open Positions") || !strings.Contains(page.Text, "hiring engineers") {
		t.Errorf("visible text missing: %q", page.Text)
	}
	for _, noise := range []string{"tracking", "color: red", "Home page link", "Copyright"} {
		if strings.Contains(page.Text, noise) {
			t.Errorf("chrome content %q should be stripped", noise)
		}
	}
}

func TestParsePageLinks(t *testing.T) {
	page, err := ParsePage(samplePage, "https://acme.com/careers")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}

	// The nav link is inside a skipped element and "Go" is too short.
	if len(page.Links) != 2 {
		t.Fatalf("expected 2 links, got %d: %+v", len(page.Links), page.Links)
	}
	if page.Links[0].URL != "https://acme.com/jobs/1" {
		t.Errorf("relative href not resolved: %q", page.Links[0].URL)
	}
	if page.Links[0].Text != "Senior Backend Engineer" {
		t.Errorf("anchor text wrong: %q", page.Links[0].Text)
	}
	if page.Links[1].URL != "https://other.example.com/jobs/2" {
		t.Errorf("absolute href should be kept: %q", page.Links[1].URL)
	}
}

func TestParsePageCaps(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	sb.WriteString(strings.Repeat("word ", 3000))
	for i := 0; i < 80; i++ {
		sb.WriteString(`<a href="/jobs/x">A perfectly fine job link</a>`)
	}
	sb.WriteString("</body></html>")

	page, err := ParsePage(sb.String(), "https://acme.com/careers")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if len(page.Text) > maxPageText {
		t.Errorf("text not capped: %d chars", len(page.Text))
	}
	if len(page.Links) != maxLinks {
		t.Errorf("links not capped: %d", len(page.Links))
	}
}

func TestParsePageRuneSafeTextCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	sb.WriteString(strings.Repeat("héllo wörld ", 1500))
	sb.WriteString("</body></html>")

	page, err := ParsePage(sb.String(), "https://acme.com/careers")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if !utf8.ValidString(page.Text) {
		t.Error("truncated text is not valid UTF-8")
	}
	if utf8.RuneCountInString(page.Text) > maxPageText {
		t.Errorf("text not capped: %d runes", utf8.RuneCountInString(page.Text))
	}
}

func TestAnchorTextBoundsCountRunes(t *testing.T) {
	src := `<html><body>
<a href="/jobs/1">héllo</a>
<a href="/jobs/2">Développeur Sénior</a>
</body></html>`

	page, err := ParsePage(src, "https://acme.com/careers")
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	// "héllo" is five characters, over five bytes. The length bounds are on
	// characters, so only the second anchor survives.
	if len(page.Links) != 1 || page.Links[0].Text != "Développeur Sénior" {
		t.Errorf("unexpected links: %+v", page.Links)
	}
}

func TestDomain(t *testing.T) {
	cases := map[string]string{
		"https://www.acme.com/careers": "acme.com",
		"https://jobs.acme.io/openings": "jobs.acme.io",
	}
	for in, want := range cases {
		if got := Domain(in); got != want {
			t.Errorf("Domain(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestFetchPageSendsBrowserHeaders(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	body, err := FetchPage(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("FetchPage error: %v", err)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("unexpected body: %q", body)
	}
	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("expected browser user agent, got %q", gotUA)
	}
}

func TestFetchPageNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := FetchPage(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("expected error for non-2xx status")
	}
}

// fakeExtractor records calls and returns canned jobs.
type fakeExtractor struct {
	calls []string
	jobs  map[string][]models.RawJob
	err   error
}

func (f *fakeExtractor) ExtractJobs(ctx context.Context, pageText string, links []ai.PageLink, domain, pageURL string) ([]models.RawJob, error) {
	f.calls = append(f.calls, pageURL)
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs[pageURL], nil
}

func TestScrapeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	fake := &fakeExtractor{jobs: map[string][]models.RawJob{
		srv.URL: {{Title: "Senior Backend Engineer", Company: "Acme"}},
	}}

	p := NewPipeline(fake, srv.Client(), false)
	jobs, err := p.ScrapeURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ScrapeURL error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Senior Backend Engineer" {
		t.Errorf("unexpected jobs: %+v", jobs)
	}
}

func TestScrapeAllIsolatesFailures(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer bad.Close()

	fake := &fakeExtractor{jobs: map[string][]models.RawJob{
		good.URL: {{Title: "Dev", Company: "Acme"}},
	}}

	p := NewPipeline(fake, http.DefaultClient, false)
	p.Sleep = func(time.Duration) {}

	jobs := p.ScrapeAll(context.Background(), []string{bad.URL, good.URL, "  "})
	if len(jobs) != 1 {
		t.Fatalf("good URL should survive bad sibling, got %d jobs", len(jobs))
	}
	if len(fake.calls) != 1 || fake.calls[0] != good.URL {
		t.Errorf("extractor should only see the fetchable page: %v", fake.calls)
	}
}

func TestScrapeAllDelaysBetweenRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	fake := &fakeExtractor{}
	p := NewPipeline(fake, srv.Client(), false)

	var slept []time.Duration
	p.Sleep = func(d time.Duration) { slept = append(slept, d) }

	p.ScrapeAll(context.Background(), []string{srv.URL, srv.URL, srv.URL})
	if len(slept) != 2 {
		t.Fatalf("expected a delay between each pair of requests, got %d", len(slept))
	}
	for _, d := range slept {
		if d < time.Second {
			t.Errorf("delay %v below minimum", d)
		}
	}
}

func TestScrapeAllExtractorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	fake := &fakeExtractor{err: errors.New("model said no")}
	p := NewPipeline(fake, srv.Client(), false)
	p.Sleep = func(time.Duration) {}

	jobs := p.ScrapeAll(context.Background(), []string{srv.URL})
	if len(jobs) != 0 {
		t.Errorf("extractor failure should yield no jobs, got %d", len(jobs))
	}
}

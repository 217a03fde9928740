package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Diogo1912/jobbi/pkg/models"
)

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient("gemini", "key", "", "", nil)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if c.Model != "gemini-1.5-pro" {
		t.Errorf("expected default model, got %q", c.Model)
	}
	if c.BaseURL == "" {
		t.Error("expected default base URL")
	}
}

func TestNewClientMissingKey(t *testing.T) {
	if _, err := NewClient("gemini", "", "", "", nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewClient("openai", "", "", "", nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	// Ollama runs locally and needs no key.
	if _, err := NewClient("ollama", "", "", "", nil); err != nil {
		t.Errorf("ollama should not require a key: %v", err)
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	if _, err := NewClient("anthropic", "key", "", "", nil); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestParseJobArrayStripsFences(t *testing.T) {
	raw := "```json\n[{\"title\":\"Dev\",\"company\":\"Acme\",\"url\":\"https://a.com/1\"}]\n```"
	jobs, err := ParseJobArray(raw)
	if err != nil {
		t.Fatalf("ParseJobArray error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Dev" {
		t.Errorf("unexpected result: %+v", jobs)
	}
}

func TestParseJobArrayPlain(t *testing.T) {
	jobs, err := ParseJobArray(`[]`)
	if err != nil {
		t.Fatalf("ParseJobArray error: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("expected empty array, got %+v", jobs)
	}
}

func TestParseJobArrayMalformed(t *testing.T) {
	if _, err := ParseJobArray("I could not find any jobs on this page."); !errors.Is(err, ErrUnparseable) {
		t.Errorf("expected ErrUnparseable, got %v", err)
	}
}

func TestGenerateGemini(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  hello  "}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("gemini", "key", "test-model", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	got, err := c.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected trimmed text, got %q", got)
	}
	if !strings.Contains(gotPath, "test-model") {
		t.Errorf("model not in request path: %q", gotPath)
	}
}

func TestGenerateOllama(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"pong"}`))
	}))
	defer srv.Close()

	c, err := NewClient("ollama", "", "llama3.2", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	got, err := c.Generate(context.Background(), "ping")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "pong" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient("gemini", "key", "", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if _, err := c.Generate(context.Background(), "hi"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestExtractJobsBackfillsSourceAndURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := `[{\"title\":\"SRE\",\"company\":\"Acme\",\"url\":\"\"},{\"title\":\"Dev\",\"company\":\"Acme\",\"url\":\"https://acme.com/jobs/2\"}]`
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("gemini", "key", "", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	links := []PageLink{{Text: "SRE opening", URL: "https://acme.com/jobs/1"}}
	jobs, err := c.ExtractJobs(context.Background(), "We are hiring", links, "acme.com", "https://acme.com/careers")
	if err != nil {
		t.Fatalf("ExtractJobs error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Source != "acme.com" || jobs[1].Source != "acme.com" {
		t.Errorf("source not backfilled: %+v", jobs)
	}
	if jobs[0].URL != "https://acme.com/careers" {
		t.Errorf("empty url should fall back to page url, got %q", jobs[0].URL)
	}
	if jobs[1].URL != "https://acme.com/jobs/2" {
		t.Errorf("explicit url should be kept, got %q", jobs[1].URL)
	}
}

func TestGenerateListingsDefaultsSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := `[{\"title\":\"Dev\",\"company\":\"Acme\",\"url\":\"https://acme.com/1\"}]`
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("gemini", "key", "", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	profile := models.PreferenceProfile{DesiredRoles: "Backend Engineer", Skills: "Go"}
	jobs, err := c.GenerateListings(context.Background(), profile)
	if err != nil {
		t.Fatalf("GenerateListings error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Source != "AI Suggested" {
		t.Errorf("unexpected result: %+v", jobs)
	}
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Diogo1912/jobbi/internal/ai"
	"github.com/Diogo1912/jobbi/internal/config"
	"github.com/Diogo1912/jobbi/internal/database"
)

// App is the dependency container for the CLI application
type App struct {
	Config     *config.Config
	HTTPClient *http.Client
}

// NewApp initializes config, storage, and shared clients.
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}
	if err := database.Initialize(dbPath); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	return &App{
		Config:     config.AppConfig,
		HTTPClient: httpClient,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	return database.Close()
}

// AIClient builds the extraction client from the configured provider.
// Returns ai.ErrNotConfigured when no key is set, so commands can skip AI
// work instead of failing.
func (a *App) AIClient() (*ai.Client, error) {
	return ai.NewClient(a.Config.AIProvider, a.Config.APIKey(), a.Config.DefaultModel, "", a.HTTPClient)
}

// FetchTimeout is the per-source deadline for aggregation runs.
func (a *App) FetchTimeout() time.Duration {
	if a.Config.FetchTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(a.Config.FetchTimeoutSeconds) * time.Second
}

// ScrapeDelay is the pause between sequential page scrapes, at least one
// second to stay polite.
func (a *App) ScrapeDelay() time.Duration {
	if a.Config.ScrapeDelaySeconds < 1 {
		return time.Second
	}
	return time.Duration(a.Config.ScrapeDelaySeconds) * time.Second
}

func databasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	jobbiDir := filepath.Join(homeDir, ".jobbi")
	if err := os.MkdirAll(jobbiDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create jobbi directory: %w", err)
	}
	return filepath.Join(jobbiDir, "jobbi.db"), nil
}

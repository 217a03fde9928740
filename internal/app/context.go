package app

import "context"

// contextKey keeps the App entry private to this package.
type contextKey struct{}

var appContextKey = contextKey{}

// GetAppFromContext returns the App a command was initialized with, or nil
// when running outside the CLI lifecycle.
func GetAppFromContext(ctx context.Context) *App {
	app, ok := ctx.Value(appContextKey).(*App)
	if !ok {
		return nil
	}
	return app
}

// SetAppInContext attaches the App to the command context.
func SetAppInContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appContextKey, app)
}

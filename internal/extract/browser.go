package extract

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const renderTimeout = 30 * time.Second

// newBrowserContext configures a headless browser that looks like a regular
// Chrome session. Career sites behind bot checks reject obvious automation.
func newBrowserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel2 := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") {
			return
		}
		log.Printf(format, v...)
	}))

	return ctx, func() {
		cancel2()
		cancel()
	}
}

// RenderPage loads a URL in a headless browser and returns the HTML after
// scripts have run. Needed for single-page-app career sites where a plain
// GET returns an empty shell.
func RenderPage(ctx context.Context, pageURL string) (string, error) {
	browserCtx, cancel := newBrowserContext(ctx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, renderTimeout)
	defer cancel()

	var rendered string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", pageURL, err)
	}
	return rendered, nil
}

// Package extract turns arbitrary career pages into job records. Pages are
// fetched, reduced to visible text and candidate links, then handed to a
// language model for structured extraction.
package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/Diogo1912/jobbi/internal/ai"
	"github.com/Diogo1912/jobbi/internal/sanitize"
)

const (
	maxPageText = 8000
	maxLinks    = 50

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Page is the distilled content of one fetched URL.
type Page struct {
	Text  string
	Links []ai.PageLink
}

// skipElements are containers whose text is chrome, not content.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"footer":   true,
	"header":   true,
	"aside":    true,
	"iframe":   true,
	"noscript": true,
}

// FetchPage retrieves raw HTML with a browser user agent. Many career sites
// serve empty shells to unknown agents.
func FetchPage(ctx context.Context, client *http.Client, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ParsePage walks the document tree, collecting visible text and plausible
// job links with hrefs resolved against the page URL.
func ParsePage(htmlSrc, pageURL string) (*Page, error) {
	root, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	var textParts []string
	var links []ai.PageLink

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipElements[n.Data] {
				return
			}
			if n.Data == "a" {
				if link, ok := anchorLink(n, base); ok {
					links = append(links, link)
				}
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				textParts = append(textParts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	// Rune-safe cut: a byte slice could split a multibyte character and feed
	// invalid UTF-8 into the extraction prompt.
	text := sanitize.Truncate(strings.Join(strings.Fields(strings.Join(textParts, " ")), " "), maxPageText)
	if len(links) > maxLinks {
		links = links[:maxLinks]
	}

	return &Page{Text: text, Links: links}, nil
}

// anchorLink extracts a link from an <a> node. Anchors with very short or
// very long text are navigation or boilerplate, not job titles.
func anchorLink(n *html.Node, base *url.URL) (ai.PageLink, bool) {
	var href string
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			href = attr.Val
			break
		}
	}
	if href == "" {
		return ai.PageLink{}, false
	}

	text := strings.Join(strings.Fields(nodeText(n)), " ")
	if n := utf8.RuneCountInString(text); n <= 5 || n >= 200 {
		return ai.PageLink{}, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ai.PageLink{}, false
	}
	return ai.PageLink{Text: text, URL: base.ResolveReference(ref).String()}, true
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

// Domain returns the source name for a page URL, the hostname without a
// leading www.
func Domain(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Package jobpost fetches a job posting URL and reduces the page to plain
// text suitable for feeding into the gap analyst.
package jobpost

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const defaultMaxBodyBytes = 2 << 20 // 2 MiB is plenty for a job listing

// Fetcher downloads job postings. The zero value uses http.DefaultClient.
type Fetcher struct {
	HTTPClient   *http.Client
	UserAgent    string
	MaxBodyBytes int64
}

func (f *Fetcher) client() *http.Client {
	if f != nil && f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}

func (f *Fetcher) limit() int64 {
	if f != nil && f.MaxBodyBytes > 0 {
		return f.MaxBodyBytes
	}
	return defaultMaxBodyBytes
}

// Text fetches rawURL and returns the posting as readable plain text.
func (f *Fetcher) Text(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("parse job url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported job url scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	if f != nil && f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch job posting: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch job posting: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.limit()))
	if err != nil {
		return "", fmt.Errorf("read job posting: %w", err)
	}

	text := htmlToText(body)
	if text == "" {
		return "", fmt.Errorf("job posting at %s contained no readable text", u.Host)
	}
	return text, nil
}

// htmlToText walks the parsed document and collects text from content
// elements, skipping navigation and script boilerplate. Block elements get
// newline separation; whitespace runs are collapsed afterwards.
func htmlToText(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	root := findFirst(node, "main")
	if root == nil {
		root = findFirst(node, "article")
	}
	if root == nil {
		root = findFirst(node, "body")
	}
	if root == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, root)
	return normalizeWhitespace(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, tag); res != nil {
			return res
		}
	}
	return nil
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "br", "hr", "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol", "tr", "div":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li":
			b.WriteString("\n")
		}
	}
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

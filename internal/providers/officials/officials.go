package officials

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/timeutil"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	postsPath          = "/wp-json/wp/v2/posts"
	maxErrorBody       = 512
)

var (
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
	refereePattern  = regexp.MustCompile(`(?i)referees?:\s*([^\n]+)`)
	linesmenPattern = regexp.MustCompile(`(?i)linesm[ae]n:\s*([^\n]+)`)
	namesSplitter   = regexp.MustCompile(`\s*(?:,|\band\b|&)\s*`)
)

// Config controls how the client reaches the officiating blog.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client searches a WordPress site for the day's officiating assignments.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs an officials client.
func NewClient(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: client,
	}
}

type post struct {
	Date    string   `json:"date"`
	Content rendered `json:"content"`
}

type rendered struct {
	Rendered string `json:"rendered"`
}

// FetchOfficials reports the crew for teamName's game on date. A post that
// does not mention the team yet yields Confirmed=false without error.
func (c *Client) FetchOfficials(ctx context.Context, teamName string, date string) (game.Officials, error) {
	q := url.Values{}
	q.Set("search", teamName)
	q.Set("per_page", "5")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+postsPath+"?"+q.Encode(), nil)
	if err != nil {
		return game.Officials{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return game.Officials{}, fmt.Errorf("fetch officials: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return game.Officials{}, fmt.Errorf("fetch officials: %w", &providers.StatusError{
			Provider:   "officials",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		})
	}

	var posts []post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return game.Officials{}, fmt.Errorf("decode officials: %w", err)
	}

	for _, p := range posts {
		if !strings.HasPrefix(p.Date, date) {
			continue
		}
		text := plainText(p.Content.Rendered)
		section, ok := teamSection(text, teamName)
		if !ok {
			continue
		}
		return game.Officials{
			Confirmed: true,
			Referees:  names(refereePattern, section),
			Linesmen:  names(linesmenPattern, section),
		}, nil
	}
	return game.Officials{}, nil
}

func plainText(raw string) string {
	text := strings.NewReplacer("<br>", "\n", "<br />", "\n", "</p>", "\n\n").Replace(raw)
	return html.UnescapeString(tagPattern.ReplaceAllString(text, ""))
}

// teamSection returns the text from the team's mention up to the next blank
// paragraph, where a single game's assignment is listed.
func teamSection(text, teamName string) (string, bool) {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(teamName))
	if idx < 0 {
		return "", false
	}
	section := text[idx:]
	if end := strings.Index(section, "\n\n"); end > 0 {
		section = section[:end]
	}
	return section, true
}

func names(pattern *regexp.Regexp, section string) []string {
	match := pattern.FindStringSubmatch(section)
	if len(match) < 2 {
		return nil
	}
	var out []string
	for _, n := range namesSplitter.Split(strings.TrimSpace(match[1]), -1) {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Static always confirms. It stands in when no officials source is configured
// or the gate is disabled.
type Static struct{}

func (Static) FetchOfficials(ctx context.Context, teamName string, date string) (game.Officials, error) {
	_ = ctx
	_ = teamName
	if _, err := timeutil.ParseDate(date); err != nil {
		return game.Officials{}, fmt.Errorf("static officials: %w", err)
	}
	return game.Officials{Confirmed: true}, nil
}

package nhlweb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/timeutil"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches schedule and gamecenter data and maps it to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an NHL web API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchSchedule returns the games played on date (YYYY-MM-DD). An empty date means today in UTC.
func (c *Client) FetchSchedule(ctx context.Context, date string) (game.Schedule, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		date = timeutil.FormatDate(c.now().UTC())
	}
	var resp scheduleResponse
	if err := c.getJSON(ctx, "/schedule/"+date, &resp); err != nil {
		return game.Schedule{}, fmt.Errorf("fetch schedule: %w", err)
	}
	return mapSchedule(date, resp), nil
}

// FetchPlayByPlay returns the live play-by-play feed for a game.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID int64) (game.LiveFeed, error) {
	var resp playByPlayResponse
	if err := c.getJSON(ctx, gamecenterPath(gameID, "play-by-play"), &resp); err != nil {
		return game.LiveFeed{}, fmt.Errorf("fetch play-by-play: %w", err)
	}
	return mapLiveFeed(resp), nil
}

// FetchBoxScore returns team totals for a game.
func (c *Client) FetchBoxScore(ctx context.Context, gameID int64) (game.BoxScore, error) {
	var resp boxScoreResponse
	if err := c.getJSON(ctx, gamecenterPath(gameID, "boxscore"), &resp); err != nil {
		return game.BoxScore{}, fmt.Errorf("fetch boxscore: %w", err)
	}
	return mapBoxScore(resp), nil
}

// FetchLanding returns the post-game summary for a game.
func (c *Client) FetchLanding(ctx context.Context, gameID int64) (game.Landing, error) {
	var resp landingResponse
	if err := c.getJSON(ctx, gamecenterPath(gameID, "landing"), &resp); err != nil {
		return game.Landing{}, fmt.Errorf("fetch landing: %w", err)
	}
	return mapLanding(resp), nil
}

func gamecenterPath(gameID int64, resource string) string {
	return fmt.Sprintf("/gamecenter/%d/%s", gameID, resource)
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return providers.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "nhlweb rate limited",
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

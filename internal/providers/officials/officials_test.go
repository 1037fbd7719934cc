package officials

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
)

const postsPayload = `[
	{
		"date": "2024-01-02T09:15:00",
		"content": {"rendered": "<p>Boston Bruins at Toronto Maple Leafs<br />Referees: Wes McCauley, Chris Rooney<br />Linesmen: Steve Barton &amp; Ryan Gibbons</p><p>Ottawa Senators at Montreal Canadiens<br />Referees: Kelly Sutherland and Dan O'Rourke</p>"}
	},
	{
		"date": "2024-01-01T09:15:00",
		"content": {"rendered": "<p>Toronto Maple Leafs at Detroit Red Wings<br />Referees: Old Post</p>"}
	}
]`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != postsPath {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("search") == "" {
			t.Fatalf("expected search query")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchOfficialsConfirmsTeamForDate(t *testing.T) {
	srv := newServer(t, http.StatusOK, postsPayload)
	client := NewClient(Config{BaseURL: srv.URL + "/"})

	got, err := client.FetchOfficials(context.Background(), "Toronto Maple Leafs", "2024-01-02")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Confirmed {
		t.Fatalf("expected confirmation")
	}
	if len(got.Referees) != 2 || got.Referees[0] != "Wes McCauley" || got.Referees[1] != "Chris Rooney" {
		t.Fatalf("unexpected referees %v", got.Referees)
	}
	if len(got.Linesmen) != 2 || got.Linesmen[1] != "Ryan Gibbons" {
		t.Fatalf("unexpected linesmen %v", got.Linesmen)
	}
}

func TestFetchOfficialsUnconfirmedWhenTeamMissing(t *testing.T) {
	srv := newServer(t, http.StatusOK, postsPayload)
	client := NewClient(Config{BaseURL: srv.URL})

	got, err := client.FetchOfficials(context.Background(), "Vancouver Canucks", "2024-01-02")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Confirmed {
		t.Fatalf("expected no confirmation for absent team")
	}
}

func TestFetchOfficialsIgnoresOtherDates(t *testing.T) {
	srv := newServer(t, http.StatusOK, postsPayload)
	client := NewClient(Config{BaseURL: srv.URL})

	got, err := client.FetchOfficials(context.Background(), "Detroit Red Wings", "2024-01-02")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Confirmed {
		t.Fatalf("expected stale post to be ignored")
	}
}

func TestFetchOfficialsStatusError(t *testing.T) {
	srv := newServer(t, http.StatusServiceUnavailable, "down")
	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.FetchOfficials(context.Background(), "Toronto Maple Leafs", "2024-01-02")
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected wrapped 503 status error, got %v", err)
	}
}

func TestStaticAlwaysConfirms(t *testing.T) {
	got, err := Static{}.FetchOfficials(context.Background(), "Anyone", "2024-01-02")
	if err != nil || !got.Confirmed {
		t.Fatalf("expected confirmation, got %+v err=%v", got, err)
	}
	if _, err := (Static{}).FetchOfficials(context.Background(), "Anyone", "bad"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

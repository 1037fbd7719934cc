package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nhlweb", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nhlweb", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nhlweb"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nhlweb"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("nhlweb")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nhlweb", 5*time.Second)
	rec.RecordRateLimit("nhlweb", 0)

	if got := rec.RateLimitHits("nhlweb"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("nhlweb"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksLifecycleAndDeliveries(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCycle("LivePlay", time.Millisecond, nil)
	rec.RecordCycle("LivePlay", time.Millisecond, errors.New("feed down"))
	rec.RecordPhaseTransition("LivePlay", "Intermission")
	rec.RecordDelivery("slack", time.Millisecond, nil)
	rec.RecordDelivery("slack", time.Millisecond, errors.New("rate limited"))
	rec.RecordDelivery("log", time.Millisecond, nil)

	snap := rec.Lifecycle()
	if snap.Cycles != 2 || snap.CycleErrors != 1 || snap.Transitions != 1 {
		t.Fatalf("unexpected lifecycle snapshot %+v", snap)
	}
	if snap.Delivered["slack"] != 1 || snap.Failed["slack"] != 1 || snap.Delivered["log"] != 1 {
		t.Fatalf("unexpected delivery counts %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("nhlweb", time.Millisecond, nil)
	rec.RecordCycle("Idle", time.Millisecond, nil)
	rec.RecordDelivery("log", time.Millisecond, nil)
	if snap := rec.Lifecycle(); snap.Cycles != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

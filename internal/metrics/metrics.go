package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type channelStats struct {
	delivered int
	failed    int
}

// Recorder captures lightweight, in-memory metrics about provider calls, lifecycle
// cycles and channel deliveries, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*providerStats
	channels    map[string]*channelStats
	cycles      int
	cycleErrors int
	transitions int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*providerStats),
		channels: make(map[string]*channelStats),
		otel:     otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordCycle tracks one lifecycle step for the phase it ran in.
func (r *Recorder) RecordCycle(phase string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cycles++
	if err != nil {
		r.cycleErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCycle(phase, duration, err)
	}
}

// RecordPhaseTransition counts a phase change.
func (r *Recorder) RecordPhaseTransition(from, to string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.transitions++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTransition(from, to)
	}
}

// RecordDelivery counts one notification attempt on a channel.
func (r *Recorder) RecordDelivery(channel string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.channels[channel]
	if !ok {
		stats = &channelStats{}
		r.channels[channel] = stats
	}
	if err != nil {
		stats.failed++
	} else {
		stats.delivered++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDelivery(channel, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// LifecycleSnapshot summarizes cycle and delivery counters.
type LifecycleSnapshot struct {
	Cycles      int
	CycleErrors int
	Transitions int
	Delivered   map[string]int
	Failed      map[string]int
}

func (r *Recorder) Lifecycle() LifecycleSnapshot {
	if r == nil {
		return LifecycleSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := LifecycleSnapshot{
		Cycles:      r.cycles,
		CycleErrors: r.cycleErrors,
		Transitions: r.transitions,
		Delivered:   make(map[string]int, len(r.channels)),
		Failed:      make(map[string]int, len(r.channels)),
	}
	for name, stats := range r.channels {
		snap.Delivered[name] = stats.delivered
		snap.Failed[name] = stats.failed
	}
	return snap
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

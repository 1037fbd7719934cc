// Package poller hosts the lifecycle machine: it runs one step, publishes the
// resulting snapshot and sleeps for the wait the machine asked for.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/lifecycle"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
)

const (
	// a zero wait still yields briefly so a misbehaving machine cannot spin
	minWait       = 100 * time.Millisecond
	readyFailures = 3
)

// Stepper is the lifecycle machine as seen by the host loop.
type Stepper interface {
	Step(ctx context.Context) (time.Duration, error)
	Snapshot() lifecycle.Snapshot
}

// SnapshotPublisher receives the machine's state after every step.
type SnapshotPublisher interface {
	Publish(snap lifecycle.Snapshot, at time.Time)
}

// Poller drives a Stepper until the context is cancelled or Stop is called.
type Poller struct {
	machine   Stepper
	publisher SnapshotPublisher
	logger    *slog.Logger
	maxWait   time.Duration
	now       func() time.Time
	after     func(time.Duration) <-chan time.Time

	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the host loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	NextStep            time.Time `json:"nextStep"`
	Steps               int       `json:"steps"`
}

// IsReady reports whether a step has succeeded recently and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// New constructs a Poller. maxWait caps any single sleep; zero means no cap.
func New(machine Stepper, publisher SnapshotPublisher, logger *slog.Logger, maxWait time.Duration) *Poller {
	return &Poller{
		machine:   machine,
		publisher: publisher,
		logger:    logger,
		maxWait:   maxWait,
		now:       time.Now,
		after:     time.After,
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
	}
}

// Start begins stepping in the background. Calling it twice is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.finished)
	logging.Info(p.logger, "lifecycle loop started")

	for {
		wait := p.stepOnce(ctx)

		select {
		case <-ctx.Done():
			logging.Info(p.logger, "lifecycle loop stopped")
			return
		case <-p.done:
			logging.Info(p.logger, "lifecycle loop stopped")
			return
		case <-p.after(wait):
		}
	}
}

// Stop halts the loop and waits for the in-flight step to finish or ctx to expire.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the loop has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.finished
}

func (p *Poller) stepOnce(ctx context.Context) time.Duration {
	start := p.now()
	p.recordAttempt(start)

	wait, err := p.machine.Step(ctx)
	snap := p.machine.Snapshot()
	if p.publisher != nil {
		p.publisher.Publish(snap, p.now())
	}

	if err != nil {
		p.recordFailure(err)
	} else {
		p.recordSuccess(start)
	}

	wait = p.clamp(wait)
	p.recordNext(p.now().Add(wait))
	logging.Info(p.logger, "lifecycle step",
		logging.FieldPhase, snap.Phase.String(),
		logging.FieldWait, wait.String(),
		logging.FieldDurationMS, p.now().Sub(start).Milliseconds(),
	)
	return wait
}

func (p *Poller) clamp(wait time.Duration) time.Duration {
	if wait < minWait {
		wait = minWait
	}
	if p.maxWait > 0 && wait > p.maxWait {
		wait = p.maxWait
	}
	return wait
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
	p.status.Steps++
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
}

func (p *Poller) recordNext(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.NextStep = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
)

const defaultSendTimeout = 15 * time.Second

// Dispatcher sends every notification to all channels concurrently.
type Dispatcher struct {
	channels []Channel
	logger   *slog.Logger
	recorder *metrics.Recorder
	timeout  time.Duration
}

func NewDispatcher(channels []Channel, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger,
		recorder: recorder,
		timeout:  defaultSendTimeout,
	}
}

// Channels returns the configured channel names.
func (d *Dispatcher) Channels() []string {
	names := make([]string, 0, len(d.channels))
	for _, ch := range d.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Notify delivers n to every channel. A failing channel does not stop the
// others; an error is returned only when no channel succeeded.
func (d *Dispatcher) Notify(ctx context.Context, n notification.Notification) error {
	if len(d.channels) == 0 {
		return ErrNoChannels
	}
	if n.Empty() {
		return nil
	}

	var (
		mu        sync.Mutex
		failures  []error
		delivered int
		g         errgroup.Group // no shared context: one channel failing must not cancel the others
	)
	for _, ch := range d.channels {
		ch := ch
		g.Go(func() error {
			err := d.send(ctx, ch, n)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				err = fmt.Errorf("%s: %w", ch.Name(), err)
				failures = append(failures, err)
				return err
			}
			delivered++
			return nil
		})
	}
	if g.Wait() == nil || delivered > 0 {
		return nil
	}
	// Wait reports only the first failure
	return errors.Join(failures...)
}

func (d *Dispatcher) send(ctx context.Context, ch Channel, n notification.Notification) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	err := ch.Send(sendCtx, n)
	d.recorder.RecordDelivery(ch.Name(), time.Since(start), err)
	if err != nil {
		logging.Warn(d.logger, "channel delivery failed", logging.FieldChannel, ch.Name(), "err", err)
	}
	return err
}

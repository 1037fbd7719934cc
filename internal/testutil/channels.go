package testutil

import (
	"context"
	"sync"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

// StubChannel records every notification it is asked to send.
type StubChannel struct {
	NameVal string
	Err     error

	mu   sync.Mutex
	sent []notification.Notification
}

func (c *StubChannel) Name() string {
	if c.NameVal == "" {
		return "stub"
	}
	return c.NameVal
}

func (c *StubChannel) Send(ctx context.Context, n notification.Notification) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, n)
	return c.Err
}

// Sent returns a copy of every notification received.
func (c *StubChannel) Sent() []notification.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]notification.Notification, len(c.sent))
	copy(out, c.sent)
	return out
}

// Texts returns the text of every notification received.
func (c *StubChannel) Texts() []string {
	sent := c.Sent()
	out := make([]string, 0, len(sent))
	for _, n := range sent {
		out = append(out, n.Text)
	}
	return out
}

// StubRenderer returns a fixed path for every graphic request.
type StubRenderer struct {
	Path string
	Err  error

	mu       sync.Mutex
	requests []notification.GraphicRequest
}

func (r *StubRenderer) Render(ctx context.Context, req notification.GraphicRequest) (string, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return r.Path, r.Err
}

// Requests returns every graphic request received.
func (r *StubRenderer) Requests() []notification.GraphicRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notification.GraphicRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerServesInjectedListener(t *testing.T) {
	s := newNetHTTPServer("0", http.NewServeMux())
	s.listener = &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerShutsDownPromptly(t *testing.T) {
	s := newNetHTTPServer("0", http.NewServeMux())
	s.srv.Addr = "127.0.0.1:0"
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = s.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNewNetHTTPServerAppliesTimeouts(t *testing.T) {
	handler := http.NewServeMux()
	s := newNetHTTPServer("4000", handler)

	if s.Addr() != ":4000" {
		t.Fatalf("expected :4000, got %s", s.Addr())
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
	if s.srv.ReadHeaderTimeout != readTimeout || s.srv.WriteTimeout != writeTimeout || s.srv.IdleTimeout != idleTimeout {
		t.Fatalf("expected shared timeouts, got %+v", s.srv)
	}
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, appVersion) {
		t.Fatalf("expected version in output, got %q", out)
	}
}

func TestScheduleCommandUsesFixtureProvider(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("TEAM_ABBREV", "tor")

	out, err := execute(t, "schedule", "--date", "2026-10-17")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if !strings.Contains(out, "Boston Bruins @ Toronto Maple Leafs") {
		t.Fatalf("expected matchup in output, got %q", out)
	}
}

func TestScheduleCommandReportsNoGame(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("TEAM_ABBREV", "MTL")

	out, err := execute(t, "schedule", "--date", "2026-10-17")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if !strings.Contains(out, "no MTL game") {
		t.Fatalf("expected no-game message, got %q", out)
	}
}

func TestScheduleCommandRejectsBadDate(t *testing.T) {
	if _, err := execute(t, "schedule", "--date", "17/10/2026"); err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestRunCommandRejectsUnknownChannel(t *testing.T) {
	t.Setenv("CHANNELS", "carrier-pigeon")
	t.Setenv("METRICS_ENABLED", "false")

	if _, err := execute(t, "run"); err == nil {
		t.Fatalf("expected channel configuration error")
	}
}

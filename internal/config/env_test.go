package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := map[string]bool{
		"true": true, "TRUE": true, "1": true, "yes": true, "on": true,
		"false": false, "0": false, "no": false, "Off": false,
		"maybe": true,
	}
	for val, want := range cases {
		t.Setenv("BOOL_TEST", val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != want {
			t.Fatalf("expected %v for %q, got %v", want, val, got)
		}
	}
}

func TestNumericEnvRejectsNonPositive(t *testing.T) {
	t.Setenv("NUM_TEST", "-3")
	if got := intEnvOrDefault("NUM_TEST", 7); got != 7 {
		t.Fatalf("expected default for negative int, got %d", got)
	}
	t.Setenv("NUM_TEST", " 12 ")
	if got := intEnvOrDefault("NUM_TEST", 7); got != 12 {
		t.Fatalf("expected trimmed int, got %d", got)
	}
	t.Setenv("NUM_TEST", "0s")
	if got := durationEnvOrDefault("NUM_TEST", time.Minute); got != time.Minute {
		t.Fatalf("expected default for zero duration, got %v", got)
	}
	t.Setenv("NUM_TEST", "90s")
	if got := durationEnvOrDefault("NUM_TEST", time.Minute); got != 90*time.Second {
		t.Fatalf("expected parsed duration, got %v", got)
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", "a,b"); len(got) != 2 || got[0] != "a" {
		t.Fatalf("expected default list, got %v", got)
	}

	t.Setenv("LIST_TEST", " x , ,y ")
	got := listEnvOrDefault("LIST_TEST", "")
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("expected trimmed list, got %v", got)
	}
}

package marquee

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaults(t *testing.T) {
	m := New(nil, "", 0, testLogger())

	if m.Current() != "Paris" {
		t.Errorf("expected initial Paris, got %q", m.Current())
	}
	if m.Interval() != time.Second {
		t.Errorf("expected 1s interval, got %v", m.Interval())
	}
}

func TestAdvanceCycles(t *testing.T) {
	m := New(nil, "", 0, testLogger())

	expected := []string{
		"New York", "Hyderabad", "London", "Sydney", "Pennsylvania", "Tokyo", "Bengaluru",
		"New York", "Hyderabad",
	}
	for i, want := range expected {
		if got := m.Advance(); got != want {
			t.Fatalf("step %d: expected %q, got %q", i, want, got)
		}
		if m.Current() != want {
			t.Fatalf("step %d: Current() = %q", i, m.Current())
		}
	}
}

func TestCustomCitiesAreCopied(t *testing.T) {
	cities := []string{"Oslo", "Lima"}
	m := New(cities, "Cairo", time.Minute, testLogger())
	cities[0] = "changed"

	if m.Current() != "Cairo" {
		t.Errorf("expected Cairo, got %q", m.Current())
	}
	if got := m.Advance(); got != "Oslo" {
		t.Errorf("expected Oslo, got %q", got)
	}
	if got := m.Advance(); got != "Lima" {
		t.Errorf("expected Lima, got %q", got)
	}
}

func TestSubscribe(t *testing.T) {
	m := New([]string{"A", "B"}, "Z", time.Minute, testLogger())
	updates, cancel := m.Subscribe()

	m.Advance()
	if got := <-updates; got != "A" {
		t.Errorf("expected A, got %q", got)
	}

	// Buffer holds one update; extra advances are dropped rather than blocking
	m.Advance()
	m.Advance()
	if got := <-updates; got != "B" {
		t.Errorf("expected B, got %q", got)
	}

	cancel()
	cancel()
	if _, ok := <-updates; ok {
		t.Error("expected channel to be closed after cancel")
	}
	m.Advance()
}

func TestStartRotatesAndStops(t *testing.T) {
	m := New([]string{"A", "B", "C"}, "Z", 10*time.Millisecond, testLogger())
	updates, cancel := m.Subscribe()
	defer cancel()

	stop := m.Start(context.Background())

	select {
	case city := <-updates:
		if city != "A" {
			t.Errorf("expected first rotation to A, got %q", city)
		}
	case <-time.After(time.Second):
		t.Fatal("marquee did not rotate")
	}

	stop()
	after := m.Current()
	time.Sleep(50 * time.Millisecond)
	if m.Current() != after {
		t.Error("marquee kept rotating after stop")
	}
}

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dicklesworthstone/responsive_tui/pkg/config"
)

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}
	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 coalesced call, got %d", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Cancel()
	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("cancelled trigger must not fire, got %d calls", got)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	initial := "breakpoints:\n  - {name: A, start: 0, end: 100}\n"
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loaded := make(chan config.Profile, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func(p config.Profile) {
			loaded <- p
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	updated := "breakpoints:\n  - {name: A, start: 0, end: 100}\n  - {name: B, start: 101, end: 200}\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-loaded:
		if p.Primary.Len() != 2 {
			t.Errorf("expected reloaded profile with 2 ranges, got %d", p.Primary.Len())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWatch_SkipsBrokenProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("breakpoints:\n  - {name: A, start: 0, end: 100}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loaded := make(chan config.Profile, 4)
	go func() {
		_ = Watch(ctx, path, 20*time.Millisecond, func(p config.Profile) {
			loaded <- p
		})
	}()

	time.Sleep(100 * time.Millisecond)
	// Inverted bounds fail validation; the callback must not fire.
	if err := os.WriteFile(path, []byte("breakpoints:\n  - {name: A, start: 500, end: 100}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-loaded:
		t.Fatal("broken profile must not be delivered")
	case <-time.After(500 * time.Millisecond):
	}
}

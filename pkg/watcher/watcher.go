package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/responsive_tui/pkg/config"
)

// Watch observes a profile file and invokes onChange with each successfully
// reloaded profile. Profiles that fail to load are logged and skipped, so a
// half-saved file never clobbers a working configuration.
//
// The parent directory is watched rather than the file itself: most editors
// save via rename, which replaces the inode the file watch is bound to.
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(config.Profile)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	deb := NewDebouncer(debounce)
	defer deb.Cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-fsw.Events:
				if !ok {
					return nil
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil || abs != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				deb.Trigger(func() {
					profile, err := config.Load(target)
					if err != nil {
						log.Printf("profile reload skipped: %v", err)
						return
					}
					onChange(profile)
				})
			case err, ok := <-fsw.Errors:
				if !ok {
					return nil
				}
				log.Printf("watch error: %v", err)
			}
		}
	})
	return g.Wait()
}

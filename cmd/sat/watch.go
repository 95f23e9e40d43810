package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/rsms/sat"
	"github.com/rsms/sat/cmd/sat/internal/diag"
)

// watchDebounce coalesces the burst of write events many editors emit
// for a single logical save.
const watchDebounce = 150 * time.Millisecond

// WatchCmd re-parses Path every time it changes on disk, demonstrating
// that the incremental Step/NextResult loop can run repeatedly against
// a live file without restarting the process — a natural fit for a
// streaming parser's external contract.
//
// Grounded on spectr's internal/track.Watcher: watch the file's
// directory rather than the file itself (editors often replace a file
// via rename-on-save, which a direct watch on the inode would miss),
// and debounce bursts of events into one re-parse.
type WatchCmd struct {
	Path          string `arg:"" help:"File to watch and re-parse on change."`
	RootNamespace string `help:"Name of the namespace installed at the root scope." default:"user"`
}

func (c *WatchCmd) Run() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	reparse := func() {
		f, err := os.Open(absPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %s\n", err)
			return
		}
		defer f.Close()

		p := sat.New(sat.WithRootNamespace(c.RootNamespace))
		if err := runParse(f, p, os.Stdout); err != nil {
			diag.Render(os.Stderr, err, isatty.IsTerminal(os.Stderr.Fd()))
		}
	}

	reparse()

	var timer *time.Timer
	var timerChan <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerChan = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(watchDebounce)
			}

		case <-timerChan:
			timer = nil
			timerChan = nil
			reparse()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %s\n", err)
		}
	}
}

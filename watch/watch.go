// Package watch converts source logs as they appear in a directory.
//
// A Watcher subscribes to fsnotify events for one directory. Every create or
// write of a source log (.csv, optionally compressed) schedules a conversion
// after a quiet period, so a file that is still being copied is converted once.
// Content that was already converted during the watcher's lifetime is skipped.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fsnotify/fsnotify"

	"github.com/ldconv/ldconv/compress"
	"github.com/ldconv/ldconv/internal/hash"
	"github.com/ldconv/ldconv/internal/options"
	"github.com/ldconv/ldconv/logging"
)

// DefaultDebounce is the quiet period between the last event for a file and its conversion.
const DefaultDebounce = 500 * time.Millisecond

// ConvertFunc converts the source log at src.
type ConvertFunc func(ctx context.Context, src string) error

// Watcher converts source logs written into a directory.
type Watcher struct {
	dir      string
	convert  ConvertFunc
	debounce time.Duration
	clock    clock.Clock
	logger   logging.Logger

	mu      sync.Mutex
	pending map[string]*clock.Timer
	hashes  map[string]uint64
	wg      sync.WaitGroup
}

type config struct {
	debounce time.Duration
	clock    clock.Clock
	logger   logging.Logger
}

// Option configures a Watcher.
type Option = options.Option[*config]

// WithDebounce sets the quiet period before a changed file is converted.
func WithDebounce(d time.Duration) Option {
	return options.New(func(c *config) error {
		if d < 0 {
			return fmt.Errorf("negative debounce: %s", d)
		}
		c.debounce = d

		return nil
	})
}

// WithClock sets the clock driving the debounce timers.
func WithClock(clk clock.Clock) Option {
	return options.NoError(func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	})
}

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(logger logging.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = logging.NewNoopLogger()
		}
		c.logger = logger
	})
}

// New creates a Watcher for dir. Conversions are performed by convert.
func New(dir string, convert ConvertFunc, opts ...Option) (*Watcher, error) {
	if convert == nil {
		return nil, errors.New("watch: nil convert function")
	}

	cfg := &config{
		debounce: DefaultDebounce,
		clock:    clock.New(),
		logger:   logging.NewNoopLogger(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Watcher{
		dir:      dir,
		convert:  convert,
		debounce: cfg.debounce,
		clock:    cfg.clock,
		logger:   cfg.logger,
		pending:  make(map[string]*clock.Timer),
		hashes:   make(map[string]uint64),
	}, nil
}

// IsSourceLog reports whether path names a CSV export, compressed or not.
func IsSourceLog(path string) bool {
	_, base := compress.Detect(path)
	return strings.EqualFold(filepath.Ext(base), ".csv")
}

// Run watches the directory until ctx is done. Conversions in flight are awaited
// before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching for source logs", logging.String("dir", w.dir))

	defer w.wg.Wait()
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !IsSourceLog(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", logging.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok && t.Stop() {
		w.wg.Done()
	}

	w.wg.Add(1)

	var timer *clock.Timer
	timer = w.clock.AfterFunc(w.debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		if w.pending[path] == timer {
			delete(w.pending, path)
		}
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		if err := w.Process(ctx, path); err != nil {
			w.logger.Error("conversion failed", logging.String("file", path), logging.Err(err))
		}
	})
	w.pending[path] = timer
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, t := range w.pending {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.pending, path)
	}
}

// Process converts path unless its content matches the last successful conversion.
//
// Returns:
//   - error: a read error, or the error of the convert function
func (w *Watcher) Process(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	sum, err := hash.Reader(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}

	w.mu.Lock()
	last, seen := w.hashes[path]
	w.mu.Unlock()

	if seen && last == sum {
		w.logger.Debug("content unchanged, skipping", logging.String("file", path))
		return nil
	}

	start := w.clock.Now()
	if err := w.convert(ctx, path); err != nil {
		return err
	}

	w.mu.Lock()
	w.hashes[path] = sum
	w.mu.Unlock()

	w.logger.Info("converted",
		logging.String("file", path),
		logging.Duration("elapsed", w.clock.Since(start)),
	)

	return nil
}

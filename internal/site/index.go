package site

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgallion1/docnav/internal/content"
	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/stats"
)

// Snapshot is one immutable build of the page forest.
type Snapshot struct {
	Forest   []*doctree.Node
	Pages    int
	Hash     string
	LoadedAt time.Time
}

// Index serves the current forest while reloading it in the background.
// Readers get a Snapshot that is never mutated; a reload swaps in a whole
// new one.
type Index struct {
	source   content.Source
	log      *slog.Logger
	interval time.Duration
	backoff  func(attempt int) time.Duration

	current atomic.Pointer[Snapshot]
	reload  sync.Mutex
	stats   *stats.Latency

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIndex creates an index over source. It starts empty; call Reload or
// Start to populate it.
func NewIndex(source content.Source, interval time.Duration, log *slog.Logger) *Index {
	ix := &Index{
		source:   source,
		log:      log,
		interval: interval,
		backoff:  Backoff,
		stats:    stats.NewLatency(time.Hour),
	}
	ix.current.Store(&Snapshot{})
	return ix
}

// Snapshot returns the current build. It is never nil.
func (ix *Index) Snapshot() *Snapshot {
	return ix.current.Load()
}

// Forest is shorthand for Snapshot().Forest.
func (ix *Index) Forest() []*doctree.Node {
	return ix.current.Load().Forest
}

// ReloadStats summarizes recent reload durations.
func (ix *Index) ReloadStats() stats.Summary {
	return ix.stats.Summary()
}

// Reload fetches pages and rebuilds the forest. It reports false when the
// page list is unchanged since the last build. On error the previous
// snapshot stays in place.
func (ix *Index) Reload(ctx context.Context) (bool, error) {
	ix.reload.Lock()
	defer ix.reload.Unlock()

	start := time.Now()
	defer ix.stats.Since(start)

	pages, err := ix.fetch(ctx)
	if err != nil {
		return false, err
	}

	if err := doctree.Validate(pages); err != nil {
		var problems []error
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			problems = joined.Unwrap()
		} else {
			problems = []error{err}
		}
		for _, p := range problems {
			ix.log.Warn("page list problem", "error", p)
		}
	}

	hash, err := pagesHash(pages)
	if err != nil {
		return false, err
	}
	if hash == ix.current.Load().Hash {
		return false, nil
	}

	snap := &Snapshot{
		Forest:   doctree.Build(pages),
		Pages:    len(pages),
		Hash:     hash,
		LoadedAt: time.Now(),
	}
	ix.current.Store(snap)
	ix.log.Info("navigation rebuilt", "pages", snap.Pages, "hash", hash[:12], "duration_ms", time.Since(start).Milliseconds())
	return true, nil
}

func (ix *Index) fetch(ctx context.Context) ([]doctree.Page, error) {
	var lastErr error
	for attempt := range MaxRetries {
		pages, err := ix.source.Pages(ctx)
		if err == nil {
			return pages, nil
		}
		lastErr = err
		if !IsRetryable(err) || attempt == MaxRetries-1 {
			break
		}
		ix.log.Warn("retryable page source error", "attempt", attempt, "error", err)
		select {
		case <-time.After(ix.backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("load pages: %w", lastErr)
}

// Start reloads once, then again every interval until Stop. A zero
// interval disables the periodic reload.
func (ix *Index) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	ix.cancel = cancel

	if _, err := ix.Reload(loopCtx); err != nil {
		ix.log.Error("initial navigation load failed", "error", err)
	}
	if ix.interval <= 0 {
		return
	}

	ix.wg.Add(1)
	go func() {
		defer ix.wg.Done()
		ticker := time.NewTicker(ix.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				if _, err := ix.Reload(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
					ix.log.Error("navigation reload failed", "error", err)
				}
			}
		}
	}()
}

// Stop ends the reload loop and waits for it to exit.
func (ix *Index) Stop() {
	if ix.cancel != nil {
		ix.cancel()
	}
	ix.wg.Wait()
}

// pagesHash fingerprints a page list independent of its order.
func pagesHash(pages []doctree.Page) (string, error) {
	sorted := slices.Clone(pages)
	slices.SortStableFunc(sorted, func(a, b doctree.Page) int {
		return strings.Compare(a.Path, b.Path)
	})
	data, err := json.Marshal(sorted)
	if err != nil {
		return "", fmt.Errorf("hash pages: %w", err)
	}
	return ContentHashHex(data), nil
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

package cache

import (
	"sync"
	"time"

	"merenda_escolar/internal/usecase/interfaces"
)

// DefaultDedupWindow matches the guide creation flow: assembling a guide is
// slow enough that 3 seconds covers the double-click/retry burst.
const DefaultDedupWindow = 3 * time.Second

// MemoryDeduper is an in-memory, time-windowed request deduplicator.
//
// It is an injectable capability, not a process-wide singleton: each usecase
// that needs duplicate protection receives its own instance. Expired entries
// are swept on every Reserve call, so the map stays bounded by the number of
// distinct fingerprints seen within one window.
type MemoryDeduper struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]time.Time
	now     func() time.Time
}

var _ interfaces.IRequestDeduplicator = (*MemoryDeduper)(nil)

func NewMemoryDeduper(window time.Duration) *MemoryDeduper {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &MemoryDeduper{
		window:  window,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Reserve registers the fingerprint and reports whether it was free, i.e. not
// seen within the deduplication window.
func (d *MemoryDeduper) Reserve(fingerprint string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.sweep(now)

	if seen, ok := d.entries[fingerprint]; ok && now.Sub(seen) < d.window {
		return false
	}
	d.entries[fingerprint] = now
	return true
}

func (d *MemoryDeduper) sweep(now time.Time) {
	for key, seen := range d.entries {
		if now.Sub(seen) >= d.window {
			delete(d.entries, key)
		}
	}
}

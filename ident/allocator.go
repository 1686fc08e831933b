package ident

import (
	"context"
	"log/slog"
	"sync"

	"github.com/joshuapare/identkit/internal/assert"
)

// LevelFatal is the slog level used when the General-Use range is exhausted.
// It sits above slog.LevelError; execution continues in degraded mode after
// the record is emitted.
const LevelFatal = slog.LevelError + 4

// Options configures an Allocator. A nil *Options selects defaults.
type Options struct {
	// Logger receives the allocator's diagnostics: error-level records for
	// out-of-range registration attempts and LevelFatal records on
	// exhaustion. Defaults to slog.Default().
	Logger *slog.Logger
}

// Allocator hands out process-lifetime-unique General-Use identifiers and
// tracks which raw values are currently live. It owns two pieces of mutable
// state: the registry (the set of in-use General-Use raw values) and the
// cursor (the lowest General-Use value not known to be registered, the next
// allocation candidate).
//
// A single mutex guards both, so registering a value and advancing the
// cursor are one atomic unit with respect to Allocate. Lock hold times are
// O(1) except for the cursor's forward scan past registered values, which is
// bounded by the run of in-use values starting at the cursor.
type Allocator struct {
	mu     sync.Mutex
	used   map[uint64]struct{}
	cursor uint64
	log    *slog.Logger
}

// New creates an empty Allocator with the cursor at the General-Use lower
// bound. Pass nil for default options.
func New(opts *Options) *Allocator {
	a := &Allocator{
		used:   make(map[uint64]struct{}),
		cursor: GeneralLowerBound,
	}
	if opts != nil {
		a.log = opts.Logger
	}
	return a
}

func (a *Allocator) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return slog.Default()
}

// Allocate returns a fresh General-Use identifier: the current cursor value,
// registered before the call returns. It never returns a value that is
// registered at the moment of the call, and concurrent calls never return
// the same raw value.
//
// When no unregistered General-Use value remains, Allocate returns the Error
// identifier and ErrExhausted rather than handing out a duplicate.
func (a *Allocator) Allocate() (Identifier, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, taken := a.used[a.cursor]; taken || a.cursor >= GeneralUpperBound {
		// The last advance found nothing free below the upper bound; the
		// fatal record was emitted then.
		return ErrorIdentifier(), ErrExhausted
	}

	id := Identifier{raw: a.cursor}
	a.used[id.raw] = struct{}{}
	a.advanceLocked(id.raw)
	return id, nil
}

// Register marks an externally-sourced identifier as in use, for example
// after decoding previously persisted data, so later Allocate calls cannot
// return the same value. Registering a value that is already registered is a
// no-op.
//
// The value must lie in General-Use. Otherwise nothing is inserted, an
// error-level record is logged, and the Error identifier is returned in
// place of the argument; callers must use the returned identifier, not the
// one they passed in.
func (a *Allocator) Register(existing Identifier) Identifier {
	if RegionOf(existing.raw) != RegionGeneral {
		a.logger().Error("refusing to register identifier outside general-use range",
			"raw", existing.raw,
			"region", existing.Region().String(),
		)
		assert.That(false, "register outside general-use range")
		return ErrorIdentifier()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.used[existing.raw] = struct{}{}
	a.advanceLocked(existing.raw)
	return existing
}

// advanceLocked applies the cursor-advance rule after inserting raw: if the
// inserted value equals the cursor, step past it, then keep scanning forward
// while the candidate is itself registered. If the scan hits the General-Use
// upper bound the space is exhausted: a LevelFatal record is logged and the
// cursor is left unchanged.
//
// Caller holds a.mu.
func (a *Allocator) advanceLocked(raw uint64) {
	if raw != a.cursor {
		return
	}

	next := a.cursor + 1
	for next < GeneralUpperBound {
		if _, taken := a.used[next]; !taken {
			a.cursor = next
			return
		}
		next++
	}

	a.logger().Log(context.Background(), LevelFatal,
		"general-use identifier space exhausted",
		"cursor", a.cursor,
		"registered", len(a.used),
	)
	assert.That(false, "general-use identifier space exhausted")
}

// Recycle returns an identifier's raw value to the available pool. Recycling
// a value twice, or one that was never registered, is not an error.
//
// When the recycled value is lower than the cursor, the cursor rewinds to
// it, so the next Allocate reuses the freed value before advancing past it.
// A higher freed value becomes reusable only once the cursor's forward scan
// reaches it. Recycling a Private-Use, Reserved, or Error identifier is
// legal and has no effect; such values are never in the registry.
func (a *Allocator) Recycle(id Identifier) {
	if RegionOf(id.raw) != RegionGeneral {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.used, id.raw)
	if id.raw < a.cursor {
		a.cursor = id.raw
	}
}

// Reset clears the registry and rewinds the cursor to the General-Use lower
// bound, restoring the freshly-constructed state. Intended for test fixtures
// and controlled reinitialization: identifiers issued before a Reset must
// not be compared against identifiers issued after it, since raw values will
// be reused.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.used)
	a.cursor = GeneralLowerBound
}

// Live returns the number of currently registered raw values.
func (a *Allocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.used)
}

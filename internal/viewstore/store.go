// Package viewstore keeps one live page per mount. Each view bundles the
// page shell, its sidebar form and the document model; all events for a view
// run under its lock, one at a time.
package viewstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/dom"
	"thirdcoast.systems/typeset/internal/shell"
	"thirdcoast.systems/typeset/internal/sidebar"
)

const (
	// SidebarRootID is the id of the element the dismissal controller watches.
	SidebarRootID = "sidebar"

	minSweepInterval = time.Second
)

var (
	ErrNotFound = errors.New("view not found")
	ErrFull     = errors.New("too many open views")
)

// View is one mounted page.
type View struct {
	ID    string
	Owner string

	Shell *shell.Shell
	Form  *sidebar.Form
	Doc   *dom.Document

	mu       sync.Mutex
	lastSeen time.Time
}

// Options tunes a Store.
type Options struct {
	IdleTTL  time.Duration
	MaxViews int
	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time
}

// Store is the registry of live views.
type Store struct {
	catalog *catalog.Catalog
	layout  []byte
	ttl     time.Duration
	max     int
	now     func() time.Time

	mu    sync.Mutex
	views map[string]*View
}

// New creates a store. layout is the rendered page skeleton every view's
// document model is parsed from.
func New(cat *catalog.Catalog, layout []byte, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		catalog: cat,
		layout:  layout,
		ttl:     opts.IdleTTL,
		max:     opts.MaxViews,
		now:     now,
		views:   make(map[string]*View),
	}
}

// Create mounts a new view owned by owner.
func (s *Store) Create(owner string) (*View, error) {
	doc, err := dom.Parse(bytes.NewReader(s.layout))
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}

	v := &View{
		ID:       uuid.NewString(),
		Owner:    owner,
		Shell:    shell.New(s.catalog.Defaults),
		Doc:      doc,
		lastSeen: s.now(),
	}
	v.Form = v.Shell.HostForm(s.catalog, doc, func() *dom.Element {
		return doc.ElementByID(SidebarRootID)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.views) >= s.max {
		s.sweepLocked(s.now())
		if len(s.views) >= s.max {
			v.Form.Close()
			return nil, ErrFull
		}
	}
	s.views[v.ID] = v
	return v, nil
}

// Get returns the view if it exists and belongs to owner.
func (s *Store) Get(id, owner string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[id]
	if !ok || v.Owner != owner {
		return nil, ErrNotFound
	}
	return v, nil
}

// Do runs fn with the view locked and marks the view as recently used.
func (s *Store) Do(id, owner string, fn func(*View) error) error {
	v, err := s.Get(id, owner)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastSeen = s.now()
	return fn(v)
}

// Len returns the number of live views.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Sweep unmounts views idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

func (s *Store) sweepLocked(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	removed := 0
	for id, v := range s.views {
		v.mu.Lock()
		idle := now.Sub(v.lastSeen)
		v.mu.Unlock()
		if idle <= s.ttl {
			continue
		}
		delete(s.views, id)
		v.unmount()
		removed++
	}
	return removed
}

// Run sweeps periodically until ctx is done.
func (s *Store) Run(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	interval := max(s.ttl/4, minSweepInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				slog.Info("swept idle views", "removed", n, "remaining", s.Len())
			}
		}
	}
}

func (v *View) unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Form.Close()
}

package viewstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/dom"
)

var layout = []byte(`<main id="page"><aside id="sidebar"><button id="sidebar-toggle"></button></aside><section id="article"></section></main>`)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newStore(t *testing.T, opts Options) (*Store, *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts.Now = clk.now
	return New(catalog.Default(), layout, opts), clk
}

func TestStore_CreateMountsDefaults(t *testing.T) {
	s, _ := newStore(t, Options{})

	v, err := s.Create("viewer-1")
	require.NoError(t, err)
	require.NotEmpty(t, v.ID)
	require.Equal(t, 1, s.Len())
	require.True(t, v.Shell.Styles().Equal(catalog.Default().Defaults))
	require.False(t, v.Form.State().IsOpen)
	require.NotNil(t, v.Doc.ElementByID(SidebarRootID))
}

func TestStore_GetChecksOwner(t *testing.T) {
	s, _ := newStore(t, Options{})
	v, err := s.Create("viewer-1")
	require.NoError(t, err)

	got, err := s.Get(v.ID, "viewer-1")
	require.NoError(t, err)
	require.Same(t, v, got)

	_, err = s.Get(v.ID, "viewer-2")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get("missing", "viewer-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ViewsAreIndependent(t *testing.T) {
	s, _ := newStore(t, Options{})
	a, err := s.Create("viewer-1")
	require.NoError(t, err)
	b, err := s.Create("viewer-1")
	require.NoError(t, err)

	require.NoError(t, s.Do(a.ID, "viewer-1", func(v *View) error {
		v.Form.Open()
		if err := v.Form.SetField(catalog.FontSize, "38px"); err != nil {
			return err
		}
		return v.Form.Submit()
	}))

	require.Equal(t, "38px", a.Shell.Styles().FontSize.ID)
	require.Equal(t, "18px", b.Shell.Styles().FontSize.ID)
}

func TestStore_DoPropagatesError(t *testing.T) {
	s, _ := newStore(t, Options{})
	v, err := s.Create("viewer-1")
	require.NoError(t, err)

	err = s.Do(v.ID, "viewer-1", func(v *View) error {
		v.Form.Open()
		return v.Form.SetField(catalog.FontSize, "100px")
	})
	require.ErrorIs(t, err, catalog.ErrUnknownOption)
}

func TestStore_DispatchThroughDocument(t *testing.T) {
	s, _ := newStore(t, Options{})
	v, err := s.Create("viewer-1")
	require.NoError(t, err)

	require.NoError(t, s.Do(v.ID, "viewer-1", func(v *View) error {
		v.Form.Toggle()
		v.Doc.Dispatch(dom.Event{Type: dom.PointerDown, Target: v.Doc.ElementByID("article")})
		return nil
	}))
	require.False(t, v.Form.State().IsOpen)
}

func TestStore_SweepEvictsIdleViews(t *testing.T) {
	s, clk := newStore(t, Options{IdleTTL: time.Minute})
	stale, err := s.Create("viewer-1")
	require.NoError(t, err)
	require.NoError(t, s.Do(stale.ID, "viewer-1", func(v *View) error {
		v.Form.Open()
		return nil
	}))

	clk.advance(45 * time.Second)
	fresh, err := s.Create("viewer-1")
	require.NoError(t, err)

	clk.advance(30 * time.Second)
	require.Equal(t, 1, s.Sweep(clk.now()))
	require.Equal(t, 1, s.Len())

	_, err = s.Get(stale.ID, "viewer-1")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(fresh.ID, "viewer-1")
	require.NoError(t, err)

	// an evicted view drops its document listeners
	require.Equal(t, 0, stale.Doc.ListenerCount(dom.KeyDown))
}

func TestStore_DoRefreshesIdleClock(t *testing.T) {
	s, clk := newStore(t, Options{IdleTTL: time.Minute})
	v, err := s.Create("viewer-1")
	require.NoError(t, err)

	clk.advance(50 * time.Second)
	require.NoError(t, s.Do(v.ID, "viewer-1", func(*View) error { return nil }))
	clk.advance(50 * time.Second)

	require.Zero(t, s.Sweep(clk.now()))
}

func TestStore_Capacity(t *testing.T) {
	s, clk := newStore(t, Options{IdleTTL: time.Minute, MaxViews: 2})
	_, err := s.Create("a")
	require.NoError(t, err)
	_, err = s.Create("b")
	require.NoError(t, err)

	_, err = s.Create("c")
	require.ErrorIs(t, err, ErrFull)

	// idle views are swept to make room
	clk.advance(2 * time.Minute)
	_, err = s.Create("c")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s, _ := newStore(t, Options{IdleTTL: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// Package dom is the server-side model of a rendered page: a parsed snapshot
// of its layout, used to answer containment questions about event targets,
// and a document-level event target that listeners attach to.
package dom

import (
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// EventType names a document-level event.
type EventType string

const (
	PointerDown EventType = "pointerdown"
	KeyDown     EventType = "keydown"
)

// Event is a global event relayed from the browser. Target is nil when the
// browser-side target could not be resolved to a snapshot element.
type Event struct {
	Type   EventType
	Target *Element
	Key    string
}

// Listener handles a dispatched event.
type Listener func(Event)

// ListenerID identifies a registration so it can be removed later.
type ListenerID uint64

// EventTarget is the listener surface of a Document.
type EventTarget interface {
	AddEventListener(typ EventType, fn Listener) ListenerID
	RemoveEventListener(typ EventType, id ListenerID)
}

type registration struct {
	id ListenerID
	fn Listener
}

// Document holds the layout snapshot and the listener registry.
type Document struct {
	tree *goquery.Document

	mu        sync.Mutex
	nextID    ListenerID
	listeners map[EventType][]registration
}

// Parse builds a Document from rendered HTML.
func Parse(r io.Reader) (*Document, error) {
	tree, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &Document{
		tree:      tree,
		listeners: make(map[EventType][]registration),
	}, nil
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if id == "" || d == nil || d.tree == nil {
		return nil
	}
	sel := d.tree.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	if sel.Length() == 0 {
		return nil
	}
	return &Element{node: sel.Get(0), sel: sel}
}

// AddEventListener registers fn for typ. Listeners run in registration order.
func (d *Document) AddEventListener(typ EventType, fn Listener) ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.listeners[typ] = append(d.listeners[typ], registration{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveEventListener removes exactly the registration id. Unknown ids are
// ignored.
func (d *Document) RemoveEventListener(typ EventType, id ListenerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	regs := d.listeners[typ]
	for i, r := range regs {
		if r.id == id {
			d.listeners[typ] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many listeners are registered for typ.
func (d *Document) ListenerCount(typ EventType) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[typ])
}

// Dispatch delivers ev to the listeners registered when dispatch starts. A
// listener removed by an earlier listener in the same dispatch is skipped.
func (d *Document) Dispatch(ev Event) {
	d.mu.Lock()
	snapshot := append([]registration(nil), d.listeners[ev.Type]...)
	d.mu.Unlock()

	for _, r := range snapshot {
		if !d.registered(ev.Type, r.id) {
			continue
		}
		r.fn(ev)
	}
}

func (d *Document) registered(typ EventType, id ListenerID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.listeners[typ] {
		if r.id == id {
			return true
		}
	}
	return false
}

// Element is a handle to a node of the layout snapshot.
type Element struct {
	node *html.Node
	sel  *goquery.Selection
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	if e == nil {
		return ""
	}
	v, _ := e.sel.Attr("id")
	return v
}

// Contains reports whether other is e itself or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil || other == nil {
		return false
	}
	if e.node == other.node {
		return true
	}
	return e.sel.Contains(other.node)
}

// Package dismiss closes a panel when the user presses outside of it or hits
// Escape while it is open.
package dismiss

import (
	"log/slog"

	"thirdcoast.systems/typeset/internal/dom"
)

// EscapeKey is the key identifier that always dismisses.
const EscapeKey = "Escape"

// RootRef resolves the panel's root element at call time. It may return nil
// when the element is not mounted.
type RootRef func() *dom.Element

// Controller owns no panel state. It keeps listeners on the document only
// while the panel is open and removes exactly those on close.
type Controller struct {
	target  dom.EventTarget
	root    RootRef
	onClose func()

	active    bool
	pointerID dom.ListenerID
	keyID     dom.ListenerID
}

// New returns an inactive controller.
func New(target dom.EventTarget, root RootRef, onClose func()) *Controller {
	return &Controller{target: target, root: root, onClose: onClose}
}

// Sync activates the controller when isOpen is true and deactivates it
// otherwise. Repeated calls with the same value are no-ops.
func (c *Controller) Sync(isOpen bool) {
	if !isOpen {
		c.deactivate()
		return
	}
	if c.active || c.target == nil {
		return
	}
	if c.resolveRoot() == nil {
		slog.Debug("dismiss controller inert: root element not mounted")
		return
	}
	c.pointerID = c.target.AddEventListener(dom.PointerDown, c.handlePointerDown)
	c.keyID = c.target.AddEventListener(dom.KeyDown, c.handleKeyDown)
	c.active = true
}

// Active reports whether listeners are currently registered.
func (c *Controller) Active() bool { return c.active }

// Teardown removes any listeners and drops the references to the root and the
// close callback. The controller cannot be reactivated afterwards.
func (c *Controller) Teardown() {
	c.deactivate()
	c.target = nil
	c.root = nil
	c.onClose = nil
}

func (c *Controller) deactivate() {
	if !c.active {
		return
	}
	c.target.RemoveEventListener(dom.PointerDown, c.pointerID)
	c.target.RemoveEventListener(dom.KeyDown, c.keyID)
	c.active = false
}

func (c *Controller) resolveRoot() *dom.Element {
	if c.root == nil {
		return nil
	}
	return c.root()
}

// Only the press location matters; an unresolved target counts as outside.
func (c *Controller) handlePointerDown(ev dom.Event) {
	root := c.resolveRoot()
	if root == nil {
		return
	}
	if root.Contains(ev.Target) {
		return
	}
	slog.Debug("press outside panel", "root", root.ID(), "target", ev.Target.ID())
	c.close()
}

func (c *Controller) handleKeyDown(ev dom.Event) {
	if ev.Key != EscapeKey {
		return
	}
	c.close()
}

func (c *Controller) close() {
	if c.onClose != nil {
		c.onClose()
	}
}

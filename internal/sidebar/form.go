// Package sidebar implements the style form: a draft StyleSet edited while
// the sidebar is open, then either committed (apply), replaced by the
// defaults and committed (reset) or discarded (dismiss).
package sidebar

import (
	"errors"
	"fmt"

	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/dismiss"
	"thirdcoast.systems/typeset/internal/dom"
)

// ErrClosed is returned for draft operations while the sidebar is closed.
var ErrClosed = errors.New("sidebar is closed")

// State is a snapshot of the form.
type State struct {
	IsOpen bool
	Draft  catalog.StyleSet
}

// Form owns the open flag and the draft. Committed styles belong to the host,
// which hands in a getter and a change callback.
type Form struct {
	catalog        *catalog.Catalog
	currentStyles  func() catalog.StyleSet
	onStylesChange func(catalog.StyleSet)

	isOpen  bool
	draft   catalog.StyleSet
	dismiss *dismiss.Controller
}

// New returns a closed form whose draft starts as the host's current styles.
// target and root feed the dismissal controller; root must resolve to the
// element that also contains the toggle control.
func New(cat *catalog.Catalog, currentStyles func() catalog.StyleSet, onStylesChange func(catalog.StyleSet), target dom.EventTarget, root dismiss.RootRef) *Form {
	f := &Form{
		catalog:        cat,
		currentStyles:  currentStyles,
		onStylesChange: onStylesChange,
		draft:          currentStyles(),
	}
	f.dismiss = dismiss.New(target, root, f.Dismiss)
	return f
}

// State returns the current open flag and draft.
func (f *Form) State() State {
	return State{IsOpen: f.isOpen, Draft: f.draft}
}

// Options exposes the catalog list a control for field is built from.
func (f *Form) Options(field catalog.Field) []catalog.OptionValue {
	return f.catalog.Options(field)
}

// Toggle opens a closed form and dismisses an open one.
func (f *Form) Toggle() {
	if f.isOpen {
		f.Dismiss()
		return
	}
	f.Open()
}

// Open re-seeds the draft from the committed styles, then opens. Opening an
// open form does nothing.
func (f *Form) Open() {
	if f.isOpen {
		return
	}
	f.draft = f.currentStyles()
	f.isOpen = true
	f.dismiss.Sync(true)
}

// SetField replaces one draft field with the catalog option optionID. Nothing
// is committed.
func (f *Form) SetField(field catalog.Field, optionID string) error {
	if !f.isOpen {
		return ErrClosed
	}
	opt, err := f.catalog.Lookup(field, optionID)
	if err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}
	f.draft = f.draft.With(field, opt)
	return nil
}

// Submit commits the draft and closes. The draft is kept until the next open.
func (f *Form) Submit() error {
	if !f.isOpen {
		return ErrClosed
	}
	f.onStylesChange(f.draft)
	f.close()
	return nil
}

// Reset sets the draft to the defaults, commits them and closes.
func (f *Form) Reset() error {
	if !f.isOpen {
		return ErrClosed
	}
	defaults := f.catalog.Defaults
	f.draft = defaults
	f.onStylesChange(defaults)
	f.close()
	return nil
}

// Dismiss closes without committing.
func (f *Form) Dismiss() {
	f.close()
}

// Close tears down the dismissal controller. The form is unusable after.
func (f *Form) Close() {
	f.isOpen = false
	f.dismiss.Teardown()
}

func (f *Form) close() {
	f.isOpen = false
	f.dismiss.Sync(false)
}

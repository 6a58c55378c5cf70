// Package shell is the page host: it owns the committed StyleSet and projects
// it as CSS custom properties on the page root.
package shell

import (
	"html/template"
	"strings"

	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/dismiss"
	"thirdcoast.systems/typeset/internal/dom"
	"thirdcoast.systems/typeset/internal/sidebar"
)

// Custom property names set on the page root.
const (
	PropFontFamily     = "--font-family"
	PropFontSize       = "--font-size"
	PropFontColor      = "--font-color"
	PropContainerWidth = "--container-width"
	PropBgColor        = "--bg-color"
)

// Property is one custom property declaration.
type Property struct {
	Name  string
	Value string
}

// Shell holds CommittedStyles. It never rejects a StyleSet; membership is
// guaranteed by the form building every option from the catalog.
type Shell struct {
	committed catalog.StyleSet
}

// New mounts a shell with the defaults committed.
func New(defaults catalog.StyleSet) *Shell {
	return &Shell{committed: defaults}
}

// Styles returns the committed set.
func (s *Shell) Styles() catalog.StyleSet {
	return s.committed
}

// SetStyles replaces the committed set as a whole.
func (s *Shell) SetStyles(next catalog.StyleSet) {
	s.committed = next
}

// HostForm mounts a sidebar form whose current styles and change callback
// are this shell's.
func (s *Shell) HostForm(cat *catalog.Catalog, target dom.EventTarget, root dismiss.RootRef) *sidebar.Form {
	return sidebar.New(cat, s.Styles, s.SetStyles, target, root)
}

// CustomProperties returns the declarations in their fixed order.
func (s *Shell) CustomProperties() []Property {
	c := s.committed
	return []Property{
		{Name: PropFontFamily, Value: c.FontFamily.Value},
		{Name: PropFontSize, Value: c.FontSize.Value},
		{Name: PropFontColor, Value: c.FontColor.Value},
		{Name: PropContainerWidth, Value: c.ContentWidth.Value},
		{Name: PropBgColor, Value: c.BackgroundColor.Value},
	}
}

// StyleAttr renders the custom properties as an inline style value. Values
// are trusted because catalog loading rejects anything that is not CSS-safe.
func (s *Shell) StyleAttr() template.CSS {
	var b strings.Builder
	for i, p := range s.CustomProperties() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(";")
	}
	return template.CSS(b.String())
}

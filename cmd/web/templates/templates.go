// Package templates renders the reader page. Markup lives in embedded
// html/template files and is exposed as templ components so handlers can
// render full pages and patch fragments over datastar SSE the same way.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"thirdcoast.systems/typeset/cmd/web/viewtypes"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/sidebar"
)

// DatastarSrc is the client runtime the page loads.
const DatastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// SignalSidebarOpen mirrors the sidebar state on the client so dismissal
// events are only relayed while it is open.
const SignalSidebarOpen = "sidebarOpen"

//go:embed *.gohtml
var files embed.FS

var tmpl = template.Must(template.New("").ParseFS(files, "*.gohtml"))

// PageData is everything the page and main templates read.
type PageData struct {
	Lang     string
	ViewURL  string
	Style    template.CSS
	Open     bool
	Controls []Control
	Article  *article.Article
	Labels   Labels
}

// Control is one form field.
type Control struct {
	Key      string
	Title    string
	Radio    bool
	Options  []ControlOption
	OnChange template.JS
}

// ControlOption is one choice of a Control.
type ControlOption struct {
	ID       string
	Title    string
	Selected bool
}

// radioFields render as radio groups; everything else is a select.
var radioFields = map[catalog.Field]bool{catalog.FontSize: true}

// NewPageData builds template data for a view. options supplies the catalog
// list behind each control; the selected option is the draft's.
func NewPageData(viewURL string, style template.CSS, state sidebar.State, options func(catalog.Field) []catalog.OptionValue, art *article.Article, lang language.Tag) PageData {
	lbl := LabelsFor(lang)
	controls := make([]Control, 0, len(catalog.Fields))
	for _, f := range catalog.Fields {
		selected := state.Draft.Get(f).ID
		opts := options(f)
		ctl := Control{
			Key:      f.Key(),
			Title:    lbl.FieldTitles[f],
			Radio:    radioFields[f],
			Options:  make([]ControlOption, 0, len(opts)),
			OnChange: jsf("@post('%s/fields/%s?option=' + encodeURIComponent(evt.target.value))", viewURL, f.Key()),
		}
		for _, o := range opts {
			ctl.Options = append(ctl.Options, ControlOption{ID: o.ID, Title: o.Title, Selected: o.ID == selected})
		}
		controls = append(controls, ctl)
	}

	base, _ := lang.Base()
	return PageData{
		Lang:     base.String(),
		ViewURL:  viewURL,
		Style:    style,
		Open:     state.IsOpen,
		Controls: controls,
		Article:  art,
		Labels:   lbl,
	}
}

func (d PageData) DatastarSrc() string { return DatastarSrc }

func (d PageData) MainClass() string { return viewtypes.Main }

func (d PageData) SidebarClass() string {
	return viewtypes.WithModifier(viewtypes.Sidebar, viewtypes.SidebarOpen, d.Open)
}

func (d PageData) ArrowClass() string {
	return viewtypes.WithModifier(viewtypes.Arrow, viewtypes.ArrowOpen, d.Open)
}

func (d PageData) ArticleClass() string { return viewtypes.Article }

func (d PageData) ButtonApply() string { return viewtypes.ButtonApply }

func (d PageData) ButtonClear() string { return viewtypes.ButtonClear }

func (d PageData) ToggleLabel() string {
	if d.Open {
		return d.Labels.ClosePanel
	}
	return d.Labels.OpenPanel
}

// Signals is the initial client signal object.
func (d PageData) Signals() string {
	b, _ := json.Marshal(map[string]bool{SignalSidebarOpen: d.Open})
	return string(b)
}

func (d PageData) post(path string) template.JS {
	return jsf("@post('%s%s')", d.ViewURL, path)
}

func (d PageData) OnToggle() template.JS { return d.post("/toggle") }

func (d PageData) OnSubmit() template.JS { return d.post("/apply") }

func (d PageData) OnReset() template.JS { return d.post("/reset") }

// OnPointerDown relays the id of the nearest identified ancestor of the press
// target; the server decides whether it is inside the sidebar.
func (d PageData) OnPointerDown() template.JS {
	return jsf("$%s && @post('%s/events/pointerdown?target=' + encodeURIComponent(evt.target.closest('[id]')?.id ?? ''))", SignalSidebarOpen, d.ViewURL)
}

func (d PageData) OnKeyDown() template.JS {
	return jsf("$%s && @post('%s/events/keydown?key=' + encodeURIComponent(evt.key))", SignalSidebarOpen, d.ViewURL)
}

// jsf formats a datastar expression. html/template treats every data-on:*
// attribute as script and would quote a plain string as a JS literal.
// View URLs and field keys are server-generated and contain no quotes.
func jsf(format string, args ...any) template.JS {
	return template.JS(fmt.Sprintf(format, args...))
}

// Page is the full document.
func Page(d PageData) templ.Component {
	return templ.FromGoHTML(tmpl.Lookup("page"), d)
}

// Main is the page root, patched after every state change.
func Main(d PageData) templ.Component {
	return templ.FromGoHTML(tmpl.Lookup("main"), d)
}

// Layout renders the main fragment to bytes. The result is the layout
// snapshot the server-side document model is parsed from.
func Layout(d PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "main", d); err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}
	return buf.Bytes(), nil
}

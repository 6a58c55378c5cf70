package markdown

import (
	"bytes"
	"html"
	"html/template"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// HeadingIDPrefix keeps generated heading ids apart from the ids of the page
// chrome the content is embedded in.
const HeadingIDPrefix = "md-"

// Markdown wraps markdown source and lazily renders it.
type Markdown struct {
	// Source is the markdown source code.
	Source string
	// renderedHTML caches the sanitized HTML rendered from Source.
	renderedHTML *template.HTML
	// renderedText caches the tag-free text rendered from Source.
	renderedText *string
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		HeadingIDPrefix: HeadingIDPrefix,
		Flags:           blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsDashes | blackfriday.SmartypantsAngledQuotes | blackfriday.SmartypantsQuotesNBSP,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.FencedCode | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.HeadingIDs | blackfriday.AutoHeadingIDs
	policy       = bluemonday.UGCPolicy()
)

func NewMarkdown(source string) *Markdown {
	return &Markdown{Source: source}
}

func (m *Markdown) run() []byte {
	return blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
}

// Render converts the Markdown Source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}

	safe := policy.SanitizeBytes(m.run())
	out := template.HTML(bytes.TrimSpace(safe))
	m.renderedHTML = &out
	return out
}

// PlainText renders the source and strips every tag.
func (m *Markdown) PlainText() string {
	if m.renderedText != nil {
		return *m.renderedText
	}

	stripped := bluemonday.StrictPolicy().SanitizeBytes(m.run())
	text := html.UnescapeString(string(bytes.TrimSpace(stripped)))
	m.renderedText = &text
	return text
}

// WordCount counts the words of the plain text rendering.
func (m *Markdown) WordCount() int {
	return len(strings.FieldsFunc(m.PlainText(), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) && !strings.ContainsRune("'’-", r)
	}))
}

// Title returns the text of the first level-one heading, or "".
func (m *Markdown) Title() string {
	for _, line := range strings.Split(m.Source, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

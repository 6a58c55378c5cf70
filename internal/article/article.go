// Package article holds the static article the page renders.
package article

import (
	_ "embed"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"thirdcoast.systems/typeset/pkg/utils/markdown"
)

// WordsPerMinute is the reading speed used for the reading time estimate.
const WordsPerMinute = 220

//go:embed article.md
var source string

// Article is the rendered, sanitized article.
type Article struct {
	Title       string
	Body        template.HTML
	Words       int
	ReadingTime time.Duration
}

// Load renders the embedded article.
func Load() (*Article, error) {
	return FromMarkdown(source)
}

// FromMarkdown renders an article from markdown source. The title is taken
// from the first level-one heading.
func FromMarkdown(src string) (*Article, error) {
	md := markdown.NewMarkdown(src)
	title := md.Title()
	if title == "" {
		return nil, fmt.Errorf("article has no title heading")
	}

	words := md.WordCount()
	minutes := math.Max(1, math.Ceil(float64(words)/WordsPerMinute))

	return &Article{
		Title:       title,
		Body:        md.Render(),
		Words:       words,
		ReadingTime: time.Duration(minutes) * time.Minute,
	}, nil
}

// Stats is the byline summary, e.g. "1,204 words, 6 min read".
func (a *Article) Stats() string {
	return fmt.Sprintf("%s words, %d min read", humanize.Comma(int64(a.Words)), int(a.ReadingTime.Minutes()))
}

// Package language wraps x/text/language to pick a supported UI locale from
// an Accept-Language header.
package language

import (
	"golang.org/x/text/language"
)

// Matcher picks one of a fixed set of supported tags.
type Matcher struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewMatcher builds a matcher. The first tag is the fallback.
func NewMatcher(supported ...language.Tag) *Matcher {
	if len(supported) == 0 {
		supported = []language.Tag{language.English}
	}
	return &Matcher{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

// Match returns the supported tag that best fits the header value. Malformed
// or empty headers yield the fallback.
func (m *Matcher) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return m.supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return m.supported[0]
	}
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No {
		return m.supported[0]
	}
	return m.supported[idx]
}

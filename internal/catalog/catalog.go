// Package catalog defines the option values a reader can pick for each style
// field, the StyleSet record built from them and the built-in defaults.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField  = errors.New("unknown style field")
	ErrUnknownOption = errors.New("option not in catalog")
)

// OptionValue is a labeled choice whose Value is inserted verbatim into CSS.
// Identity is the ID.
type OptionValue struct {
	ID    string `mapstructure:"id" json:"id" validate:"required"`
	Title string `mapstructure:"title" json:"title" validate:"required"`
	Value string `mapstructure:"value" json:"value" validate:"required,cssvalue"`
}

// Field names one of the five StyleSet fields.
type Field int

const (
	FontFamily Field = iota
	FontSize
	FontColor
	BackgroundColor
	ContentWidth
)

// Fields lists every field in form order.
var Fields = []Field{FontFamily, FontSize, FontColor, BackgroundColor, ContentWidth}

var fieldKeys = map[Field]string{
	FontFamily:      "fontFamily",
	FontSize:        "fontSize",
	FontColor:       "fontColor",
	BackgroundColor: "backgroundColor",
	ContentWidth:    "contentWidth",
}

// Key is the stable identifier used in URLs and form control names.
func (f Field) Key() string {
	if k, ok := fieldKeys[f]; ok {
		return k
	}
	return fmt.Sprintf("field(%d)", int(f))
}

func (f Field) String() string { return f.Key() }

// ParseField resolves a key produced by Field.Key.
func ParseField(key string) (Field, error) {
	for f, k := range fieldKeys {
		if k == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// StyleSet is the five-field record of chosen options. It is a value type:
// copies never share state.
type StyleSet struct {
	FontFamily      OptionValue `mapstructure:"fontFamily"`
	FontSize        OptionValue `mapstructure:"fontSize"`
	FontColor       OptionValue `mapstructure:"fontColor"`
	BackgroundColor OptionValue `mapstructure:"backgroundColor"`
	ContentWidth    OptionValue `mapstructure:"contentWidth"`
}

// Get returns the option stored for f.
func (s StyleSet) Get(f Field) OptionValue {
	switch f {
	case FontFamily:
		return s.FontFamily
	case FontSize:
		return s.FontSize
	case FontColor:
		return s.FontColor
	case BackgroundColor:
		return s.BackgroundColor
	case ContentWidth:
		return s.ContentWidth
	}
	return OptionValue{}
}

// With returns a copy of s with f replaced by opt.
func (s StyleSet) With(f Field, opt OptionValue) StyleSet {
	switch f {
	case FontFamily:
		s.FontFamily = opt
	case FontSize:
		s.FontSize = opt
	case FontColor:
		s.FontColor = opt
	case BackgroundColor:
		s.BackgroundColor = opt
	case ContentWidth:
		s.ContentWidth = opt
	}
	return s
}

// Equal compares by option identity.
func (s StyleSet) Equal(o StyleSet) bool {
	for _, f := range Fields {
		if s.Get(f).ID != o.Get(f).ID {
			return false
		}
	}
	return true
}

// Catalog holds the allowed options per field and the default StyleSet.
type Catalog struct {
	FontFamilies     []OptionValue `mapstructure:"fontFamilies" validate:"required,min=1,dive"`
	FontSizes        []OptionValue `mapstructure:"fontSizes" validate:"required,min=1,dive"`
	FontColors       []OptionValue `mapstructure:"fontColors" validate:"required,min=1,dive"`
	BackgroundColors []OptionValue `mapstructure:"backgroundColors" validate:"required,min=1,dive"`
	ContentWidths    []OptionValue `mapstructure:"contentWidths" validate:"required,min=1,dive"`

	Defaults StyleSet `mapstructure:"defaults" validate:"-"`
}

// Options returns the ordered list for f.
func (c *Catalog) Options(f Field) []OptionValue {
	switch f {
	case FontFamily:
		return c.FontFamilies
	case FontSize:
		return c.FontSizes
	case FontColor:
		return c.FontColors
	case BackgroundColor:
		return c.BackgroundColors
	case ContentWidth:
		return c.ContentWidths
	}
	return nil
}

// Lookup finds the option with the given id in f's list.
func (c *Catalog) Lookup(f Field, id string) (OptionValue, error) {
	for _, opt := range c.Options(f) {
		if opt.ID == id {
			return opt, nil
		}
	}
	return OptionValue{}, fmt.Errorf("%w: %s=%q", ErrUnknownOption, f, id)
}

// Contains reports whether every field of s is a member of its list.
func (c *Catalog) Contains(s StyleSet) bool {
	return c.check(s) == nil
}

func (c *Catalog) check(s StyleSet) error {
	for _, f := range Fields {
		if _, err := c.Lookup(f, s.Get(f).ID); err != nil {
			return err
		}
	}
	return nil
}

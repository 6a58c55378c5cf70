package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// fileCatalog is the on-disk shape; defaults are referenced by option id.
type fileCatalog struct {
	FontFamilies     []OptionValue `mapstructure:"fontFamilies"`
	FontSizes        []OptionValue `mapstructure:"fontSizes"`
	FontColors       []OptionValue `mapstructure:"fontColors"`
	BackgroundColors []OptionValue `mapstructure:"backgroundColors"`
	ContentWidths    []OptionValue `mapstructure:"contentWidths"`

	Defaults struct {
		FontFamily      string `mapstructure:"fontFamily"`
		FontSize        string `mapstructure:"fontSize"`
		FontColor       string `mapstructure:"fontColor"`
		BackgroundColor string `mapstructure:"backgroundColor"`
		ContentWidth    string `mapstructure:"contentWidth"`
	} `mapstructure:"defaults"`
}

// Load reads a catalog from a YAML, JSON or TOML file. An empty path yields
// the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		c := Default()
		if err := Validate(c); err != nil {
			return nil, err
		}
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var raw fileCatalog
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	c := &Catalog{
		FontFamilies:     raw.FontFamilies,
		FontSizes:        raw.FontSizes,
		FontColors:       raw.FontColors,
		BackgroundColors: raw.BackgroundColors,
		ContentWidths:    raw.ContentWidths,
	}
	if err := Validate(c); err != nil {
		return nil, err
	}

	ids := map[Field]string{
		FontFamily:      raw.Defaults.FontFamily,
		FontSize:        raw.Defaults.FontSize,
		FontColor:       raw.Defaults.FontColor,
		BackgroundColor: raw.Defaults.BackgroundColor,
		ContentWidth:    raw.Defaults.ContentWidth,
	}
	for _, f := range Fields {
		id := ids[f]
		if id == "" {
			// Missing default falls back to the first option of the list.
			id = c.Options(f)[0].ID
		}
		opt, err := c.Lookup(f, id)
		if err != nil {
			return nil, fmt.Errorf("catalog defaults: %w", err)
		}
		c.Defaults = c.Defaults.With(f, opt)
	}

	slog.Info("Loaded option catalog", "path", path,
		"font_families", len(c.FontFamilies),
		"font_sizes", len(c.FontSizes),
		"font_colors", len(c.FontColors),
		"background_colors", len(c.BackgroundColors),
		"content_widths", len(c.ContentWidths))

	return c, nil
}

// Validate checks list shapes, id uniqueness and that every value is safe to
// splice into a CSS declaration. Defaults, once set, must be catalog members.
func Validate(c *Catalog) error {
	validate := validator.New()
	if err := validate.RegisterValidation("cssvalue", func(fl validator.FieldLevel) bool {
		return IsCSSSafe(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register cssvalue: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	for _, f := range Fields {
		seen := make(map[string]struct{}, len(c.Options(f)))
		for _, opt := range c.Options(f) {
			if _, dup := seen[opt.ID]; dup {
				return fmt.Errorf("validate catalog: duplicate %s option %q", f, opt.ID)
			}
			seen[opt.ID] = struct{}{}
		}
	}

	if c.Defaults != (StyleSet{}) && !c.Contains(c.Defaults) {
		return fmt.Errorf("validate catalog: defaults: %w", c.check(c.Defaults))
	}
	return nil
}

var cssForbidden = []string{"expression(", "url(", "/*", "*/", "@import", "</"}

// IsCSSSafe reports whether s can be used as a custom property value inside
// an inline style attribute without terminating the declaration.
func IsCSSSafe(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if strings.ContainsAny(s, ";{}<>\"\\\n\r\x00") {
		return false
	}
	if strings.Count(s, "'")%2 != 0 {
		return false
	}
	lower := strings.ToLower(s)
	for _, bad := range cssForbidden {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}

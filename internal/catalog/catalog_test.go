package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_DefaultsAreMembers(t *testing.T) {
	c := Default()
	require.True(t, c.Contains(c.Defaults))
	require.NoError(t, Validate(c))

	for _, f := range Fields {
		require.NotEmpty(t, c.Options(f), f.Key())
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.FontFamilies[0].Value = "changed"
	require.NotEqual(t, a.FontFamilies[0].Value, b.FontFamilies[0].Value)
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.Key())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	_, err := ParseField("lineHeight")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestLookup(t *testing.T) {
	c := Default()

	opt, err := c.Lookup(FontFamily, "serif")
	require.NoError(t, err)
	require.Equal(t, "Merriweather", opt.Title)

	_, err = c.Lookup(FontFamily, "comic-sans")
	require.ErrorIs(t, err, ErrUnknownOption)

	// ids are scoped per field
	_, err = c.Lookup(FontSize, "serif")
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestStyleSet_WithDoesNotAlias(t *testing.T) {
	c := Default()
	base := c.Defaults
	serif, err := c.Lookup(FontFamily, "serif")
	require.NoError(t, err)

	next := base.With(FontFamily, serif)
	require.Equal(t, "open-sans", base.FontFamily.ID)
	require.Equal(t, "serif", next.FontFamily.ID)
	require.False(t, base.Equal(next))
	require.True(t, base.Equal(c.Defaults))
}

func TestContains_RejectsForeignOption(t *testing.T) {
	c := Default()
	s := c.Defaults.With(FontColor, OptionValue{ID: "chartreuse", Title: "Chartreuse", Value: "#7FFF00"})
	require.False(t, c.Contains(s))
}

func TestIsCSSSafe(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"18px", true},
		{"#FFC802", true},
		{"'Open Sans', sans-serif", true},
		{"'Open Sans, sans-serif", false},
		{"red; color: blue", false},
		{"url(http://example.com/x.png)", false},
		{"EXPRESSION(alert(1))", false},
		{"\"Quoted\"", false},
		{"a } b", false},
		{"</style>", false},
		{"  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, IsCSSSafe(tt.in))
		})
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoad_File(t *testing.T) {
	c, err := Load("testdata/catalog.yaml")
	require.NoError(t, err)

	require.Len(t, c.FontFamilies, 2)
	require.Equal(t, "'JetBrains Mono', monospace", c.FontFamilies[0].Value)
	require.Equal(t, "serif", c.Defaults.FontFamily.ID)
	require.Equal(t, "large", c.Defaults.FontSize.ID)
	// unspecified defaults fall back to the first option
	require.Equal(t, "ink", c.Defaults.FontColor.ID)
	require.Equal(t, "column", c.Defaults.ContentWidth.ID)
	require.True(t, c.Contains(c.Defaults))
}

func TestLoad_RejectsUnsafeValue(t *testing.T) {
	c, err := Load("testdata/unsafe.yaml")
	require.Error(t, err)
	require.Nil(t, c)
}

func TestLoad_RejectsUnknownDefault(t *testing.T) {
	c, err := Load("testdata/bad_default.yaml")
	require.ErrorIs(t, err, ErrUnknownOption)
	require.Nil(t, c)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	c := Default()
	c.FontSizes = append(c.FontSizes, c.FontSizes[0])
	require.ErrorContains(t, Validate(c), "duplicate")
}

func TestValidate_DefaultsMustBeMembers(t *testing.T) {
	c := Default()
	c.Defaults = c.Defaults.With(BackgroundColor, OptionValue{ID: "teal", Title: "Teal", Value: "#008080"})
	require.ErrorIs(t, Validate(c), ErrUnknownOption)

	c.Defaults = StyleSet{}
	require.NoError(t, Validate(c), "unset defaults are assembled after validation")
}

func TestLoad_EmptyPathIsBuiltIn(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.True(t, c.Defaults.Equal(Default().Defaults))
}

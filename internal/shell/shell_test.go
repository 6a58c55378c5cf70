package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/dom"
)

func TestShell_MountsDefaults(t *testing.T) {
	cat := catalog.Default()
	s := New(cat.Defaults)

	require.True(t, s.Styles().Equal(cat.Defaults))
	require.Equal(t, []Property{
		{Name: "--font-family", Value: "'Open Sans', sans-serif"},
		{Name: "--font-size", Value: "18px"},
		{Name: "--font-color", Value: "#000000"},
		{Name: "--container-width", Value: "1394px"},
		{Name: "--bg-color", Value: "#FFFFFF"},
	}, s.CustomProperties())
}

func TestShell_StyleAttr(t *testing.T) {
	s := New(catalog.Default().Defaults)
	require.Equal(t,
		"--font-family: 'Open Sans', sans-serif; --font-size: 18px; --font-color: #000000; --container-width: 1394px; --bg-color: #FFFFFF;",
		string(s.StyleAttr()))
}

func TestShell_SetStylesReplacesWhole(t *testing.T) {
	cat := catalog.Default()
	s := New(cat.Defaults)

	next := cat.Defaults.
		With(catalog.FontColor, cat.FontColors[2]).
		With(catalog.ContentWidth, cat.ContentWidths[1])
	s.SetStyles(next)

	require.True(t, s.Styles().Equal(next))
	props := s.CustomProperties()
	require.Equal(t, "#C4C4C4", props[2].Value)
	require.Equal(t, "948px", props[3].Value)
}

func TestShell_HostedFormCommitsIntoShell(t *testing.T) {
	cat := catalog.Default()
	doc, err := dom.Parse(strings.NewReader(`<aside id="sidebar"></aside><section id="article"></section>`))
	require.NoError(t, err)

	s := New(cat.Defaults)
	form := s.HostForm(cat, doc, func() *dom.Element { return doc.ElementByID("sidebar") })

	form.Open()
	require.NoError(t, form.SetField(catalog.FontFamily, "serif"))
	require.Equal(t, "'Open Sans', sans-serif", s.CustomProperties()[0].Value)

	require.NoError(t, form.Submit())
	serif, err := cat.Lookup(catalog.FontFamily, "serif")
	require.NoError(t, err)
	require.Equal(t, serif.Value, s.CustomProperties()[0].Value)

	form.Open()
	require.Equal(t, "serif", form.State().Draft.FontFamily.ID)
}

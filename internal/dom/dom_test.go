package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const layout = `<main id="page">
  <aside id="sidebar">
    <button id="sidebar-toggle">toggle</button>
    <form id="sidebar-form"><select id="field-fontFamily"></select></form>
  </aside>
  <section id="article"><h1 id="article-title">Title</h1></section>
</main>`

func parseLayout(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(layout))
	require.NoError(t, err)
	return doc
}

func TestElementByID(t *testing.T) {
	doc := parseLayout(t)

	el := doc.ElementByID("sidebar-form")
	require.NotNil(t, el)
	require.Equal(t, "sidebar-form", el.ID())

	require.Nil(t, doc.ElementByID("missing"))
	require.Nil(t, doc.ElementByID(""))
}

func TestElement_Contains(t *testing.T) {
	doc := parseLayout(t)
	sidebar := doc.ElementByID("sidebar")

	require.True(t, sidebar.Contains(sidebar), "an element contains itself")
	require.True(t, sidebar.Contains(doc.ElementByID("sidebar-toggle")))
	require.True(t, sidebar.Contains(doc.ElementByID("field-fontFamily")))
	require.False(t, sidebar.Contains(doc.ElementByID("article-title")))
	require.False(t, sidebar.Contains(doc.ElementByID("page")))
	require.False(t, sidebar.Contains(nil))

	var none *Element
	require.False(t, none.Contains(sidebar))
}

func TestDocument_Listeners(t *testing.T) {
	doc := parseLayout(t)

	var calls []string
	a := doc.AddEventListener(KeyDown, func(ev Event) { calls = append(calls, "a:"+ev.Key) })
	doc.AddEventListener(KeyDown, func(ev Event) { calls = append(calls, "b:"+ev.Key) })
	require.Equal(t, 2, doc.ListenerCount(KeyDown))
	require.Equal(t, 0, doc.ListenerCount(PointerDown))

	doc.Dispatch(Event{Type: KeyDown, Key: "x"})
	require.Equal(t, []string{"a:x", "b:x"}, calls)

	doc.RemoveEventListener(KeyDown, a)
	doc.RemoveEventListener(KeyDown, a)
	require.Equal(t, 1, doc.ListenerCount(KeyDown))

	calls = nil
	doc.Dispatch(Event{Type: KeyDown, Key: "y"})
	require.Equal(t, []string{"b:y"}, calls)

	calls = nil
	doc.Dispatch(Event{Type: PointerDown})
	require.Empty(t, calls)
}

func TestDocument_RemoveDuringDispatch(t *testing.T) {
	doc := parseLayout(t)

	var second ListenerID
	var ran []string
	doc.AddEventListener(PointerDown, func(Event) {
		ran = append(ran, "first")
		doc.RemoveEventListener(PointerDown, second)
	})
	second = doc.AddEventListener(PointerDown, func(Event) { ran = append(ran, "second") })

	doc.Dispatch(Event{Type: PointerDown})
	require.Equal(t, []string{"first"}, ran)
	require.Equal(t, 1, doc.ListenerCount(PointerDown))
}

// Package reader serves the article page and the sidebar's event endpoints.
package reader

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"golang.org/x/text/language"
	"thirdcoast.systems/typeset/cmd/web/handlers/common"
	"thirdcoast.systems/typeset/cmd/web/templates"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/shell"
	"thirdcoast.systems/typeset/internal/sidebar"
	"thirdcoast.systems/typeset/internal/viewstore"
)

// ViewURL is the route prefix of a view's endpoints.
func ViewURL(id string) string {
	return "/views/" + id
}

func pageData(c echo.Context, v *viewstore.View, art *article.Article) templates.PageData {
	return templates.NewPageData(
		ViewURL(v.ID),
		v.Shell.StyleAttr(),
		v.Form.State(),
		v.Form.Options,
		art,
		common.RequestLanguage(c),
	)
}

// withView runs fn on the caller's view and returns the page data rendered
// after fn, while still holding the view lock.
func withView(c echo.Context, store *viewstore.Store, owner string, art *article.Article, fn func(*viewstore.View) error) (templates.PageData, error) {
	id, err := common.RequireViewParam(c, "id")
	if err != nil {
		return templates.PageData{}, err
	}

	var data templates.PageData
	err = store.Do(id, owner, func(v *viewstore.View) error {
		if err := fn(v); err != nil {
			return err
		}
		data = pageData(c, v, art)
		return nil
	})
	if err != nil {
		return templates.PageData{}, common.ViewError(err)
	}
	return data, nil
}

// patchPage sends the re-rendered page root and the open signal.
func patchPage(c echo.Context, data templates.PageData) error {
	// datastar sets the content type and cache headers; proxies still buffer
	// unless told otherwise.
	c.Response().Header().Set("X-Accel-Buffering", "no")
	sse := datastar.NewSSE(c.Response().Writer, c.Request())

	if err := sse.PatchElementTempl(
		templates.Main(data),
		datastar.WithSelectorID("page"),
	); err != nil {
		return err
	}

	signals, _ := json.Marshal(map[string]bool{templates.SignalSidebarOpen: data.Open})
	return sse.PatchSignals(signals)
}

// Layout renders a freshly mounted page root. Element ids are the same for
// every view, so this one render is the snapshot each view's document model
// is parsed from.
func Layout(cat *catalog.Catalog, art *article.Article) ([]byte, error) {
	return templates.Layout(templates.NewPageData(
		ViewURL("layout"),
		shell.New(cat.Defaults).StyleAttr(),
		sidebar.State{Draft: cat.Defaults},
		cat.Options,
		art,
		language.English,
	))
}

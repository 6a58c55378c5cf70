package reader

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/handlers/common"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/dom"
	"thirdcoast.systems/typeset/internal/viewstore"
)

// HandlePointerDown relays a document press. target is the id of the nearest
// identified ancestor of the pressed node; empty or unknown ids resolve to no
// element.
func HandlePointerDown(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := common.RequireViewer(c, sm)
		if err != nil {
			return err
		}

		targetID := c.QueryParam("target")
		data, err := withView(c, store, owner, art, func(v *viewstore.View) error {
			v.Doc.Dispatch(dom.Event{Type: dom.PointerDown, Target: v.Doc.ElementByID(targetID)})
			return nil
		})
		if err != nil {
			return err
		}
		return patchPage(c, data)
	}
}

// HandleKeyDown relays a document key press.
func HandleKeyDown(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := common.RequireViewer(c, sm)
		if err != nil {
			return err
		}

		key := c.QueryParam("key")
		data, err := withView(c, store, owner, art, func(v *viewstore.View) error {
			v.Doc.Dispatch(dom.Event{Type: dom.KeyDown, Key: key})
			return nil
		})
		if err != nil {
			return err
		}
		return patchPage(c, data)
	}
}

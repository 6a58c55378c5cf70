package reader

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/handlers/common"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/viewstore"
)

// HandleToggle opens a closed sidebar (draft re-seeded from the committed
// styles) or dismisses an open one.
func HandleToggle(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := common.RequireViewer(c, sm)
		if err != nil {
			return err
		}

		data, err := withView(c, store, owner, art, func(v *viewstore.View) error {
			v.Form.Toggle()
			return nil
		})
		if err != nil {
			return err
		}
		return patchPage(c, data)
	}
}

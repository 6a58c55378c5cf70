package reader

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/handlers/common"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/sidebar"
	"thirdcoast.systems/typeset/internal/viewstore"
)

// HandleApply commits the draft and closes the sidebar.
func HandleApply(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := common.RequireViewer(c, sm)
		if err != nil {
			return err
		}

		data, err := withView(c, store, owner, art, func(v *viewstore.View) error {
			before := v.Shell.Styles()
			if err := v.Form.Submit(); err != nil {
				if errors.Is(err, sidebar.ErrClosed) {
					return nil
				}
				return err
			}
			if after := v.Shell.Styles(); !after.Equal(before) {
				slog.Debug("styles applied", "view", v.ID, "styles", after)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return patchPage(c, data)
	}
}

// HandleReset commits the default styles, resets the draft and closes the
// sidebar.
func HandleReset(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := common.RequireViewer(c, sm)
		if err != nil {
			return err
		}

		data, err := withView(c, store, owner, art, func(v *viewstore.View) error {
			if err := v.Form.Reset(); err != nil && !errors.Is(err, sidebar.ErrClosed) {
				return err
			}
			return nil
		})
		if err != nil {
			return err
		}
		return patchPage(c, data)
	}
}

package reader

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/handlers/common"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/sidebar"
	"thirdcoast.systems/typeset/internal/viewstore"
)

// HandleFieldChange replaces one draft field. The committed styles are not
// touched.
func HandleFieldChange(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := common.RequireViewer(c, sm)
		if err != nil {
			return err
		}

		field, err := catalog.ParseField(c.Param("field"))
		if err != nil {
			return common.ErrBadRequest("unknown field")
		}
		optionID := c.QueryParam("option")
		if optionID == "" {
			return common.ErrBadRequest("option is required")
		}

		data, err := withView(c, store, owner, art, func(v *viewstore.View) error {
			err := v.Form.SetField(field, optionID)
			if errors.Is(err, sidebar.ErrClosed) {
				// Late change event after a dismissal; the page patch below
				// resyncs the client.
				slog.Debug("field change on closed sidebar ignored", "view", v.ID, "field", field)
				return nil
			}
			return err
		})
		if err != nil {
			return err
		}
		return patchPage(c, data)
	}
}

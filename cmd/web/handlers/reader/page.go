package reader

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/handlers/common"
	"thirdcoast.systems/typeset/cmd/web/templates"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/viewstore"
)

// HandlePage mounts a fresh view and renders the full page. Every load starts
// from the default styles.
func HandlePage(sm *auth.SessionManager, store *viewstore.Store, art *article.Article) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := sm.EnsureViewer(c.Response().Writer, c.Request())
		if err != nil {
			slog.Error("failed to issue viewer session", "error", err)
			return common.ErrInternal("session unavailable")
		}

		v, err := store.Create(owner)
		if err != nil {
			if errors.Is(err, viewstore.ErrFull) {
				slog.Warn("view store full", "views", store.Len())
			}
			return common.ViewError(err)
		}

		var data templates.PageData
		if err := store.Do(v.ID, owner, func(v *viewstore.View) error {
			data = pageData(c, v, art)
			return nil
		}); err != nil {
			return common.ViewError(err)
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		return templates.Page(data).Render(c.Request().Context(), c.Response())
	}
}

package common

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/ctxkeys"
)

// RequireViewParam extracts a view id route parameter or returns a 404 error.
func RequireViewParam(c echo.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", ErrNotFound("unknown view")
	}
	return id.String(), nil
}

// RequireViewer extracts the viewer id from the session cookie. Returns 404
// when there is none: without a cookie no view can belong to the caller.
func RequireViewer(c echo.Context, sm *auth.SessionManager) (string, error) {
	id, err := sm.GetViewer(c.Request())
	if err != nil {
		return "", ErrNotFound("unknown view")
	}
	return id, nil
}

// RequestLanguage returns the negotiated UI language, English if unset.
func RequestLanguage(c echo.Context) language.Tag {
	if tag, ok := c.Request().Context().Value(ctxkeys.Language).(language.Tag); ok {
		return tag
	}
	return language.English
}

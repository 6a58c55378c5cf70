package common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/viewstore"
)

func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

func ErrUnavailable(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusServiceUnavailable, msg)
}

func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// ViewError maps an error from a view event onto a response. Unknown and
// foreign views are both 404 so ids of other viewers are not confirmed.
func ViewError(err error) error {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, viewstore.ErrNotFound):
		return ErrNotFound("unknown view")
	case errors.Is(err, viewstore.ErrFull):
		return ErrUnavailable("too many open pages, try again later")
	case errors.Is(err, catalog.ErrUnknownOption), errors.Is(err, catalog.ErrUnknownField):
		return ErrBadRequest(err.Error())
	default:
		slog.Error("view event failed", "error", err)
		return ErrInternal("view event failed")
	}
}

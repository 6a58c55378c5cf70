package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/viewstore"
)

func TestViewError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", viewstore.ErrNotFound, http.StatusNotFound},
		{"full", viewstore.ErrFull, http.StatusServiceUnavailable},
		{"unknown option", fmt.Errorf("set fontSize: %w", catalog.ErrUnknownOption), http.StatusBadRequest},
		{"unknown field", catalog.ErrUnknownField, http.StatusBadRequest},
		{"http error passes through", ErrBadRequest("nope"), http.StatusBadRequest},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *echo.HTTPError
			require.ErrorAs(t, ViewError(tt.err), &httpErr)
			require.Equal(t, tt.want, httpErr.Code)
		})
	}
}

package static

import (
	"io/fs"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssetsExist(t *testing.T) {
	expected := []string{
		"main.css",
	}

	var got []string
	err := fs.WalkDir(FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." || d.IsDir() {
			return nil
		}

		// go:embed uses forward slashes regardless of OS.
		if strings.Contains(path, "\\") {
			return &fs.PathError{Op: "walk", Path: path, Err: fs.ErrInvalid}
		}
		if strings.HasSuffix(path, ".map") {
			return &fs.PathError{Op: "walk", Path: path, Err: fs.ErrInvalid}
		}

		got = append(got, path)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(got)
	require.Equal(t, expected, got)
}

func TestStylesheetConsumesCustomProperties(t *testing.T) {
	css, err := fs.ReadFile(FS, "main.css")
	require.NoError(t, err)

	for _, prop := range []string{"--font-family", "--font-size", "--font-color", "--container-width", "--bg-color"} {
		require.Contains(t, string(css), "var("+prop+")", prop)
	}
	require.Contains(t, string(css), ".sidebar_open")
}

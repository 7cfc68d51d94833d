package ttm_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/ttm-lang/ttm"
)

// TestGolden runs every input/output pair bundled in testdata/*.txtar
// through a fresh interpreter and checks the passive buffer matches
// exactly, covering the literal end-to-end scenarios of spec.md §8.
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)
			require.Zero(t, len(archive.Files)%2, "txtar must contain paired input/output sections")

			for i := 0; i < len(archive.Files); i += 2 {
				in := archive.Files[i]
				out := archive.Files[i+1]
				require.Equal(t, "input", in.Name)
				require.Equal(t, "output", out.Name)

				interp := ttm.New(nil)
				got, err := interp.Run(string(in.Data))
				require.NoError(t, err)
				assert.Equal(t, string(out.Data), got)
			}
		})
	}
}

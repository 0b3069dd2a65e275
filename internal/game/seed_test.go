package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSeedList(t *testing.T) {
	path := writeSeedFile(t, "Helldivers 2\ndeep rock galactic\n\n  Destiny 2  \n")

	games, err := LoadSeedList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"helldivers 2", "deep rock galactic", "destiny 2"}, games)
}

func TestLoadSeedListDeduplicates(t *testing.T) {
	path := writeSeedFile(t, "Destiny 2\ndestiny 2\nDESTINY 2\n")

	games, err := LoadSeedList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"destiny 2"}, games)
}

func TestLoadSeedListMissingFile(t *testing.T) {
	_, err := LoadSeedList(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadSeedListEmptyFile(t *testing.T) {
	games, err := LoadSeedList(writeSeedFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, games)
}

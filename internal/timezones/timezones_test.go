package timezones

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Entries)
	assert.Equal(t, "UTC", c.Entries[0].Value)
	assert.True(t, c.Contains("Asia/Tokyo"))
	assert.False(t, c.Contains("Mars/Olympus_Mons"))
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Entries, c.Entries)
}

func TestLoadEmptyPathFallsBack(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Entries, c.Entries)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timezones.yaml")
	data := `timezones:
  - value: UTC
    label: UTC
  - value: Europe/Madrid
    label: Madrid
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Entries, 2)
	assert.Equal(t, "Europe/Madrid", c.Entries[1].Value)
	assert.Equal(t, "Madrid", c.Entries[1].Label)
}

func TestLoadRejectsUnknownZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timezones.yaml")
	data := `timezones:
  - value: Not/AZone
    label: Nowhere
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timezones.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezones: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

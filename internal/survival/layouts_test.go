package survival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/registry"
)

func TestBuildMapPresets(t *testing.T) {
	cfg := config.DefaultConfig().Map

	cfg.Preset = ""
	m, err := BuildMap(cfg)
	require.NoError(t, err)
	assert.Equal(t, 18*18, m.OpenTiles(), "default arena")

	for _, name := range []string{"arena", "pillars", "bunkers"} {
		cfg.Preset = name
		m, err := BuildMap(cfg)
		require.NoError(t, err, name)
		assert.Equal(t, 20, m.Cols(), name)
		assert.False(t, TileCollides(m, PlayerStart(m), m.TileSize()), "%s: player start is open", name)
	}
}

func TestPillarsLayout(t *testing.T) {
	cfg := config.DefaultConfig().Map
	cfg.Preset = "pillars"
	m, err := BuildMap(cfg)
	require.NoError(t, err)

	assert.True(t, m.IsBlocked(3, 3))
	assert.True(t, m.IsBlocked(15, 7))
	assert.False(t, m.IsBlocked(11, 11), "center stays clear")
	assert.False(t, m.IsBlocked(4, 3))
}

func TestBuildMapUnknownPreset(t *testing.T) {
	cfg := config.DefaultConfig().Map
	cfg.Preset = "maze"

	_, err := BuildMap(cfg)
	assert.ErrorIs(t, err, registry.ErrUnknownLayout)
}

func TestBuildMapLayoutWins(t *testing.T) {
	cfg := config.DefaultConfig().Map
	cfg.Preset = "maze"
	cfg.Layout = []string{
		"######",
		"#....#",
		"#....#",
		"######",
	}

	m, err := BuildMap(cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Cols())
	assert.Equal(t, 4, m.Rows())
}

func TestLayoutsAreRegistered(t *testing.T) {
	ids := []string{}
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
		assert.NotEmpty(t, info.Title)
	}
	assert.Subset(t, ids, []string{"arena", "bunkers", "pillars"})
}

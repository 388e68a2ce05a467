package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CabFace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultCatalogFramelessHasZeroOuterReveals(t *testing.T) {
	c := Default()
	r := c.Reveals(13, 1)
	assert.True(t, r.IsZero())
	assert.Equal(t, 0.125, r.Reveal)
}

func TestRevealsDropOuterOffsetsForTypesWithoutRootReveals(t *testing.T) {
	c := Default()

	base := c.Reveals(1, 1)
	assert.Equal(t, 1.5, base.Top)
	assert.Equal(t, 1.75, base.Left)

	door := c.Reveals(1, 6)
	assert.True(t, door.IsZero(), "door items never use outer reveals")
	assert.Equal(t, 1.5, door.Reveal)

	assert.Equal(t, model.RootReveals{}, c.Reveals(999, 1), "unknown style yields zero reveals")
}

func TestLookupByName(t *testing.T) {
	c := Default()

	s, ok := c.StyleByName(" frameless ")
	require.True(t, ok)
	assert.Equal(t, 13, s.ID)

	it, ok := c.ItemTypeByName("DRAWER BASE")
	require.True(t, ok)
	assert.Equal(t, 4, it.ID)

	_, ok = c.ItemTypeByName("Pantry")
	assert.False(t, ok)
}

func TestAccessoriesFor(t *testing.T) {
	c := Default()

	drawer := c.AccessoriesFor(model.NodeDrawerFront)
	require.Len(t, drawer, 1)
	assert.Equal(t, "cutlery-insert", drawer[0].ID)

	assert.Empty(t, c.AccessoriesFor(model.NodePanel))

	def, ok := c.Accessory("lazy-susan")
	require.True(t, ok)
	assert.True(t, def.Allows(model.NodePairDoor))

	_, ok = c.Accessory("nope")
	assert.False(t, ok)
}

func TestLoadYAML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "shop.yaml"))
	require.NoError(t, err)

	s, ok := c.Style(21)
	require.True(t, ok)
	assert.True(t, s.FaceFrame)
	assert.Equal(t, 1.5, s.Reveals.Reveal)

	typ, ok := c.ItemType(10)
	require.True(t, ok)
	assert.Equal(t, model.KindEndPanel, typ.Kind)
	assert.False(t, typ.UseRootReveals)

	require.Len(t, c.Accessories, 1)
	assert.Equal(t, []model.NodeType{model.NodeOpen, model.NodeDoor}, c.Accessories[0].NodeTypes)
}

func TestLoadTOML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "shop.toml"))
	require.NoError(t, err)

	s, ok := c.Style(14)
	require.True(t, ok)
	assert.True(t, s.DoublePartitions)
	assert.Equal(t, 0.125, s.Reveals.Reveal)

	typ, ok := c.ItemType(4)
	require.True(t, ok)
	assert.Equal(t, model.NodeDrawerFront, typ.DefaultFace)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(Default().Types), len(c.Types))
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("catalog.json")
	assert.Error(t, err)
}

func TestParseRejectsInvalidCatalog(t *testing.T) {
	data := []byte(`
types:
  - id: 1
    name: Base
    kind: base
    default_face: container
`)
	_, err := Parse(data, FormatYAML)
	assert.Error(t, err)

	dup := []byte(`
styles:
  - id: 1
    name: A
  - id: 1
    name: B
`)
	_, err = Parse(dup, FormatYAML)
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"catalog.yaml", "catalog.toml"} {
		path := filepath.Join(dir, "nested", name)
		require.NoError(t, Save(path, Default()))

		_, err := os.Stat(path)
		require.NoError(t, err)

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, Default().Styles, loaded.Styles, name)
		assert.Equal(t, Default().Types, loaded.Types, name)
	}
}

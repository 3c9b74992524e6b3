package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierOf(t *testing.T) {
	ident, err := IdentifierOf("metalake", "catalog", "db1", "events")
	require.NoError(t, err)
	assert.Equal(t, "events", ident.Name())
	assert.Equal(t, []string{"metalake", "catalog", "db1"}, ident.Namespace().Levels())
	assert.Equal(t, "metalake.catalog.db1.events", ident.String())

	t.Run("single segment is a root-level name", func(t *testing.T) {
		ident, err := IdentifierOf("metalake")
		require.NoError(t, err)
		assert.Equal(t, "metalake", ident.Name())
		assert.True(t, ident.Namespace().IsRoot())
		assert.Equal(t, "metalake", ident.String())
	})

	t.Run("empty fails", func(t *testing.T) {
		_, err := IdentifierOf()
		require.Error(t, err)
	})
}

func TestNameIdentifier_Parent(t *testing.T) {
	ident, err := IdentifierOf("metalake", "catalog", "db1", "events")
	require.NoError(t, err)

	parent, err := ident.Parent()
	require.NoError(t, err)
	assert.Equal(t, "db1", parent.Name())
	assert.Equal(t, "metalake.catalog", parent.Namespace().String())

	t.Run("root-level identifier has no parent", func(t *testing.T) {
		root, err := IdentifierOf("metalake")
		require.NoError(t, err)
		_, err = root.Parent()
		require.Error(t, err)
	})
}

func TestNamespace(t *testing.T) {
	ns := NewNamespace("a", "b", "c")
	assert.Equal(t, "c", ns.Last())
	assert.Equal(t, "a.b.c", ns.String())
	assert.False(t, ns.IsRoot())

	// Levels returns a copy; mutating it must not affect the namespace.
	levels := ns.Levels()
	levels[0] = "mutated"
	assert.Equal(t, "a.b.c", ns.String())

	root := NewNamespace()
	assert.True(t, root.IsRoot())
	assert.Equal(t, "", root.Last())
}

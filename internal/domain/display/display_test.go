package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaf_RejectsChildren(t *testing.T) {
	leaf := NewLeaf("Ayan Bekov")

	assert.ErrorIs(t, leaf.Add(NewLeaf("x")), ErrLeafChildren)
	assert.ErrorIs(t, leaf.Remove(NewLeaf("x")), ErrLeafChildren)

	// Still fails regardless of prior state.
	assert.ErrorIs(t, leaf.Add(NewLeaf("y")), ErrLeafChildren)
}

func TestGroup_Display(t *testing.T) {
	root := NewGroup("Best students")
	require.NoError(t, root.Add(NewLeaf("Ayan Bekov")))
	require.NoError(t, root.Add(NewLeaf("Dana Serikova")))

	want := "Best students\n" +
		"--Ayan Bekov\n" +
		"--Dana Serikova\n"
	assert.Equal(t, want, root.Display(0))
}

func TestGroup_DisplayNested(t *testing.T) {
	root := NewGroup("School")
	class := NewGroup("Class A")
	require.NoError(t, class.Add(NewLeaf("Ayan Bekov")))
	require.NoError(t, root.Add(class))

	want := "School\n" +
		"--Class A\n" +
		"----Ayan Bekov\n"
	assert.Equal(t, want, root.Display(0))
}

func TestGroup_RemoveFirstMatch(t *testing.T) {
	root := NewGroup("g")
	require.NoError(t, root.Add(NewLeaf("a")))
	require.NoError(t, root.Add(NewLeaf("a")))
	require.NoError(t, root.Add(NewLeaf("b")))

	require.NoError(t, root.Remove(NewLeaf("a")))

	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].NodeName())
	assert.Equal(t, "b", children[1].NodeName())
}

func TestGroup_RemoveAbsentIsNoOp(t *testing.T) {
	root := NewGroup("g")
	require.NoError(t, root.Add(NewLeaf("a")))

	require.NoError(t, root.Remove(NewLeaf("missing")))
	assert.Len(t, root.Children(), 1)
}

func TestGroup_RemoveGroupByIdentity(t *testing.T) {
	root := NewGroup("g")
	inner := NewGroup("inner")
	require.NoError(t, root.Add(inner))

	// A different group with the same name does not match.
	require.NoError(t, root.Remove(NewGroup("inner")))
	assert.Len(t, root.Children(), 1)

	require.NoError(t, root.Remove(inner))
	assert.Empty(t, root.Children())
}

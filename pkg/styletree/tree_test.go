package styletree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

func leaf(pairs ...string) *Tree {
	t := New()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Set(pairs[i], pairs[i+1])
	}
	return t
}

func buttonLike() *Tree {
	state := func() *Tree {
		return New().
			Set("elevated", leaf("backgroundColor", "a", "color", "b")).
			Set("contained", leaf("backgroundColor", "a", "color", "b")).
			Set("outlined", leaf("color", "b", "borderColor", "c")).
			Set("text", leaf("color", "b"))
	}
	return New().Set("active", state()).Set("disabled", state())
}

func TestUniqueNestedKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"backgroundColor", "borderColor"}, UniqueNestedKeys(leaf("backgroundColor", "x", "borderColor", "y")))
	assert.Equal(t, []string{"backgroundColor", "color", "borderColor"}, UniqueNestedKeys(buttonLike()))
	assert.Equal(t, []string{}, UniqueNestedKeys(New()))
}

func TestUniqueNestedKeysSkipsScalarsOfBranchNodes(t *testing.T) {
	t.Parallel()

	tree := New().
		Set("name", "mixed").
		Set("pressed", leaf("opacity", "0.5"))

	assert.Equal(t, []string{"opacity"}, UniqueNestedKeys(tree))
}

func TestMaxNestedLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, MaxNestedLevel(New()))
	assert.Equal(t, 0, MaxNestedLevel(leaf("foo", "bar")))
	assert.Equal(t, 1, MaxNestedLevel(New().Set("elevated", leaf("backgroundColor", "x"))))
	assert.Equal(t, 2, MaxNestedLevel(buttonLike()))

	three := New().Set("active", New().Set("contained", New().Set("pressed", leaf("color", "x"))))
	assert.Equal(t, 3, MaxNestedLevel(three))

	uneven := New().
		Set("shallow", leaf("color", "x")).
		Set("deep", New().Set("a", New().Set("b", leaf("color", "y"))))
	assert.Equal(t, 3, MaxNestedLevel(uneven))
}

func TestNilSubtreeIsNotAChild(t *testing.T) {
	t.Parallel()

	var missing *Tree
	tree := New().Set("color", "x").Set("pressed", missing)

	assert.True(t, tree.IsLeaf())
	assert.Equal(t, 0, MaxNestedLevel(tree))
	assert.Equal(t, []string{"color", "pressed"}, UniqueNestedKeys(tree))

	parent := New().Set("active", tree)
	assert.False(t, parent.IsLeaf())
	assert.Equal(t, 1, MaxNestedLevel(parent))
	assert.Equal(t, []string{"color", "pressed"}, UniqueNestedKeys(parent))
}

func TestIntrospectionDoesNotMutate(t *testing.T) {
	t.Parallel()

	tree := buttonLike()
	before, err := yaml.Marshal(tree)
	require.NoError(t, err)

	UniqueNestedKeys(tree)
	MaxNestedLevel(tree)

	after, err := yaml.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestTreeSetKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	tree := New().Set("z", 1).Set("a", 2).Set("m", 3).Set("z", 4)
	assert.Equal(t, []string{"z", "a", "m"}, tree.Keys())

	v, ok := tree.Get("z")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, tree.Len())

	var zero Tree
	zero.Set("k", "v")
	assert.Equal(t, []string{"k"}, zero.Keys())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tree := buttonLike()
	v, ok := tree.Lookup("disabled", "outlined", "borderColor")
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = tree.Lookup("disabled", "outlined", "borderColor", "deeper")
	assert.False(t, ok)
	_, ok = tree.Lookup("missing")
	assert.False(t, ok)

	sub, ok := tree.Subtree("active")
	require.True(t, ok)
	assert.Equal(t, []string{"elevated", "contained", "outlined", "text"}, sub.Keys())
}

func TestFromYAMLPreservesOrder(t *testing.T) {
	t.Parallel()

	doc := []byte(`
disabled:
  text:
    color: grey
  outlined:
    color: grey
    borderColor: grey
active:
  base: &base
    backgroundColor: white
    color: black
  copy: *base
`)
	tree, err := FromYAML("button.yaml", doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"disabled", "active"}, tree.Keys())
	assert.Equal(t, []string{"color", "borderColor", "backgroundColor"}, UniqueNestedKeys(tree))
	assert.Equal(t, 2, MaxNestedLevel(tree))

	copied, ok := tree.Lookup("active", "copy", "color")
	require.True(t, ok)
	assert.Equal(t, "black", copied)
}

func TestFromYAMLEmptyAndInvalid(t *testing.T) {
	t.Parallel()

	tree, err := FromYAML("empty.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Len())

	_, err = FromYAML("list.yaml", []byte("- a\n- b\n"))
	var parseErr *paperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "list.yaml", parseErr.Path)
	assert.Equal(t, 1, parseErr.Line)

	_, err = FromYAML("broken.yaml", []byte("a: [1, 2\n"))
	require.ErrorAs(t, err, &parseErr)
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(buttonLike())
	require.NoError(t, err)

	back, err := FromYAML("round.yaml", out)
	require.NoError(t, err)
	assert.Equal(t, buttonLike().Keys(), back.Keys())
	assert.Equal(t, UniqueNestedKeys(buttonLike()), UniqueNestedKeys(back))
}

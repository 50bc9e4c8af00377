package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/internal/testfixture"
)

func name(s string) ast.Name { return ast.Name(s) }

func queryOp() ast.OperationType { return ast.Query }

func namesToStrings(ns []ast.Name) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = string(n)
	}
	return out
}

func TestBuild_SynthesizesBuiltinScalars(t *testing.T) {
	sc, err := testfixture.LoadSDL(`type Query { name: String }`)
	require.NoError(t, err)
	for _, n := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		assert.True(t, sc.IsLeaf(name(n)), "expected builtin scalar %s to be a leaf type", n)
	}
}

func TestFieldDef_ResolvesDirectField(t *testing.T) {
	sc := testfixture.MustLoad()
	fd, ok := sc.FieldDef("Dog", "barkVolume")
	require.True(t, ok)
	assert.Equal(t, "barkVolume", string(fd.Name))
}

func TestFieldDef_MissingOnUnknownType(t *testing.T) {
	sc := testfixture.MustLoad()
	_, ok := sc.FieldDef("NoSuchType", "name")
	assert.False(t, ok)
}

func TestPossibleTypes_Union(t *testing.T) {
	sc := testfixture.MustLoad()
	types := sc.PossibleTypes("CatOrDog")
	assert.ElementsMatch(t, []string{"Cat", "Dog"}, namesToStrings(types))
}

func TestPossibleTypes_Interface(t *testing.T) {
	sc := testfixture.MustLoad()
	types := sc.PossibleTypes("Sentient")
	assert.ElementsMatch(t, []string{"Human", "Alien"}, namesToStrings(types))
}

func TestRootType_ConventionalNames(t *testing.T) {
	sc := testfixture.MustLoad()
	q, ok := sc.RootType(queryOp())
	require.True(t, ok)
	assert.Equal(t, "Query", string(q.Name))
}

func TestIsLeaf_EnumAndScalar(t *testing.T) {
	sc := testfixture.MustLoad()
	assert.True(t, sc.IsLeaf("DogCommand"))
	assert.True(t, sc.IsLeaf("Int"))
	assert.False(t, sc.IsLeaf("Dog"))
}

func TestIsComposite_ObjectInterfaceUnion(t *testing.T) {
	sc := testfixture.MustLoad()
	assert.True(t, sc.IsComposite("Dog"))
	assert.True(t, sc.IsComposite("Sentient"))
	assert.True(t, sc.IsComposite("CatOrDog"))
	assert.False(t, sc.IsComposite("Int"))
}

package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlvalidate/document"
	"github.com/shyptr/gqlvalidate/internal/testfixture"
)

func TestFragSpreads_TransitiveThroughNestedFragments(t *testing.T) {
	doc, err := testfixture.LoadQuery(`
		query { dog { ...A } }
		fragment A on Dog { ...B name }
		fragment B on Dog { barkVolume }
	`)
	require.NoError(t, err)
	dc := document.Build(doc)

	op := dc.OpDefs()[0]
	spreads := dc.FragSpreads(op.SelectionSet)

	names := make([]string, len(spreads))
	for i, n := range spreads {
		names[i] = string(n)
	}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}

func TestVarReqs_CollectsThroughFragmentArguments(t *testing.T) {
	doc, err := testfixture.LoadQuery(`
		query q($cmd: DogCommand!) { dog { ...A } }
		fragment A on Dog { doesKnowCommand(dogCommand: $cmd) }
	`)
	require.NoError(t, err)
	dc := document.Build(doc)

	op := dc.OpDefs()[0]
	vars := dc.VarReqs(op.SelectionSet)
	require.Len(t, vars, 1)
	assert.Equal(t, "cmd", string(vars[0]))
}

func TestFragDeps_OneHopOnly(t *testing.T) {
	doc, err := testfixture.LoadQuery(`
		fragment A on Dog { ...B }
		fragment B on Dog { ...C }
		fragment C on Dog { name }
	`)
	require.NoError(t, err)
	dc := document.Build(doc)

	deps := dc.FragDeps("A")
	require.Len(t, deps, 1)
	assert.Equal(t, "B", string(deps[0]))
}

package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shyptr/gqlvalidate/toposort"
)

func index(order []string, n string) int {
	for i, o := range order {
		if o == n {
			return i
		}
	}
	return -1
}

func TestSort_OrdersByDependency(t *testing.T) {
	g := toposort.Graph[string]{
		Nodes: []string{"A", "B", "C"},
		Edges: map[string][]string{
			"A": {"B"},
			"B": {"C"},
		},
	}
	result := toposort.Sort(g)
	assert.Empty(t, result.Cycles)
	assert.Less(t, index(result.Order, "C"), index(result.Order, "B"))
	assert.Less(t, index(result.Order, "B"), index(result.Order, "A"))
}

func TestSort_DetectsDirectCycle(t *testing.T) {
	g := toposort.Graph[string]{
		Nodes: []string{"A", "B"},
		Edges: map[string][]string{
			"A": {"B"},
			"B": {"A"},
		},
	}
	result := toposort.Sort(g)
	if assert.Len(t, result.Cycles, 1) {
		assert.ElementsMatch(t, []string{"A", "B"}, result.Cycles[0])
	}
}

func TestSort_DetectsSelfLoop(t *testing.T) {
	g := toposort.Graph[string]{
		Nodes: []string{"A"},
		Edges: map[string][]string{"A": {"A"}},
	}
	result := toposort.Sort(g)
	if assert.Len(t, result.Cycles, 1) {
		assert.Equal(t, []string{"A"}, result.Cycles[0])
	}
}

func TestSort_NodeDependingOnCycleIsNotItselfACycle(t *testing.T) {
	// D depends on a cycle {B, C} but is not itself cyclic.
	g := toposort.Graph[string]{
		Nodes: []string{"A", "B", "C", "D"},
		Edges: map[string][]string{
			"B": {"C"},
			"C": {"B"},
			"D": {"B"},
		},
	}
	result := toposort.Sort(g)
	assert.Len(t, result.Cycles, 1)
	assert.ElementsMatch(t, []string{"B", "C"}, result.Cycles[0])
	for _, c := range result.Cycles {
		assert.NotContains(t, c, "D")
		assert.NotContains(t, c, "A")
	}
}

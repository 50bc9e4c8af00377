package validate

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/document"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/toposort"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// validateFragments is Phase 1: fragment name uniqueness, fragment
// type-condition legality, fragment cycle detection, unused-fragment
// detection, and per-fragment selection-set/directive validation.
// Operations are not examined in this phase.
func validateFragments(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context) {
	validateUniqueNames(acc, names(dc.FragDefs(), func(f *ast.FragmentDefinition) ast.Name { return f.Name }))

	g := toposort.Graph[ast.Name]{Edges: map[ast.Name][]ast.Name{}}
	for _, f := range dc.FragDefs() {
		g.Nodes = append(g.Nodes, f.Name)
		g.Edges[f.Name] = dc.FragDeps(f.Name)
	}
	result := toposort.Sort(g)
	for _, cycle := range result.Cycles {
		acc.Add(gqlerrors.New(gqlerrors.CyclesDetected,
			"fragment definitions form a cycle", cycle...))
	}

	// Structural checks only: field existence, leaf/composite
	// selection shape, directive location legality, argument names.
	// Variable usages inside a fragment body aren't bound to any one
	// operation yet, so they're left unchecked here (a deferred
	// scope) and validated again, against each enclosing operation's
	// declared variables, by the per-operation call to
	// validateFragmentBody in Phase 2 — mirroring the teacher's
	// per-operation fragment
	// context instead of checking a fragment's variables exactly
	// once, out of context.
	deferredScope := &varScope{deferred: true}

	used := usedFragmentNames(dc)
	for _, f := range dc.FragDefs() {
		if !used[f.Name] {
			acc.Add(gqlerrors.New(gqlerrors.UnusedDefinition,
				fmt.Sprintf("fragment %q is never spread by any operation", f.Name), f.Name))
		}

		fragType, ok := sc.TypeDef(f.TypeCondition)
		if !ok {
			acc.Add(gqlerrors.New(gqlerrors.MissingTypeDefinition,
				fmt.Sprintf("fragment %q conditions on unknown type %q", f.Name, f.TypeCondition),
				f.Name))
			continue
		}
		if !sc.IsComposite(fragType.DefinitionName()) {
			acc.Add(&gqlerrors.Error{
				Kind:     gqlerrors.InvalidFragment,
				Names:    []ast.Name{f.Name},
				TypeName: f.TypeCondition,
				Hint:     "fragments can only condition on object, interface, or union types",
			})
			continue
		}

		validateFragmentBody(acc, dc, sc, deferredScope, f)
	}
}

// validateFragmentBody checks a fragment definition's own directives
// and selection set against scope. Called once, structurally, with a
// deferred scope during Phase 1, and again per enclosing operation
// with that operation's live scope during Phase 2.
func validateFragmentBody(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context, scope *varScope, f *ast.FragmentDefinition) {
	validateDirectives(acc, sc, f.Directives, typesystem.LocFragmentDefinition, scope)
	validateSelectionSet(acc, dc, sc, scope, f.SelectionSet, f.TypeCondition)
}

// usedFragmentNames computes, over every operation's selection set,
// the set of fragment names transitively spread anywhere in the
// document — the complement of this set is unused fragments.
func usedFragmentNames(dc *document.Context) map[ast.Name]bool {
	used := make(map[ast.Name]bool)
	for _, op := range dc.OpDefs() {
		for _, name := range dc.FragSpreads(op.SelectionSet) {
			used[name] = true
		}
	}
	return used
}

// names maps a slice of T to its declared names via f, preserving
// order.
func names[T any](items []T, f func(T) ast.Name) []ast.Name {
	result := make([]ast.Name, len(items))
	for i, item := range items {
		result[i] = f(item)
	}
	return result
}

// validateUniqueNames reports a NameNotUnique error for every name
// that appears more than once in declared order.
func validateUniqueNames(acc *gqlerrors.Accumulator, declared []ast.Name) {
	seen := make(map[ast.Name]bool)
	reported := make(map[ast.Name]bool)
	for _, n := range declared {
		if seen[n] {
			if !reported[n] {
				reported[n] = true
				acc.Add(gqlerrors.New(gqlerrors.NameNotUnique, "name is declared more than once", n))
			}
			continue
		}
		seen[n] = true
	}
}

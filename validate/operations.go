package validate

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/document"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// validateOperations is Phase 2, run only once Phase 1 fragment
// validation has fully succeeded: operation-name uniqueness, the
// lone-anonymous-operation rule, per-operation variable-definition
// validation, the selection-set walk rooted at the operation's root
// type, and the subscription single-root-field rule.
func validateOperations(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context) {
	var named []ast.Name
	anonymousCount := 0
	for _, op := range dc.OpDefs() {
		if op.IsAnonymous() {
			anonymousCount++
		} else {
			named = append(named, op.Name)
		}
	}
	validateUniqueNames(acc, named)
	if anonymousCount > 0 && len(dc.OpDefs()) > 1 {
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.AnonymousQueryNotAlone,
			Hint: "an anonymous operation must be the only operation in the document"})
	}

	for _, op := range dc.OpDefs() {
		validateOperation(acc, dc, sc, op)
	}
}

func directiveLocationFor(op ast.OperationType) typesystem.DirectiveLocation {
	switch op {
	case ast.Mutation:
		return typesystem.LocMutation
	case ast.Subscription:
		return typesystem.LocSubscription
	default:
		return typesystem.LocQuery
	}
}

func validateOperation(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context, op *ast.OperationDefinition) {
	scope := &varScope{defs: make(map[ast.Name]*ast.VariableDefinition), used: make(map[ast.Name]bool)}

	var varNames []ast.Name
	for _, v := range op.VariableDefinitions {
		varNames = append(varNames, v.Variable)
		if _, dup := scope.defs[v.Variable]; !dup {
			scope.defs[v.Variable] = v
		}
	}
	validateUniqueNames(acc, varNames)

	for _, v := range op.VariableDefinitions {
		if !sc.IsInputType(v.Type) {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidType, Names: []ast.Name{v.Variable},
				Hint: fmt.Sprintf("variable %q must have an input type", v.Variable)})
		}
		validateDirectives(acc, sc, v.Directives, typesystem.LocVariableDefinition, nil)
		if v.DefaultValue != nil {
			validateValue(acc, sc, v.DefaultValue, v.Type, nil)
		}
	}

	validateDirectives(acc, sc, op.Directives, directiveLocationFor(op.Operation), scope)

	rootType, ok := sc.RootType(op.Operation)
	if !ok {
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.OperationDefinitionError,
			Hint: fmt.Sprintf("schema has no root type for %s operations", op.Operation)})
		return
	}

	for _, name := range dc.VarReqs(op.SelectionSet) {
		if _, ok := scope.defs[name]; !ok {
			acc.Add(gqlerrors.New(gqlerrors.MissingVariableDefinition,
				fmt.Sprintf("variable %q is used but never declared by this operation", name), name))
		}
	}

	validateSelectionSet(acc, dc, sc, scope, op.SelectionSet, rootType.Name)

	// The walk above does not recurse past a FragmentSpread (§4.6); a
	// fragment's variable usages are instead bound here, once per
	// operation that spreads it (directly or transitively), mirroring
	// the teacher's opContext/fragUsedBy loop.
	for _, fragName := range dc.FragSpreads(op.SelectionSet) {
		frag, ok := dc.FragDef(fragName)
		if !ok {
			continue
		}
		validateFragmentBody(acc, dc, sc, scope, frag)
	}

	for _, v := range op.VariableDefinitions {
		if !scope.used[v.Variable] {
			acc.Add(gqlerrors.New(gqlerrors.UnusedDefinition,
				fmt.Sprintf("variable %q is never used", v.Variable), v.Variable))
		}
	}

	if op.Operation == ast.Subscription {
		validateSubscriptionSingleRoot(acc, dc, op)
	}
}

// validateSubscriptionSingleRoot enforces §5.2.3.1: a subscription's
// selection set must contain exactly one root field, whether that
// field is named directly, reached through a single inline fragment,
// or through a single fragment spread.
func validateSubscriptionSingleRoot(acc *gqlerrors.Accumulator, dc *document.Context, op *ast.OperationDefinition) {
	if !subscriptionHasSingleRoot(dc, op.SelectionSet) {
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.SubscriptionHasMultipleRoots, Names: []ast.Name{op.Name},
			Hint: "subscription operations must select exactly one root field"})
	}
}

func subscriptionHasSingleRoot(dc *document.Context, sels []ast.Selection) bool {
	if len(sels) != 1 {
		return false
	}
	switch s := sels[0].(type) {
	case *ast.Field:
		return true
	case *ast.InlineFragment:
		return len(s.SelectionSet) == 1
	case *ast.FragmentSpread:
		frag, ok := dc.FragDef(s.Name)
		if !ok {
			return false
		}
		return len(frag.SelectionSet) == 1
	default:
		return false
	}
}

package validate

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/document"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// frontierEntry pairs a selection with the composite type its parent
// selection set is rooted at.
type frontierEntry struct {
	parentType ast.Name
	sel        ast.Selection
}

// typenameFieldDef is the synthesized definition backing the
// meta-field `__typename`, legal on any composite type.
var typenameFieldDef = &typesystem.FieldDefinition{Name: "__typename", Type: &ast.NonNull{Type: &ast.Named{Name: "String"}}}

// validateSelectionSet runs the worklist walk of §4.6 starting from
// sels rooted at parentType, using an explicit stack so the traversal
// depth is bounded only by heap, never by the native call stack.
func validateSelectionSet(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context, scope *varScope, sels []ast.Selection, parentType ast.Name) {
	stack := make([]frontierEntry, 0, len(sels))
	for i := len(sels) - 1; i >= 0; i-- {
		stack = append(stack, frontierEntry{parentType: parentType, sel: sels[i]})
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch s := e.sel.(type) {
		case *ast.Field:
			stack = validateFieldSelection(acc, dc, sc, scope, e.parentType, s, stack)

		case *ast.InlineFragment:
			stack = validateInlineFragment(acc, sc, scope, e.parentType, s, stack)

		case *ast.FragmentSpread:
			validateFragmentSpreadUse(acc, dc, sc, scope, e.parentType, s)
		}
	}
}

func validateFieldSelection(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context, scope *varScope, parentType ast.Name, f *ast.Field, stack []frontierEntry) []frontierEntry {
	validateDirectives(acc, sc, f.Directives, typesystem.LocField, scope)

	var fieldDef *typesystem.FieldDefinition
	if f.Name == "__typename" {
		fieldDef = typenameFieldDef
	} else {
		fd, ok := sc.FieldDef(parentType, f.Name)
		if !ok {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.MissingField, Names: []ast.Name{f.Name}, TypeName: parentType})
			// No field definition means no argument or result-type
			// checks are possible; the selection's own children are
			// still skipped since we have nothing to validate them
			// against.
			return stack
		}
		fieldDef = fd
	}

	validateArguments(acc, sc, f.Arguments, fieldDef.Arguments, scope)

	resultType := ast.NamedOf(fieldDef.Type)
	if resultType == nil {
		return stack
	}
	if _, ok := sc.TypeDef(resultType.Name); !ok {
		acc.Add(gqlerrors.New(gqlerrors.MissingTypeDefinition, "field result type is not defined", resultType.Name))
		return stack
	}

	switch {
	case sc.IsLeaf(resultType.Name):
		if len(f.SelectionSet) != 0 {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidSelection, Names: []ast.Name{f.Name}, TypeName: resultType.Name,
				Hint: "scalar and enum fields must not have a selection of subfields"})
		}
	case sc.IsComposite(resultType.Name):
		if len(f.SelectionSet) == 0 {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.MissingSelection, Names: []ast.Name{f.Name}, TypeName: resultType.Name,
				Hint: "composite fields require a selection of subfields"})
			return stack
		}
		for i := len(f.SelectionSet) - 1; i >= 0; i-- {
			stack = append(stack, frontierEntry{parentType: resultType.Name, sel: f.SelectionSet[i]})
		}
	}
	return stack
}

func validateInlineFragment(acc *gqlerrors.Accumulator, sc *schema.Context, scope *varScope, parentType ast.Name, f *ast.InlineFragment, stack []frontierEntry) []frontierEntry {
	validateDirectives(acc, sc, f.Directives, typesystem.LocInlineFragment, scope)

	effectiveType := parentType
	if f.HasTypeCondition() {
		if _, ok := sc.TypeDef(f.TypeCondition); !ok || !sc.IsComposite(f.TypeCondition) {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidFragment, TypeName: f.TypeCondition,
				Hint: "inline fragment type condition must be an object, interface, or union type"})
			return stack
		}
		if !compatible(sc, parentType, f.TypeCondition) {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidFragment, TypeName: f.TypeCondition,
				Hint: fmt.Sprintf("type %q can never apply to type %q", f.TypeCondition, parentType)})
		}
		effectiveType = f.TypeCondition
	}

	for i := len(f.SelectionSet) - 1; i >= 0; i-- {
		stack = append(stack, frontierEntry{parentType: effectiveType, sel: f.SelectionSet[i]})
	}
	return stack
}

func validateFragmentSpreadUse(acc *gqlerrors.Accumulator, dc *document.Context, sc *schema.Context, scope *varScope, parentType ast.Name, s *ast.FragmentSpread) {
	validateDirectives(acc, sc, s.Directives, typesystem.LocFragmentSpread, scope)

	frag, ok := dc.FragDef(s.Name)
	if !ok {
		acc.Add(gqlerrors.New(gqlerrors.MissingDefinition, "unknown fragment", s.Name))
		return
	}
	if !compatible(sc, parentType, frag.TypeCondition) {
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidFragment, Names: []ast.Name{s.Name}, TypeName: frag.TypeCondition,
			Hint: fmt.Sprintf("fragment %q cannot be spread here, type %q can never apply to type %q", s.Name, frag.TypeCondition, parentType)})
	}
}

// compatible reports whether a selection under parentType may legally
// narrow to typeCondition: equal, or covariant in either direction.
func compatible(sc *schema.Context, parentType, typeCondition ast.Name) bool {
	if parentType == typeCondition {
		return true
	}
	return covariant(sc, parentType, typeCondition) || covariant(sc, typeCondition, parentType)
}

// covariant reports whether sub can be assumed wherever sup is
// expected, per §4.6: an Object implementing an Interface, an Object
// listed by a Union, or an Interface implementing another Interface
// (transitively).
func covariant(sc *schema.Context, sub, sup ast.Name) bool {
	subDef, ok := sc.TypeDef(sub)
	if !ok {
		return false
	}
	switch d := subDef.(type) {
	case *typesystem.ObjectTypeDefinition:
		for _, i := range d.Interfaces {
			if i == sup || covariant(sc, i, sup) {
				return true
			}
		}
		if u, ok := sc.TypeDef(sup); ok {
			if union, isUnion := u.(*typesystem.UnionTypeDefinition); isUnion {
				for _, m := range union.Members {
					if m == sub {
						return true
					}
				}
			}
		}
		return false
	case *typesystem.InterfaceTypeDefinition:
		for _, i := range d.Interfaces {
			if i == sup || covariant(sc, i, sup) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

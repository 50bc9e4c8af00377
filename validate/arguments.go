package validate

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// validateArguments checks a supplied argument list against its
// declared argument definitions (§4.7): no name supplied twice, no
// unknown name supplied, every required argument present, and every
// supplied value type-checks (§4.8).
func validateArguments(acc *gqlerrors.Accumulator, sc *schema.Context, supplied []*ast.Argument, defs []*typesystem.InputValueDefinition, scope *varScope) {
	defByName := make(map[ast.Name]*typesystem.InputValueDefinition, len(defs))
	for _, d := range defs {
		defByName[d.Name] = d
	}

	seen := make(map[ast.Name]bool)
	for _, arg := range supplied {
		if seen[arg.Name] {
			acc.Add(gqlerrors.New(gqlerrors.NameNotUnique, "argument supplied more than once", arg.Name))
			continue
		}
		seen[arg.Name] = true

		def, ok := defByName[arg.Name]
		if !ok {
			acc.Add(gqlerrors.New(gqlerrors.InvalidNamedType, "unknown argument", arg.Name))
			continue
		}
		validateValue(acc, sc, arg.Value, def.Type, scope)
	}

	for _, d := range defs {
		if seen[d.Name] {
			continue
		}
		if _, isNonNull := d.Type.(*ast.NonNull); isNonNull && !d.HasDefaultValue() {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, Names: []ast.Name{d.Name},
				Hint: fmt.Sprintf("required argument %q not supplied", d.Name)})
		}
	}
}

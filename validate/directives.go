package validate

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// validateDirectives checks directive-name uniqueness per location
// (non-repeatable directives must not appear more than once), that
// every named directive is defined by the schema, and that it lists
// loc among its legal locations (§4.9).
func validateDirectives(acc *gqlerrors.Accumulator, sc *schema.Context, dirs []*ast.Directive, loc typesystem.DirectiveLocation, scope *varScope) {
	seen := make(map[ast.Name]bool)
	for _, d := range dirs {
		def, ok := sc.DirectiveDef(d.Name)
		if !ok {
			acc.Add(gqlerrors.New(gqlerrors.MissingDefinition, "unknown directive", d.Name))
			continue
		}
		if seen[d.Name] && !def.Repeatable {
			acc.Add(gqlerrors.New(gqlerrors.NameNotUnique,
				fmt.Sprintf("directive %q is not repeatable at this location", d.Name), d.Name))
		}
		seen[d.Name] = true

		legal := false
		for _, l := range def.Locations {
			if l == loc {
				legal = true
				break
			}
		}
		if !legal {
			acc.Add(&gqlerrors.Error{
				Kind:  gqlerrors.InvalidLocation,
				Names: []ast.Name{d.Name},
				Hint:  fmt.Sprintf("directive %q is not legal at %s", d.Name, loc),
			})
		}

		validateArguments(acc, sc, d.Args, def.Arguments, scope)
	}
}

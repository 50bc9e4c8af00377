package validate

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// varScope carries the enclosing operation's variable definitions so
// validateValue can resolve Variable values to a declared type, and
// records which variables get used. A nil scope means values are
// being checked in a constant context (a variable's default value, or
// a directive on a variable definition), where variables are not
// permitted at all (§4.8). A deferred scope means values are being
// checked inside a fragment definition's own body, before any
// operation has bound it: variable usages there are left unchecked
// here and are instead validated once per operation that spreads the
// fragment (see validateFragmentBody).
type varScope struct {
	defs     map[ast.Name]*ast.VariableDefinition
	used     map[ast.Name]bool
	deferred bool
}

// typeEqual reports structural equality of two type references. The
// Open Question of how strict "variable usage compatibility" should
// be is resolved here in favor of strict structural equality rather
// than the broader covariant rule the GraphQL spec permits (see
// DESIGN.md).
func typeEqual(a, b ast.Type) bool {
	return a.String() == b.String()
}

// validateValue checks v against expectedType, driven by the shape of
// expectedType (§4.8). Unlike a runtime value coercer, this never
// inspects a variable's *runtime* value; it only checks that a
// Variable reference's declared type matches expectedType.
func validateValue(acc *gqlerrors.Accumulator, sc *schema.Context, v ast.Value, expectedType ast.Type, scope *varScope) {
	if vv, ok := v.(*ast.VariableValue); ok {
		validateVariableUsage(acc, vv, expectedType, scope)
		return
	}

	switch t := expectedType.(type) {
	case *ast.NonNull:
		if ast.IsNull(v) {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, TypeName: ast.NamedOf(expectedType).Name,
				Hint: fmt.Sprintf("expected %s, found null", expectedType.String())})
			return
		}
		validateValue(acc, sc, v, t.Type, scope)

	case *ast.List:
		if ast.IsNull(v) {
			return
		}
		if list, ok := v.(*ast.ListValue); ok {
			for _, entry := range list.Values {
				validateValue(acc, sc, entry, t.Type, scope)
			}
			return
		}
		// A single value is accepted in a list position (input
		// coercion).
		validateValue(acc, sc, v, t.Type, scope)

	case *ast.Named:
		if ast.IsNull(v) {
			return
		}
		validateNamedValue(acc, sc, v, t.Name, scope)
	}
}

func validateNamedValue(acc *gqlerrors.Accumulator, sc *schema.Context, v ast.Value, typeName ast.Name, scope *varScope) {
	def, ok := sc.TypeDef(typeName)
	if !ok {
		acc.Add(gqlerrors.New(gqlerrors.MissingTypeDefinition, "unknown type", typeName))
		return
	}

	switch d := def.(type) {
	case *typesystem.ScalarTypeDefinition:
		if !validateScalarLiteral(d.Name, v) {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, TypeName: typeName,
				Hint: fmt.Sprintf("value does not satisfy scalar %q", typeName)})
		}

	case *typesystem.EnumTypeDefinition:
		ev, ok := v.(*ast.EnumValue)
		if !ok {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, TypeName: typeName,
				Hint: "expected an enum value"})
			return
		}
		found := false
		for _, val := range d.Values {
			if val.Name == ev.Name {
				found = true
				break
			}
		}
		if !found {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, TypeName: typeName,
				Hint: fmt.Sprintf("%q is not a value of enum %q", ev.Name, typeName)})
		}

	case *typesystem.InputObjectTypeDefinition:
		obj, ok := v.(*ast.ObjectValue)
		if !ok {
			acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, TypeName: typeName,
				Hint: "expected an input object literal"})
			return
		}
		fieldDefs := make(map[ast.Name]*typesystem.InputValueDefinition, len(d.Fields))
		for _, f := range d.Fields {
			fieldDefs[f.Name] = f
		}
		seen := make(map[ast.Name]bool)
		for _, of := range obj.Fields {
			if seen[of.Name] {
				acc.Add(gqlerrors.New(gqlerrors.NameNotUnique, "input field supplied more than once", of.Name))
				continue
			}
			seen[of.Name] = true
			fd, ok := fieldDefs[of.Name]
			if !ok {
				acc.Add(gqlerrors.New(gqlerrors.InvalidNamedType,
					fmt.Sprintf("%q is not a field of input type %q", of.Name, typeName), of.Name))
				continue
			}
			validateValue(acc, sc, of.Value, fd.Type, scope)
		}
		for _, fd := range d.Fields {
			if seen[fd.Name] {
				continue
			}
			if _, isNonNull := fd.Type.(*ast.NonNull); isNonNull && !fd.HasDefaultValue() {
				acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, TypeName: typeName,
					Hint: fmt.Sprintf("required input field %q of %q not supplied", fd.Name, typeName)})
			}
		}

	default:
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidType, TypeName: typeName,
			Hint: "not a valid input type"})
	}
}

// validateScalarLiteral applies the built-in scalar coercion rules of
// §4.8; any other scalar name accepts any non-null scalar literal.
func validateScalarLiteral(name ast.Name, v ast.Value) bool {
	switch name {
	case "Int":
		_, ok := v.(*ast.IntValue)
		return ok
	case "Float":
		switch v.(type) {
		case *ast.FloatValue, *ast.IntValue:
			return true
		}
		return false
	case "String":
		_, ok := v.(*ast.StringValue)
		return ok
	case "Boolean":
		_, ok := v.(*ast.BoolValue)
		return ok
	case "ID":
		switch v.(type) {
		case *ast.StringValue, *ast.IntValue:
			return true
		}
		return false
	default:
		switch v.(type) {
		case *ast.VariableValue, *ast.NullValue:
			return false
		default:
			return true
		}
	}
}

// validateVariableUsage resolves a Variable reference against scope.
// A nil scope means variables aren't permitted here at all (a default
// value, or a directive on a variable definition), matching §4.8's
// "Default-value context". A
// deferred scope means this usage sits inside a fragment body that
// isn't bound to any one operation yet; the check is skipped here and
// runs again, against each enclosing operation's declared variables,
// when that operation's own validation binds the fragment.
func validateVariableUsage(acc *gqlerrors.Accumulator, vv *ast.VariableValue, expectedType ast.Type, scope *varScope) {
	if scope == nil {
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.InvalidLocation, Names: []ast.Name{vv.Name},
			Hint: "variables are not permitted in a default value or a variable definition's directives"})
		return
	}
	if scope.deferred {
		return
	}
	def, ok := scope.defs[vv.Name]
	if !ok {
		acc.Add(gqlerrors.New(gqlerrors.MissingVariableDefinition, "variable is not defined by the enclosing operation", vv.Name))
		return
	}
	if !typeEqual(def.Type, expectedType) {
		acc.Add(&gqlerrors.Error{Kind: gqlerrors.TypeMismatch, Names: []ast.Name{vv.Name},
			Hint: fmt.Sprintf("variable %q has type %s, used where %s is expected", vv.Name, def.Type.String(), expectedType.String())})
	}
	if scope.used != nil {
		scope.used[vv.Name] = true
	}
}

// Package gqlparser adapts github.com/vektah/gqlparser/v2 ASTs into
// this module's own ast and typesystem trees, so the validator core
// never has to import a parser itself. The adapter is the only place
// in the module aware of gqlparser's node shapes.
package gqlparser

import (
	gqlast "github.com/vektah/gqlparser/v2/ast"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// Document translates a parsed executable document into ast.Document.
func Document(doc *gqlast.QueryDocument) *ast.Document {
	out := &ast.Document{}
	for _, op := range doc.Operations {
		out.Definitions = append(out.Definitions, operationDefinition(op))
	}
	for _, frag := range doc.Fragments {
		out.Definitions = append(out.Definitions, fragmentDefinition(frag))
	}
	return out
}

func operationDefinition(op *gqlast.OperationDefinition) *ast.OperationDefinition {
	out := &ast.OperationDefinition{
		Name:         ast.Name(op.Name),
		Operation:    operationType(op.Operation),
		Directives:   directives(op.Directives),
		SelectionSet: selectionSet(op.SelectionSet),
	}
	for _, v := range op.VariableDefinitions {
		out.VariableDefinitions = append(out.VariableDefinitions, variableDefinition(v))
	}
	return out
}

func operationType(op gqlast.Operation) ast.OperationType {
	switch op {
	case gqlast.Mutation:
		return ast.Mutation
	case gqlast.Subscription:
		return ast.Subscription
	default:
		return ast.Query
	}
}

func fragmentDefinition(f *gqlast.FragmentDefinition) *ast.FragmentDefinition {
	return &ast.FragmentDefinition{
		Name:          ast.Name(f.Name),
		TypeCondition: ast.Name(f.TypeCondition),
		Directives:    directives(f.Directives),
		SelectionSet:  selectionSet(f.SelectionSet),
	}
}

func variableDefinition(v *gqlast.VariableDefinition) *ast.VariableDefinition {
	out := &ast.VariableDefinition{
		Variable:   ast.Name(v.Variable),
		Type:       typ(v.Type),
		Directives: directives(v.Directives),
	}
	if v.DefaultValue != nil {
		out.DefaultValue = value(v.DefaultValue)
	}
	return out
}

func selectionSet(sels gqlast.SelectionSet) []ast.Selection {
	if len(sels) == 0 {
		return nil
	}
	out := make([]ast.Selection, len(sels))
	for i, s := range sels {
		out[i] = selection(s)
	}
	return out
}

func selection(s gqlast.Selection) ast.Selection {
	switch sel := s.(type) {
	case *gqlast.Field:
		return &ast.Field{
			Alias:        ast.Name(sel.Alias),
			Name:         ast.Name(sel.Name),
			Arguments:    arguments(sel.Arguments),
			Directives:   directives(sel.Directives),
			SelectionSet: selectionSet(sel.SelectionSet),
		}
	case *gqlast.InlineFragment:
		return &ast.InlineFragment{
			TypeCondition: ast.Name(sel.TypeCondition),
			Directives:    directives(sel.Directives),
			SelectionSet:  selectionSet(sel.SelectionSet),
		}
	case *gqlast.FragmentSpread:
		return &ast.FragmentSpread{
			Name:       ast.Name(sel.Name),
			Directives: directives(sel.Directives),
		}
	default:
		return nil
	}
}

func arguments(args gqlast.ArgumentList) []*ast.Argument {
	if len(args) == 0 {
		return nil
	}
	out := make([]*ast.Argument, len(args))
	for i, a := range args {
		out[i] = &ast.Argument{Name: ast.Name(a.Name), Value: value(a.Value)}
	}
	return out
}

func directives(dirs gqlast.DirectiveList) []*ast.Directive {
	if len(dirs) == 0 {
		return nil
	}
	out := make([]*ast.Directive, len(dirs))
	for i, d := range dirs {
		out[i] = &ast.Directive{Name: ast.Name(d.Name), Args: arguments(d.Arguments)}
	}
	return out
}

func typ(t *gqlast.Type) ast.Type {
	if t == nil {
		return nil
	}
	var base ast.Type
	if t.NamedType != "" {
		base = &ast.Named{Name: ast.Name(t.NamedType)}
	} else {
		base = &ast.List{Type: typ(t.Elem)}
	}
	if t.NonNull {
		return &ast.NonNull{Type: base}
	}
	return base
}

func value(v *gqlast.Value) ast.Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case gqlast.Variable:
		return &ast.VariableValue{Name: ast.Name(v.Raw)}
	case gqlast.IntValue:
		return &ast.IntValue{Value: parseInt(v.Raw)}
	case gqlast.FloatValue:
		return &ast.FloatValue{Value: parseFloat(v.Raw)}
	case gqlast.StringValue, gqlast.BlockValue:
		return &ast.StringValue{Value: v.Raw}
	case gqlast.BooleanValue:
		return &ast.BoolValue{Value: v.Raw == "true"}
	case gqlast.NullValue:
		return &ast.NullValue{}
	case gqlast.EnumValue:
		return &ast.EnumValue{Name: ast.Name(v.Raw)}
	case gqlast.ListValue:
		vals := make([]ast.Value, len(v.Children))
		for i, c := range v.Children {
			vals[i] = value(c.Value)
		}
		return &ast.ListValue{Values: vals}
	case gqlast.ObjectValue:
		fields := make([]ast.ObjectField, len(v.Children))
		for i, c := range v.Children {
			fields[i] = ast.ObjectField{Name: ast.Name(c.Name), Value: value(c.Value)}
		}
		return &ast.ObjectValue{Fields: fields}
	default:
		return nil
	}
}

// SchemaDocument translates a parsed type-system document into
// typesystem.Document.
func SchemaDocument(doc *gqlast.SchemaDocument) *typesystem.Document {
	out := &typesystem.Document{}
	for _, def := range doc.Definitions {
		out.Definitions = append(out.Definitions, typeDefinition(def))
	}
	for _, dd := range doc.Directives {
		out.Definitions = append(out.Definitions, directiveDefinition(dd))
	}
	for _, sd := range doc.Schema {
		out.Definitions = append(out.Definitions, schemaDefinition(sd))
	}
	return out
}

func typeDefinition(d *gqlast.Definition) typesystem.Definition {
	switch d.Kind {
	case gqlast.Scalar:
		return &typesystem.ScalarTypeDefinition{Name: ast.Name(d.Name), Directives: directives(d.Directives)}
	case gqlast.Object:
		return &typesystem.ObjectTypeDefinition{
			Name:       ast.Name(d.Name),
			Interfaces: names(d.Interfaces),
			Directives: directives(d.Directives),
			Fields:     fieldDefinitions(d.Fields),
		}
	case gqlast.Interface:
		return &typesystem.InterfaceTypeDefinition{
			Name:       ast.Name(d.Name),
			Interfaces: names(d.Interfaces),
			Directives: directives(d.Directives),
			Fields:     fieldDefinitions(d.Fields),
		}
	case gqlast.Union:
		return &typesystem.UnionTypeDefinition{
			Name:       ast.Name(d.Name),
			Directives: directives(d.Directives),
			Members:    names(d.Types),
		}
	case gqlast.Enum:
		vals := make([]*typesystem.EnumValueDefinition, len(d.EnumValues))
		for i, ev := range d.EnumValues {
			vals[i] = &typesystem.EnumValueDefinition{Name: ast.Name(ev.Name), Directives: directives(ev.Directives)}
		}
		return &typesystem.EnumTypeDefinition{Name: ast.Name(d.Name), Directives: directives(d.Directives), Values: vals}
	case gqlast.InputObject:
		return &typesystem.InputObjectTypeDefinition{
			Name:       ast.Name(d.Name),
			Directives: directives(d.Directives),
			Fields:     inputValueDefinitions(d.Fields),
		}
	default:
		return nil
	}
}

func names(ss []string) []ast.Name {
	if len(ss) == 0 {
		return nil
	}
	out := make([]ast.Name, len(ss))
	for i, s := range ss {
		out[i] = ast.Name(s)
	}
	return out
}

func fieldDefinitions(fields gqlast.FieldList) []*typesystem.FieldDefinition {
	if len(fields) == 0 {
		return nil
	}
	out := make([]*typesystem.FieldDefinition, len(fields))
	for i, f := range fields {
		out[i] = &typesystem.FieldDefinition{
			Name:       ast.Name(f.Name),
			Arguments:  inputValueDefinitionsFromArgs(f.Arguments),
			Type:       typ(f.Type),
			Directives: directives(f.Directives),
		}
	}
	return out
}

// inputValueDefinitions translates the field list used for input
// object types, where each field may itself carry a default value.
func inputValueDefinitions(fields gqlast.FieldList) []*typesystem.InputValueDefinition {
	if len(fields) == 0 {
		return nil
	}
	out := make([]*typesystem.InputValueDefinition, len(fields))
	for i, f := range fields {
		iv := &typesystem.InputValueDefinition{
			Name:       ast.Name(f.Name),
			Type:       typ(f.Type),
			Directives: directives(f.Directives),
		}
		if f.DefaultValue != nil {
			iv.DefaultValue = value(f.DefaultValue)
		}
		out[i] = iv
	}
	return out
}

func inputValueDefinitionsFromArgs(args gqlast.ArgumentDefinitionList) []*typesystem.InputValueDefinition {
	if len(args) == 0 {
		return nil
	}
	out := make([]*typesystem.InputValueDefinition, len(args))
	for i, a := range args {
		iv := &typesystem.InputValueDefinition{
			Name:       ast.Name(a.Name),
			Type:       typ(a.Type),
			Directives: directives(a.Directives),
		}
		if a.DefaultValue != nil {
			iv.DefaultValue = value(a.DefaultValue)
		}
		out[i] = iv
	}
	return out
}

func directiveDefinition(d *gqlast.DirectiveDefinition) *typesystem.DirectiveDefinition {
	locs := make([]typesystem.DirectiveLocation, len(d.Locations))
	for i, l := range d.Locations {
		locs[i] = typesystem.DirectiveLocation(l)
	}
	return &typesystem.DirectiveDefinition{
		Name:       ast.Name(d.Name),
		Arguments:  inputValueDefinitionsFromArgs(d.Arguments),
		Repeatable: d.IsRepeatable,
		Locations:  locs,
	}
}

func schemaDefinition(s *gqlast.SchemaDefinition) *typesystem.SchemaDefinition {
	out := &typesystem.SchemaDefinition{Directives: directives(s.Directives)}
	for _, r := range s.OperationTypes {
		out.Roots = append(out.Roots, &typesystem.RootOperationTypeDefinition{
			Operation: operationType(r.Operation),
			NamedType: ast.Name(r.Type),
		})
	}
	return out
}

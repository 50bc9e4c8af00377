// Package typesystem holds the algebraic data types representing a
// GraphQL type-system document (§3.3 of the specification): the
// schema definition, type definitions, field/argument/directive
// definitions. This is the AST that schema.Context is built from; it
// carries no resolved cross-references of its own.
package typesystem

import "github.com/shyptr/gqlvalidate/ast"

// Document is a type-system document: a flat list of definitions in
// declaration order. A document may legally contain zero or one
// SchemaDefinition (§6.3); more than one is diagnosed by
// schema.Build as a supplemental invariant (see DESIGN.md).
type Document struct {
	Definitions []Definition
}

// Definition is any top-level type-system definition: a type
// definition, a directive definition, or the schema definition.
type Definition interface {
	isDefinition()
	DefinitionName() ast.Name
}

func (*ScalarTypeDefinition) isDefinition()      {}
func (*ObjectTypeDefinition) isDefinition()      {}
func (*InterfaceTypeDefinition) isDefinition()   {}
func (*UnionTypeDefinition) isDefinition()       {}
func (*EnumTypeDefinition) isDefinition()        {}
func (*InputObjectTypeDefinition) isDefinition() {}
func (*DirectiveDefinition) isDefinition()       {}
func (*SchemaDefinition) isDefinition()          {}

// TypeDefinition is the subset of Definition that introduces a named
// type: Scalar, Object, Interface, Union, Enum, or InputObject.
type TypeDefinition interface {
	Definition
	isTypeDefinition()
}

func (*ScalarTypeDefinition) isTypeDefinition()      {}
func (*ObjectTypeDefinition) isTypeDefinition()      {}
func (*InterfaceTypeDefinition) isTypeDefinition()   {}
func (*UnionTypeDefinition) isTypeDefinition()       {}
func (*EnumTypeDefinition) isTypeDefinition()        {}
func (*InputObjectTypeDefinition) isTypeDefinition() {}

// ScalarTypeDefinition introduces a leaf scalar type.
type ScalarTypeDefinition struct {
	Name       ast.Name
	Directives []*ast.Directive
}

func (s *ScalarTypeDefinition) DefinitionName() ast.Name { return s.Name }

// ObjectTypeDefinition introduces a composite output type with fields
// and, optionally, the interfaces it implements.
type ObjectTypeDefinition struct {
	Name       ast.Name
	Interfaces []ast.Name
	Directives []*ast.Directive
	Fields     []*FieldDefinition
}

func (o *ObjectTypeDefinition) DefinitionName() ast.Name { return o.Name }

// InterfaceTypeDefinition introduces an abstract output type whose
// implementers are guaranteed to carry its fields. Like object types,
// an interface may itself implement other interfaces.
type InterfaceTypeDefinition struct {
	Name       ast.Name
	Interfaces []ast.Name
	Directives []*ast.Directive
	Fields     []*FieldDefinition
}

func (i *InterfaceTypeDefinition) DefinitionName() ast.Name { return i.Name }

// UnionTypeDefinition introduces an abstract output type that is one
// of a fixed set of object types, with no fields of its own.
type UnionTypeDefinition struct {
	Name       ast.Name
	Directives []*ast.Directive
	Members    []ast.Name
}

func (u *UnionTypeDefinition) DefinitionName() ast.Name { return u.Name }

// EnumTypeDefinition introduces a leaf type whose values are a fixed
// set of names.
type EnumTypeDefinition struct {
	Name       ast.Name
	Directives []*ast.Directive
	Values     []*EnumValueDefinition
}

func (e *EnumTypeDefinition) DefinitionName() ast.Name { return e.Name }

// EnumValueDefinition is a single member of an enum type.
type EnumValueDefinition struct {
	Name       ast.Name
	Directives []*ast.Directive
}

// InputObjectTypeDefinition introduces a structured input type: a set
// of named, typed fields usable only as argument/variable types.
type InputObjectTypeDefinition struct {
	Name       ast.Name
	Directives []*ast.Directive
	Fields     []*InputValueDefinition
}

func (i *InputObjectTypeDefinition) DefinitionName() ast.Name { return i.Name }

// FieldDefinition describes one field of an object or interface type.
type FieldDefinition struct {
	Name       ast.Name
	Arguments  []*InputValueDefinition
	Type       ast.Type
	Directives []*ast.Directive
}

// InputValueDefinition describes one argument of a field/directive, or
// one field of an input object type.
type InputValueDefinition struct {
	Name         ast.Name
	Type         ast.Type
	DefaultValue ast.Value // nil if none
	Directives   []*ast.Directive
}

// HasDefaultValue reports whether the input value has a declared
// default.
func (i *InputValueDefinition) HasDefaultValue() bool { return i.DefaultValue != nil }

// DirectiveLocation names a syntactic position a directive may legally
// appear at (§4.9).
type DirectiveLocation string

const (
	LocQuery              DirectiveLocation = "QUERY"
	LocMutation           DirectiveLocation = "MUTATION"
	LocSubscription        DirectiveLocation = "SUBSCRIPTION"
	LocField              DirectiveLocation = "FIELD"
	LocFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	LocSchema               DirectiveLocation = "SCHEMA"
	LocScalar               DirectiveLocation = "SCALAR"
	LocObject               DirectiveLocation = "OBJECT"
	LocFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocInterface            DirectiveLocation = "INTERFACE"
	LocUnion                DirectiveLocation = "UNION"
	LocEnum                 DirectiveLocation = "ENUM"
	LocEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveDefinition declares a directive's arguments, repeatability,
// and legal locations.
type DirectiveDefinition struct {
	Name       ast.Name
	Arguments  []*InputValueDefinition
	Repeatable bool
	Locations  []DirectiveLocation
}

func (d *DirectiveDefinition) DefinitionName() ast.Name { return d.Name }

// SchemaDefinition names the root operation types. At most one should
// appear in a document (§6.3, §9 Open Question).
type SchemaDefinition struct {
	Directives []*ast.Directive
	Roots      []*RootOperationTypeDefinition
}

func (*SchemaDefinition) DefinitionName() ast.Name { return "" }

// RootOperationTypeDefinition binds one operation kind to its root
// object type name.
type RootOperationTypeDefinition struct {
	Operation ast.OperationType
	NamedType ast.Name
}

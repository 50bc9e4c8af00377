// Package schema builds a queryable, immutable view over a
// type-system document: built-in scalar synthesis, root operation
// type resolution, and the breadth-first field lookup through
// interfaces and unions that the validator needs to check selections
// against (§4.1).
package schema

import (
	"fmt"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/typesystem"
)

// builtinScalarNames are synthesized into a Context when the document
// does not define them explicitly (§6.3).
var builtinScalarNames = []ast.Name{"Int", "Float", "String", "Boolean", "ID"}

// Context is a built, immutable view over a type-system document.
// Once returned by Build it is safe for concurrent read access from
// multiple goroutines (§5).
type Context struct {
	types      map[ast.Name]typesystem.TypeDefinition
	directives map[ast.Name]*typesystem.DirectiveDefinition
	schemaDef  *typesystem.SchemaDefinition
}

// Build constructs a Context from doc. Built-in scalars are unioned in
// for any not already defined; on any name collision between two
// definitions, the first one encountered wins (explicit definitions
// are processed in declaration order, and are always processed before
// synthesized built-ins, so an explicit `scalar Int` always wins over
// the synthesized one). Build reports an error only for the
// supplemental invariant of at most one SchemaDefinition (§9 Open
// Question); colliding type or directive names are not fatal to Build
// and are not reported anywhere: the later definitions are ignored.
func Build(doc *typesystem.Document) (*Context, error) {
	c := &Context{
		types:      make(map[ast.Name]typesystem.TypeDefinition),
		directives: make(map[ast.Name]*typesystem.DirectiveDefinition),
	}

	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case typesystem.TypeDefinition:
			if _, exists := c.types[d.DefinitionName()]; !exists {
				c.types[d.DefinitionName()] = d
			}
		case *typesystem.DirectiveDefinition:
			if _, exists := c.directives[d.Name]; !exists {
				c.directives[d.Name] = d
			}
		case *typesystem.SchemaDefinition:
			if c.schemaDef != nil {
				return nil, fmt.Errorf("schema: document defines more than one schema block")
			}
			c.schemaDef = d
		}
	}

	for _, name := range builtinScalarNames {
		if _, exists := c.types[name]; !exists {
			c.types[name] = &typesystem.ScalarTypeDefinition{Name: name}
		}
	}

	return c, nil
}

// FindTypeDef looks up the type definition named name and reports
// whether it exists and has the requested concrete kind T.
func FindTypeDef[T typesystem.Definition](c *Context, name ast.Name) (T, bool) {
	var zero T
	def, ok := c.types[name]
	if !ok {
		return zero, false
	}
	t, ok := def.(T)
	return t, ok
}

// TypeDef looks up the type definition named name regardless of kind.
func (c *Context) TypeDef(name ast.Name) (typesystem.TypeDefinition, bool) {
	d, ok := c.types[name]
	return d, ok
}

// DirectiveDef looks up a directive definition by name.
func (c *Context) DirectiveDef(name ast.Name) (*typesystem.DirectiveDefinition, bool) {
	d, ok := c.directives[name]
	return d, ok
}

// RootType returns the object type definition serving as the root for
// op. If the document has an explicit SchemaDefinition it is
// consulted first; absent that, the conventional names Query,
// Mutation, Subscription are tried (§6.3).
func (c *Context) RootType(op ast.OperationType) (*typesystem.ObjectTypeDefinition, bool) {
	if c.schemaDef != nil {
		for _, root := range c.schemaDef.Roots {
			if root.Operation == op {
				return FindTypeDef[*typesystem.ObjectTypeDefinition](c, root.NamedType)
			}
		}
		return nil, false
	}
	var conventional ast.Name
	switch op {
	case ast.Query:
		conventional = "Query"
	case ast.Mutation:
		conventional = "Mutation"
	case ast.Subscription:
		conventional = "Subscription"
	}
	return FindTypeDef[*typesystem.ObjectTypeDefinition](c, conventional)
}

// FieldDef resolves field name on typeName via the breadth-first
// search of §4.1: match against an ObjectTypeDefinition's or
// InterfaceTypeDefinition's own fields first; on miss, enqueue that
// definition's interfaces. A UnionTypeDefinition has no fields of its
// own, so the search enqueues its member types instead. The first hit
// in declared field order on the first visited type wins, using an
// explicit FIFO queue rather than recursion.
func (c *Context) FieldDef(typeName, fieldName ast.Name) (*typesystem.FieldDefinition, bool) {
	queue := []ast.Name{typeName}
	seen := map[ast.Name]bool{typeName: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		def, ok := c.types[cur]
		if !ok {
			continue
		}

		var fields []*typesystem.FieldDefinition
		var next []ast.Name
		switch d := def.(type) {
		case *typesystem.ObjectTypeDefinition:
			fields, next = d.Fields, d.Interfaces
		case *typesystem.InterfaceTypeDefinition:
			fields, next = d.Fields, d.Interfaces
		case *typesystem.UnionTypeDefinition:
			next = d.Members
		default:
			continue
		}

		for _, f := range fields {
			if f.Name == fieldName {
				return f, true
			}
		}
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return nil, false
}

// PossibleTypes returns, via an explicit FIFO queue (never recursion),
// the set of concrete object type names that a selection under
// typeName may validly narrow to: typeName itself if it is an object
// type, every union member if it is a union type, or every object type
// implementing it (transitively, through interfaces implementing
// interfaces) if it is an interface type.
func (c *Context) PossibleTypes(typeName ast.Name) []ast.Name {
	def, ok := c.types[typeName]
	if !ok {
		return nil
	}
	switch d := def.(type) {
	case *typesystem.ObjectTypeDefinition:
		return []ast.Name{d.Name}
	case *typesystem.UnionTypeDefinition:
		return append([]ast.Name(nil), d.Members...)
	case *typesystem.InterfaceTypeDefinition:
		return c.implementersOf(d.Name)
	default:
		return nil
	}
}

// implementersOf performs a breadth-first scan over every object and
// interface definition in the schema to find transitive implementers
// of the named interface.
func (c *Context) implementersOf(ifaceName ast.Name) []ast.Name {
	var result []ast.Name
	queue := []ast.Name{ifaceName}
	seen := map[ast.Name]bool{ifaceName: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, def := range c.types {
			var name ast.Name
			var ifaces []ast.Name
			switch d := def.(type) {
			case *typesystem.ObjectTypeDefinition:
				name, ifaces = d.Name, d.Interfaces
			case *typesystem.InterfaceTypeDefinition:
				name, ifaces = d.Name, d.Interfaces
			default:
				continue
			}
			if seen[name] {
				continue
			}
			for _, i := range ifaces {
				if i == cur {
					if _, isObj := def.(*typesystem.ObjectTypeDefinition); isObj {
						result = append(result, name)
					}
					seen[name] = true
					queue = append(queue, name)
					break
				}
			}
		}
	}
	return result
}

// IsInputType reports whether the named type, after unwrapping
// NonNull/List, resolves to a scalar, enum, or input object type.
func (c *Context) IsInputType(t ast.Type) bool {
	named := ast.NamedOf(t)
	if named == nil {
		return false
	}
	def, ok := c.types[named.Name]
	if !ok {
		return false
	}
	switch def.(type) {
	case *typesystem.ScalarTypeDefinition, *typesystem.EnumTypeDefinition, *typesystem.InputObjectTypeDefinition:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether the named type, after unwrapping
// NonNull/List, resolves to a scalar, object, interface, union, or
// enum type.
func (c *Context) IsOutputType(t ast.Type) bool {
	named := ast.NamedOf(t)
	if named == nil {
		return false
	}
	def, ok := c.types[named.Name]
	if !ok {
		return false
	}
	switch def.(type) {
	case *typesystem.ScalarTypeDefinition, *typesystem.ObjectTypeDefinition,
		*typesystem.InterfaceTypeDefinition, *typesystem.UnionTypeDefinition,
		*typesystem.EnumTypeDefinition:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether typeName names a scalar or enum type, i.e. a
// type whose selections must not carry a sub-selection set (§4.6).
func (c *Context) IsLeaf(typeName ast.Name) bool {
	def, ok := c.types[typeName]
	if !ok {
		return false
	}
	switch def.(type) {
	case *typesystem.ScalarTypeDefinition, *typesystem.EnumTypeDefinition:
		return true
	default:
		return false
	}
}

// IsComposite reports whether typeName names an object, interface, or
// union type, i.e. a type whose selections must carry a sub-selection
// set (§4.6).
func (c *Context) IsComposite(typeName ast.Name) bool {
	def, ok := c.types[typeName]
	if !ok {
		return false
	}
	switch def.(type) {
	case *typesystem.ObjectTypeDefinition, *typesystem.InterfaceTypeDefinition, *typesystem.UnionTypeDefinition:
		return true
	default:
		return false
	}
}

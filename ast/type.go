package ast

import "fmt"

// Type is the recursive type grammar shared by variable declarations,
// field definitions and input value definitions:
//
//	Type = Named(Name) | NonNull(Type) | List(Type)
//
// The grammar forbids NonNull(NonNull(_)), but that is the parser's
// concern; this package tolerates arbitrarily nested wrapping.
type Type interface {
	isType()
	String() string
}

// Named is a reference to a type by name, e.g. `String` or `Dog`.
type Named struct {
	Name Name
}

func (*Named) isType()          {}
func (n *Named) String() string { return string(n.Name) }

// NonNull wraps a type that may never resolve to null, e.g. `String!`.
type NonNull struct {
	Type Type
}

func (*NonNull) isType()          {}
func (n *NonNull) String() string { return fmt.Sprintf("%s!", n.Type.String()) }

// List wraps a type representing an ordered sequence, e.g. `[String]`.
type List struct {
	Type Type
}

func (*List) isType()          {}
func (l *List) String() string { return fmt.Sprintf("[%s]", l.Type.String()) }

// NamedOf unwraps NonNull/List wrappers and returns the innermost
// *Named, or nil if t is nil.
func NamedOf(t Type) *Named {
	for t != nil {
		switch v := t.(type) {
		case *Named:
			return v
		case *NonNull:
			t = v.Type
		case *List:
			t = v.Type
		default:
			return nil
		}
	}
	return nil
}

package ast

// OperationType is one of the three root operation kinds a document
// can declare.
type OperationType string

const (
	Query        OperationType = "QUERY"
	Mutation     OperationType = "MUTATION"
	Subscription OperationType = "SUBSCRIPTION"
)

// Document is a non-empty collection of executable definitions
// (operations and fragments). The parser guarantees non-emptiness;
// the validator does not re-check it (§7 Fatal conditions).
type Document struct {
	Definitions []Definition
}

// Definition is either an OperationDefinition or a FragmentDefinition.
type Definition interface {
	isDefinition()
}

func (*OperationDefinition) isDefinition() {}
func (*FragmentDefinition) isDefinition()  {}

// OperationDefinition is a query, mutation, or subscription. Name is
// empty for an anonymous operation.
type OperationDefinition struct {
	Name                Name
	Operation           OperationType
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        []Selection
}

// IsAnonymous reports whether the operation omits a name.
func (o *OperationDefinition) IsAnonymous() bool { return o.Name.IsEmpty() }

// FragmentDefinition is a named, reusable selection set conditioned on
// a type.
type FragmentDefinition struct {
	Name          Name
	TypeCondition Name
	Directives    []*Directive
	SelectionSet  []Selection
}

// VariableDefinition declares a variable an operation accepts,
// optionally with a default value.
type VariableDefinition struct {
	Variable     Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

// Operations returns the OperationDefinitions in doc, in declaration
// order.
func (d *Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the FragmentDefinitions in doc, in declaration
// order.
func (d *Document) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, frag)
		}
	}
	return frags
}

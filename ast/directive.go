package ast

// Directive is a single `@name(args...)` annotation. Directives carry
// a name and an argument list; legality at a given location is a
// schema-driven check performed by the validator, not encoded here.
type Directive struct {
	Name Name
	Args []*Argument
}

// Argument is a single `name: value` pair supplied to a field,
// directive, or (via the schema's own argument definitions) default
// value position.
type Argument struct {
	Name  Name
	Value Value
}

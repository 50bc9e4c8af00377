// Package gqlerrors is the validator's error model: diagnostic kinds,
// a single Error shape carrying just enough structure for a caller to
// format or inspect a failure, and an Accumulator that combines
// independent checks in applicative style rather than short-circuiting
// on the first failure.
package gqlerrors

import (
	"fmt"
	"strings"

	"github.com/shyptr/gqlvalidate/ast"
)

// Kind names the category of a single validation failure. Kinds map
// directly onto the rule groups described in the specification's
// component design.
type Kind string

const (
	NameNotUnique                Kind = "NameNotUnique"
	AnonymousQueryNotAlone       Kind = "AnonymousQueryNotAlone"
	SubscriptionHasMultipleRoots Kind = "SubscriptionHasMultipleRoots"
	MissingDefinition            Kind = "MissingDefinition"
	MissingField                 Kind = "MissingField"
	MissingSelection             Kind = "MissingSelection"
	InvalidSelection             Kind = "InvalidSelection"
	MissingTypeDefinition        Kind = "MissingTypeDefinition"
	InvalidNamedType             Kind = "InvalidNamedType"
	InvalidFragment              Kind = "InvalidFragment"
	CyclesDetected               Kind = "CyclesDetected"
	InvalidType                  Kind = "InvalidType"
	MissingVariableDefinition    Kind = "MissingVariableDefinition"
	MissingVariable              Kind = "MissingVariable"
	UnusedDefinition             Kind = "UnusedDefinition"
	TypeMismatch                 Kind = "TypeMismatch"
	InvalidLocation              Kind = "InvalidLocation"
	OperationDefinitionError     Kind = "OperationDefinitionError"
)

// Error is a single validation failure. Names identifies the offending
// declaration(s) (a fragment/operation/field/variable name, or a
// repeated name for uniqueness violations); TypeName and Hint are
// populated when relevant to the Kind and are otherwise empty.
type Error struct {
	Kind     Kind
	Names    []ast.Name
	TypeName ast.Name
	Hint     string
}

// New builds an Error, the common two-or-fewer-name case.
func New(kind Kind, hint string, names ...ast.Name) *Error {
	return &Error{Kind: kind, Names: names, Hint: hint}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if len(e.Names) > 0 {
		names := make([]string, len(e.Names))
		for i, n := range e.Names {
			names[i] = string(n)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(names, ", "))
	}
	if e.TypeName != "" {
		fmt.Fprintf(&b, " on %s", e.TypeName)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, ": %s", e.Hint)
	}
	return b.String()
}

// Errors is a non-empty (by construction of Accumulator.Result)
// collection of diagnostics.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Accumulator combines the results of independent checks without
// short-circuiting on the first failure, matching the applicative
// error-combination style described for the validator passes.
type Accumulator struct {
	errs Errors
}

// Add appends a single error if non-nil.
func (a *Accumulator) Add(err *Error) {
	if err != nil {
		a.errs = append(a.errs, err)
	}
}

// AddAll appends every error in errs.
func (a *Accumulator) AddAll(errs Errors) {
	a.errs = append(a.errs, errs...)
}

// Ok reports whether no errors have been accumulated so far. Used to
// gate Phase 2 on Phase 1's outcome.
func (a *Accumulator) Ok() bool { return len(a.errs) == 0 }

// Errs returns the errors accumulated so far, without consuming them.
func (a *Accumulator) Errs() Errors { return a.errs }

// Result finalizes the pass: (doc, nil) if nothing was accumulated,
// else (nil, errs) with errs guaranteed non-empty.
func (a *Accumulator) Result(doc *ast.Document) (*ast.Document, Errors) {
	if len(a.errs) == 0 {
		return doc, nil
	}
	return nil, a.errs
}

// Package validate implements the validator passes described in the
// component design: fragment definitions are checked first (Phase 1),
// and only if that phase succeeds are operations checked (Phase 2),
// matching the two-phase gating used throughout the corpus's own
// validators. Every traversal below walks selection sets with an
// explicit stack rather than native recursion, so a document 1,024
// selections deep does not risk the native call stack.
package validate

import (
	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/document"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/schema"
)

// Validate checks doc against sc and returns (doc, nil) on success or
// (nil, errs) on failure, with errs guaranteed non-empty.
func Validate(doc *ast.Document, sc *schema.Context) (*ast.Document, gqlerrors.Errors) {
	dc := document.Build(doc)

	var acc gqlerrors.Accumulator
	validateFragments(&acc, dc, sc)
	if !acc.Ok() {
		return acc.Result(doc)
	}

	validateOperations(&acc, dc, sc)
	return acc.Result(doc)
}

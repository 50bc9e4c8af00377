// Package document builds a queryable, per-document view over an
// executable document: fragment lookup by name, the set of fragment
// spreads transitively reachable from an operation, and the set of
// variables transitively required by an operation (§4.2). Construction
// walks selection sets with an explicit stack rather than native
// recursion, in keeping with the validator's depth-tolerance
// requirement (§5).
package document

import (
	"github.com/shyptr/gqlvalidate/ast"
)

// Context is a built, per-document view. A Context is built once per
// document and is not safe for concurrent construction from multiple
// goroutines; once built it is read-only.
type Context struct {
	doc       *ast.Document
	opDefs    []*ast.OperationDefinition
	fragDefs  []*ast.FragmentDefinition
	fragByName map[ast.Name]*ast.FragmentDefinition
	// fragDeps maps a fragment to the names of fragments its own
	// selection set spreads directly (one hop, not transitive).
	fragDeps map[ast.Name][]ast.Name
}

// Build constructs a Context from doc, indexing fragments by name and
// precomputing each fragment's direct dependency list once.
func Build(doc *ast.Document) *Context {
	c := &Context{
		doc:        doc,
		opDefs:     doc.Operations(),
		fragDefs:   doc.Fragments(),
		fragByName: make(map[ast.Name]*ast.FragmentDefinition),
		fragDeps:   make(map[ast.Name][]ast.Name),
	}
	for _, f := range c.fragDefs {
		if _, exists := c.fragByName[f.Name]; !exists {
			c.fragByName[f.Name] = f
		}
	}
	for _, f := range c.fragDefs {
		c.fragDeps[f.Name] = directSpreads(f.SelectionSet)
	}
	return c
}

// directSpreads walks a single selection set with an explicit stack,
// collecting the names of every fragment spread reachable without
// crossing into another fragment definition's own body (i.e. one hop
// of dependency, matching the edges needed to build a fragment
// dependency graph for cycle detection).
func directSpreads(sels []ast.Selection) []ast.Name {
	var names []ast.Name
	seen := make(map[ast.Name]bool)
	stack := append([]ast.Selection(nil), sels...)
	for len(stack) > 0 {
		sel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			if !seen[s.Name] {
				seen[s.Name] = true
				names = append(names, s.Name)
			}
		case *ast.InlineFragment:
			stack = append(stack, s.SelectionSet...)
		case *ast.Field:
			stack = append(stack, s.SelectionSet...)
		}
	}
	return names
}

// OpDefs returns the document's operation definitions in declaration
// order.
func (c *Context) OpDefs() []*ast.OperationDefinition { return c.opDefs }

// FragDefs returns the document's fragment definitions in declaration
// order.
func (c *Context) FragDefs() []*ast.FragmentDefinition { return c.fragDefs }

// FragDef looks up a fragment definition by name.
func (c *Context) FragDef(name ast.Name) (*ast.FragmentDefinition, bool) {
	f, ok := c.fragByName[name]
	return f, ok
}

// FragDeps returns the names of fragments spread directly within
// fragName's own selection set (one hop). Used to build the
// dependency graph toposort.Sort operates on for cycle detection.
func (c *Context) FragDeps(fragName ast.Name) []ast.Name {
	return c.fragDeps[fragName]
}

// FragSpreads returns, via an explicit-stack traversal with
// deduplication, the complete set of fragment names transitively
// reachable from sels: every fragment spread directly present, plus
// every fragment spread transitively reachable through the bodies of
// those fragments. Unknown fragment names are included in the result
// but have no body to walk; the validator reports those separately.
func (c *Context) FragSpreads(sels []ast.Selection) []ast.Name {
	seen := make(map[ast.Name]bool)
	var result []ast.Name
	stack := append([]ast.Selection(nil), sels...)
	for len(stack) > 0 {
		sel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			result = append(result, s.Name)
			if frag, ok := c.fragByName[s.Name]; ok {
				stack = append(stack, frag.SelectionSet...)
			}
		case *ast.InlineFragment:
			stack = append(stack, s.SelectionSet...)
		case *ast.Field:
			stack = append(stack, s.SelectionSet...)
		}
	}
	return result
}

// VarReqs returns the set of variable names transitively referenced
// anywhere within sels: in field/directive arguments, and within the
// argument lists of any fragment transitively spread in. The walk
// uses an explicit stack throughout, never native recursion.
func (c *Context) VarReqs(sels []ast.Selection) []ast.Name {
	seen := make(map[ast.Name]bool)
	fragSeen := make(map[ast.Name]bool)
	var result []ast.Name

	addFromArgs := func(args []*ast.Argument) {
		for _, a := range args {
			collectVars(a.Value, seen, &result)
		}
	}
	addFromDirectives := func(dirs []*ast.Directive) {
		for _, d := range dirs {
			addFromArgs(d.Args)
		}
	}

	stack := append([]ast.Selection(nil), sels...)
	for len(stack) > 0 {
		sel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch s := sel.(type) {
		case *ast.Field:
			addFromArgs(s.Arguments)
			addFromDirectives(s.Directives)
			stack = append(stack, s.SelectionSet...)
		case *ast.InlineFragment:
			addFromDirectives(s.Directives)
			stack = append(stack, s.SelectionSet...)
		case *ast.FragmentSpread:
			addFromDirectives(s.Directives)
			if fragSeen[s.Name] {
				continue
			}
			fragSeen[s.Name] = true
			if frag, ok := c.fragByName[s.Name]; ok {
				addFromDirectives(frag.Directives)
				stack = append(stack, frag.SelectionSet...)
			}
		}
	}
	return result
}

// collectVars walks a single value literal (recursively through list
// and object literals only, which are bounded by literal nesting in
// the document text rather than by selection-set depth) collecting
// variable references.
func collectVars(v ast.Value, seen map[ast.Name]bool, out *[]ast.Name) {
	switch val := v.(type) {
	case *ast.VariableValue:
		if !seen[val.Name] {
			seen[val.Name] = true
			*out = append(*out, val.Name)
		}
	case *ast.ListValue:
		for _, e := range val.Values {
			collectVars(e, seen, out)
		}
	case *ast.ObjectValue:
		for _, f := range val.Fields {
			collectVars(f.Value, seen, out)
		}
	}
}

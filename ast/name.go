// Package ast holds the algebraic data types shared by the executable
// document and the type-system document: names, the type grammar,
// input value literals, and the executable AST itself (operations,
// fragments, selections, directives, arguments).
package ast

// Name is an opaque identifier. Equality is text equality; no interning
// is performed, matching how the corpus treats GraphQL names as plain
// strings rather than symbol-table entries.
type Name string

func (n Name) String() string { return string(n) }

// IsEmpty reports whether n represents an omitted name, used both for
// anonymous operations (§3.4) and omitted inline fragment type
// conditions (§4.6).
func (n Name) IsEmpty() bool { return n == "" }

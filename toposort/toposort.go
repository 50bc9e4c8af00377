// Package toposort provides a generic, iterative topological sort used
// to order and cycle-check fragment dependency graphs (§4.3). Both the
// ordering pass (Kahn's algorithm) and the cycle-isolation fallback
// (an iterative Tarjan strongly-connected-components pass) use an
// explicit worklist instead of native recursion, so the depth of a
// pathological input is bounded only by available heap, not by the Go
// call stack (§5).
package toposort

// Graph is a dependency graph over comparable node identifiers: Edges
// maps a node to the nodes it depends on. Nodes not present as a key
// but referenced only as a dependency are treated as having no
// further dependencies of their own.
type Graph[T comparable] struct {
	Nodes []T
	Edges map[T][]T
}

// Result is the outcome of sorting a Graph. If Cycles is non-empty the
// graph could not be fully ordered; Order still contains every node
// that Kahn's algorithm was able to discharge before it stalled.
type Result[T comparable] struct {
	Order  []T
	Cycles [][]T
}

// Sort topologically orders g using Kahn's algorithm with a
// declared-order tie-break (among the nodes ready at any step, the one
// earliest in g.Nodes is placed first). Nodes that appear only as
// dependencies, not in g.Nodes, rank after every declared node, and
// among themselves in the order the Edges map is iterated, which Go
// does not fix; when every dependency is itself listed in g.Nodes the
// result is deterministic run to run. When Kahn's
// algorithm cannot fully drain the node set — some nodes never reach
// indegree zero — the undischarged subgraph is handed to an iterative
// Tarjan SCC pass restricted to those nodes, which isolates the nodes
// genuinely participating in a cycle (including single-node
// self-loops) from nodes that merely transitively depend on one.
func Sort[T comparable](g Graph[T]) Result[T] {
	indegree := make(map[T]int, len(g.Nodes))
	dependents := make(map[T][]T)
	index := make(map[T]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n] = i
		if _, ok := indegree[n]; !ok {
			indegree[n] = 0
		}
	}
	for n, deps := range g.Edges {
		for _, d := range deps {
			indegree[n]++
			dependents[d] = append(dependents[d], n)
			if _, ok := index[d]; !ok {
				index[d] = len(index)
				g.Nodes = append(g.Nodes, d)
			}
		}
	}

	// A node is ready once every dependency it has has already been
	// placed in Order; process ready nodes in declared order.
	ready := make([]T, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	var order []T
	placed := make(map[T]bool, len(g.Nodes))
	for len(ready) > 0 {
		// Pop in declared order: take the candidate with the smallest
		// index, since dependents are discovered in map order.
		best := 0
		for i := range ready {
			if index[ready[i]] < index[ready[best]] {
				best = i
			}
		}
		n := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		if placed[n] {
			continue
		}
		placed[n] = true
		order = append(order, n)
		for _, dep := range dependents[n] {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(order) == len(g.Nodes) {
		return Result[T]{Order: order}
	}

	var remaining []T
	for _, n := range g.Nodes {
		if !placed[n] {
			remaining = append(remaining, n)
		}
	}
	cycles := tarjanSCCs(remaining, g.Edges)
	return Result[T]{Order: order, Cycles: cycles}
}

// tarjanSCCs runs Tarjan's strongly-connected-components algorithm
// over the subgraph induced by nodes, using an explicit stack to
// simulate recursion, and returns every SCC of size greater than one
// plus every size-one SCC that is a self-loop — i.e. every node
// genuinely participating in a cycle.
func tarjanSCCs[T comparable](nodes []T, edges map[T][]T) [][]T {
	type frame struct {
		node     T
		childIdx int
	}

	index := make(map[T]int)
	lowlink := make(map[T]int)
	onStack := make(map[T]bool)
	var stack []T
	var callStack []frame
	var sccs [][]T
	next := 0

	nodeSet := make(map[T]bool, len(nodes))
	for _, n := range nodes {
		nodeSet[n] = true
	}

	var strongconnect func(v T)
	strongconnect = func(v T) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		callStack = append(callStack, frame{node: v, childIdx: 0})

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.node
			deps := edges[v]

			if top.childIdx < len(deps) {
				w := deps[top.childIdx]
				top.childIdx++
				if !nodeSet[w] {
					continue
				}
				if _, visited := index[w]; !visited {
					index[w] = next
					lowlink[w] = next
					next++
					stack = append(stack, w)
					onStack[w] = true
					callStack = append(callStack, frame{node: w, childIdx: 0})
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			// Children exhausted: pop, propagate lowlink to parent,
			// and emit an SCC if v is its own root.
			callStack = callStack[:len(callStack)-1]
			if lowlink[v] == index[v] {
				var scc []T
				for {
					n := len(stack) - 1
					w := stack[n]
					stack = stack[:n]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}
		}
	}

	for _, n := range nodes {
		if _, visited := index[n]; !visited {
			strongconnect(n)
		}
	}

	var cycles [][]T
	for _, scc := range sccs {
		if len(scc) > 1 {
			cycles = append(cycles, scc)
			continue
		}
		n := scc[0]
		for _, d := range edges[n] {
			if d == n {
				cycles = append(cycles, scc)
				break
			}
		}
	}
	return cycles
}

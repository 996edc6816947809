package aoc

import (
	"fmt"
	"strings"
)

// Edge is an outgoing arc to the node at index To with weight W.
type Edge struct {
	To, W int
}

// Graph is a weighted graph whose nodes live in a flat arena and are
// referred to by index. Adjacency is stored per direction of travel, so the
// graph may mix one-way arcs with two-way edges. The zero value is ready to
// use.
type Graph[K comparable] struct {
	nodes []K
	index map[K]int
	adj   [][]Edge
}

// AddNode returns the index of k, adding it if it is not in the graph yet.
// added reports whether the node is new.
func (g *Graph[K]) AddNode(k K) (i int, added bool) {
	if i, ok := g.index[k]; ok {
		return i, false
	}
	if g.index == nil {
		g.index = make(map[K]int)
	}
	i = len(g.nodes)
	g.nodes = append(g.nodes, k)
	g.adj = append(g.adj, nil)
	g.index[k] = i
	return i, true
}

// AddArc adds a one-way arc from a to b, adding either node if needed. An
// existing a->b arc keeps the larger of the two weights.
func (g *Graph[K]) AddArc(a, b K, w int) {
	ai, _ := g.AddNode(a)
	bi, _ := g.AddNode(b)
	for j, e := range g.adj[ai] {
		if e.To == bi {
			g.adj[ai][j].W = max(e.W, w)
			return
		}
	}
	g.adj[ai] = append(g.adj[ai], Edge{To: bi, W: w})
}

// AddEdge adds arcs in both directions between a and b.
func (g *Graph[K]) AddEdge(a, b K, w int) {
	g.AddArc(a, b, w)
	g.AddArc(b, a, w)
}

func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

// Index returns the arena index of k.
func (g *Graph[K]) Index(k K) (int, bool) {
	i, ok := g.index[k]
	return i, ok
}

// Node returns the key stored at index i.
func (g *Graph[K]) Node(i int) K {
	return g.nodes[i]
}

// Neighbors returns the outgoing arcs of the node at index i. The slice must
// not be modified.
func (g *Graph[K]) Neighbors(i int) []Edge {
	return g.adj[i]
}

// Weight returns the weight of the a->b arc.
func (g *Graph[K]) Weight(a, b K) (int, bool) {
	ai, ok := g.index[a]
	if !ok {
		return 0, false
	}
	bi, ok := g.index[b]
	if !ok {
		return 0, false
	}
	for _, e := range g.adj[ai] {
		if e.To == bi {
			return e.W, true
		}
	}
	return 0, false
}

// ReachableNodes returns the set of nodes reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	ai, ok := g.index[a]
	if !ok {
		return visited
	}
	q := NewQueue(ai)
	q.While(func(i int) bool {
		if visited[g.nodes[i]] {
			return true
		}
		visited[g.nodes[i]] = true
		for _, e := range g.adj[i] {
			q.Push(e.To)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) String() string {
	var sb strings.Builder
	for i, k := range g.nodes {
		fmt.Fprintf(&sb, "%v:", k)
		for _, e := range g.adj[i] {
			fmt.Fprintf(&sb, " %v=%d", g.nodes[e.To], e.W)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Route is a simple path through a Graph.
type Route[K comparable] struct {
	Nodes []K
	Len   int // sum of arc weights
}

// LongestPath returns the size of the longest simple path from start to end.
func (g *Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	r, ok := g.LongestRoute(start, end)
	return r.Len, ok
}

// searchFrame is one node on the current DFS path.
type searchFrame struct {
	node int
	next int // index into adj[node] of the next arc to try
	dist int // path length from start to node
}

// LongestRoute returns the heaviest simple path from start to end. It
// enumerates every simple path with an explicit backtracking stack, so it
// is only suitable for small graphs. ok is false if end is unreachable.
func (g *Graph[K]) LongestRoute(start, end K) (r Route[K], ok bool) {
	si, ok1 := g.index[start]
	ei, ok2 := g.index[end]
	if !ok1 || !ok2 || !g.ReachableNodes(start)[end] {
		return r, false
	}

	// If every way into end goes through a single node, a path that reaches
	// that node and turns elsewhere can never finish.
	gate := -1
	for i, arcs := range g.adj {
		for _, e := range arcs {
			if e.To != ei {
				continue
			}
			if gate == -1 {
				gate = i
			} else if gate != i {
				gate = -2
			}
		}
	}

	onPath := make([]bool, len(g.nodes))
	var path Stack[*searchFrame]
	path.Push(&searchFrame{node: si})
	onPath[si] = true

	best := -1
	var bestNodes []int
	for path.Len() > 0 {
		f, _ := path.Peek()
		if f.node == ei {
			if f.dist > best {
				best = f.dist
				bestNodes = bestNodes[:0]
				for _, pf := range path.Values() {
					bestNodes = append(bestNodes, pf.node)
				}
			}
			path.Pop()
			onPath[f.node] = false
			continue
		}

		var next *searchFrame
		for f.next < len(g.adj[f.node]) {
			e := g.adj[f.node][f.next]
			f.next++
			if onPath[e.To] || (f.node == gate && e.To != ei) {
				continue
			}
			next = &searchFrame{node: e.To, dist: f.dist + e.W}
			break
		}
		if next == nil {
			path.Pop()
			onPath[f.node] = false
			continue
		}
		onPath[next.node] = true
		path.Push(next)
	}
	if best < 0 {
		return r, false
	}
	r.Len = best
	for _, i := range bestNodes {
		r.Nodes = append(r.Nodes, g.nodes[i])
	}
	return r, true
}

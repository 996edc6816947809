package maze

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	aoc "github.com/maisem/aoc2023"
	"github.com/pkg/errors"
)

// Mode selects how slopes are treated.
type Mode int

const (
	// Slopes makes every slope one-way, downhill only.
	Slopes Mode = iota
	// Undirected treats slopes as ordinary path.
	Undirected
)

func (m Mode) String() string {
	switch m {
	case Slopes:
		return "slopes"
	case Undirected:
		return "undirected"
	}
	return "unknown"
}

// Graph is a maze contracted to its start, end and junctions. Arc weights
// are trail lengths in steps.
type Graph struct {
	*aoc.Graph[aoc.Pt]
	Mode       Mode
	Start, End aoc.Pt
}

// Contract builds the junction graph of m, discovering nodes breadth-first
// from the start. Every trail leaving a node is followed to the next node
// and recorded as an arc in the direction it was walked; with Undirected
// each trail is walked from both ends, which makes the graph symmetric.
// Parallel trails between two nodes keep the longer one. Trails that
// dead-end are dropped.
func Contract(m *Maze, mode Mode) (*Graph, error) {
	g := &Graph{
		Graph: &aoc.Graph[aoc.Pt]{},
		Mode:  mode,
		Start: m.Start,
		End:   m.End,
	}
	g.AddNode(m.Start)
	q := linkedlistqueue.New()
	q.Enqueue(m.Start)
	for !q.Empty() {
		v, _ := q.Dequeue()
		from := v.(aoc.Pt)
		exits := 0
		for _, d := range aoc.Directions {
			to, w, ok := m.walk(from, d, mode)
			if !ok || to == from {
				continue
			}
			exits++
			if _, added := g.AddNode(to); added {
				q.Enqueue(to)
			}
			g.AddArc(from, to, w)
		}
		if exits == 0 && from != m.End {
			return nil, errors.Wrapf(ErrDeadJunction, "at %v (%v)", from, mode)
		}
	}
	if _, ok := g.Index(m.End); !ok {
		return nil, errors.Wrapf(ErrNoPath, "%v", mode)
	}
	return g, nil
}

// Longest returns the longest simple route from start to end.
func (g *Graph) Longest() (aoc.Route[aoc.Pt], error) {
	r, ok := g.LongestRoute(g.Start, g.End)
	if !ok {
		return r, errors.Wrapf(ErrNoPath, "%v", g.Mode)
	}
	return r, nil
}

// Longest returns the number of steps in the longest hike through m that
// never visits a cell twice.
func Longest(m *Maze, mode Mode) (int, error) {
	g, err := Contract(m, mode)
	if err != nil {
		return 0, err
	}
	r, err := g.Longest()
	if err != nil {
		return 0, err
	}
	return r.Len, nil
}

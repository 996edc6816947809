// Package maze finds the longest hike through a maze of forest and paths.
//
// The maze is a grid of forest (#), path (.) and steep slopes (^ > v <).
// Long single-file trails make a cell-by-cell search hopeless, so the maze
// is first contracted into a small weighted graph whose nodes are the start,
// the end and every junction, and whose edge weights are trail lengths.
// The longest simple path through that graph is the answer.
package maze

import (
	aoc "github.com/maisem/aoc2023"
	"github.com/pkg/errors"
)

// Terrain symbols.
const (
	Forest = '#'
	Path   = '.'
	Start  = 'S'
)

// slopes maps slope symbols to the only direction they may be crossed in.
var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

var (
	ErrUnknownTerrain = errors.New("maze: unknown terrain symbol")
	ErrNoStart        = errors.New("maze: no unique start")
	ErrNoEnd          = errors.New("maze: no unique end")
	ErrDeadJunction   = errors.New("maze: junction with no way out")
	ErrNoPath         = errors.New("maze: end not reachable from start")
)

// Maze is a validated maze grid with its start and end cells.
type Maze struct {
	grid       aoc.Grid[byte]
	Start, End aoc.Pt
}

// Parse parses a maze from its text form.
func Parse(input string) (*Maze, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	return New(g)
}

// New validates g and locates its start and end. The start is the S cell
// if there is one, otherwise the only open cell of the first row. The end is
// the only other open cell of the last row.
func New(g aoc.Grid[byte]) (*Maze, error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return nil, aoc.ErrEmptyGrid
	}
	for y, row := range g {
		for x, c := range row {
			if _, ok := slopes[c]; ok || c == Forest || c == Path || c == Start {
				continue
			}
			return nil, errors.Wrapf(ErrUnknownTerrain, "%q at %v", c, aoc.Pt{X: x, Y: y})
		}
	}
	m := &Maze{grid: g}

	starts := aoc.Find(g, Start)
	if len(starts) == 0 {
		starts = m.openInRow(0)
	}
	if len(starts) != 1 {
		return nil, errors.Wrapf(ErrNoStart, "found %d candidates", len(starts))
	}
	m.Start = starts[0]

	var ends []aoc.Pt
	for _, p := range m.openInRow(len(g) - 1) {
		if p != m.Start || len(g) == 1 {
			ends = append(ends, p)
		}
	}
	if len(ends) != 1 {
		return nil, errors.Wrapf(ErrNoEnd, "found %d candidates in the last row", len(ends))
	}
	m.End = ends[0]
	return m, nil
}

func (m *Maze) openInRow(y int) []aoc.Pt {
	var out []aoc.Pt
	for x, c := range m.grid[y] {
		if c != Forest {
			out = append(out, aoc.Pt{X: x, Y: y})
		}
	}
	return out
}

// Grid returns the maze terrain. It must not be modified.
func (m *Maze) Grid() aoc.Grid[byte] {
	return m.grid
}

func (m *Maze) open(p aoc.Pt) bool {
	c, ok := m.grid.AtOk(p)
	return ok && c != Forest
}

// IsJunction reports whether p is an open cell with more than two open
// neighbors.
func (m *Maze) IsJunction(p aoc.Pt) bool {
	if !m.open(p) {
		return false
	}
	n := 0
	p.ForImmediateNeighbors(func(q aoc.Pt) bool {
		if m.open(q) {
			n++
		}
		return true
	})
	return n > 2
}

func (m *Maze) isNode(p aoc.Pt) bool {
	return p == m.Start || p == m.End || m.IsJunction(p)
}

// step moves from p one cell in direction d. With mode Slopes a slope may
// only be entered or left in its own direction.
func (m *Maze) step(p aoc.Pt, d aoc.Direction, mode Mode) (aoc.Pt, bool) {
	to := p.Add(d.Delta())
	if !m.open(to) {
		return aoc.Pt{}, false
	}
	if mode == Slopes {
		if sd, ok := slopes[m.grid.At(to)]; ok && sd != d {
			return aoc.Pt{}, false
		}
		if sd, ok := slopes[m.grid.At(p)]; ok && sd != d {
			return aoc.Pt{}, false
		}
	}
	return to, true
}

// walk follows the trail that leaves node p in direction d until it reaches
// another node. ok is false if the trail cannot be entered or dead-ends.
func (m *Maze) walk(p aoc.Pt, d aoc.Direction, mode Mode) (to aoc.Pt, steps int, ok bool) {
	to, ok = m.step(p, d, mode)
	if !ok {
		return aoc.Pt{}, 0, false
	}
	steps = 1
	for !m.isNode(to) {
		moved := false
		for _, nd := range aoc.Directions {
			if nd == d.Reverse() {
				continue
			}
			if next, ok := m.step(to, nd, mode); ok {
				to, d, moved = next, nd, true
				break
			}
		}
		if !moved {
			return aoc.Pt{}, 0, false
		}
		steps++
	}
	return to, steps, true
}

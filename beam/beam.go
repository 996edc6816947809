// Package beam simulates light travelling through a contraption of mirrors
// and splitters laid out on a grid, counting the cells the light energizes.
//
// A beam is a position and a heading. Beams move one cell per step, pass
// through empty space, turn at mirrors and split in two when they hit the
// flat side of a splitter. A beam that steps off the grid is gone. Mirror
// loops are cut by remembering every (cell, incoming direction) pair seen at
// a mirror or splitter: the outcome of such a visit never changes, so a
// repeat visit is dropped.
package beam

import (
	"github.com/emirpasic/gods/sets/hashset"
	aoc "github.com/maisem/aoc2023"
	"github.com/pkg/errors"
)

var ErrEntryOutOfBounds = errors.New("beam: entry point outside the grid")

// Usage records that a beam entered the optic at Pt while heading Dir.
type Usage struct {
	Pt  aoc.Pt
	Dir aoc.Direction
}

// Result is the outcome of one simulation.
type Result struct {
	Energized int // distinct cells touched by light
	Usages    int // distinct mirror/splitter entries
	Steps     int // beams taken off the work queue
}

// Simulator runs beams over a fixed grid. It is safe for concurrent use:
// each run keeps its own overlay and visited state.
type Simulator struct {
	grid aoc.Grid[byte]
}

// New returns a Simulator for g after checking its terrain.
func New(g aoc.Grid[byte]) (*Simulator, error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return nil, aoc.ErrEmptyGrid
	}
	if err := Validate(g); err != nil {
		return nil, err
	}
	return &Simulator{grid: g}, nil
}

// Energize fires a beam into the grid at entry, heading entry.Dir. An optic
// on the entry cell acts on the beam before it moves.
func (s *Simulator) Energize(entry aoc.Path) (Result, error) {
	sym, ok := s.grid.AtOk(entry.Pt)
	if !ok {
		return Result{}, errors.Wrapf(ErrEntryOutOfBounds, "entry %v", entry)
	}
	size := s.grid.Size()
	lit := aoc.MakeGrid[bool](size.X, size.Y)
	used := hashset.New()

	var q aoc.Queue[aoc.Path]
	// emit queues the beams leaving the cell at p.Pt for a beam arriving
	// heading p.Dir.
	emit := func(p aoc.Path, sym byte) {
		out, _ := Deflect(p.Dir, sym)
		for _, d := range out {
			q.Push(aoc.Path{Pt: p.Pt, Dir: d})
		}
	}

	lit.Set(entry.Pt, true)
	if IsOptic(sym) {
		used.Add(Usage(entry))
	}
	emit(entry, sym)

	var res Result
	q.While(func(b aoc.Path) bool {
		res.Steps++
		next, ok := s.grid.Move(b)
		if !ok {
			return true
		}
		sym := s.grid.At(next.Pt)
		if IsOptic(sym) {
			u := Usage(next)
			if used.Contains(u) {
				return true
			}
			used.Add(u)
		}
		lit.Set(next.Pt, true)
		emit(next, sym)
		return true
	})

	res.Usages = used.Size()
	res.Energized = lit.Count(func(on bool) bool { return on })
	return res, nil
}

// Energized is shorthand for building a Simulator for g and firing a single
// beam at entry.
func Energized(g aoc.Grid[byte], entry aoc.Path) (int, error) {
	s, err := New(g)
	if err != nil {
		return 0, err
	}
	res, err := s.Energize(entry)
	return res.Energized, err
}

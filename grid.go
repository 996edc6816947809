package aoc

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

var (
	// ErrEmptyGrid is returned when the input has no rows or an empty row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular is returned when rows differ in length.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a rectangular 2D grid addressed as g[y][x].
type Grid[T any] [][]T

// ParseGrid parses one row per line, one cell per byte. A trailing newline
// and CRLF line endings are accepted.
func ParseGrid(input string) (Grid[byte], error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(input, "\n")
	g := make(Grid[byte], len(lines))
	for y, line := range lines {
		if line == "" {
			return nil, errors.Wrapf(ErrEmptyGrid, "row %d", y)
		}
		if len(line) != len(lines[0]) {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", y, len(line), len(lines[0]))
		}
		g[y] = []byte(line)
	}
	return g, nil
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is the bounds-checked At. It reports false for points outside the
// grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) InBounds(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Size returns the grid size with X as the column count and Y as the row
// count.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Dimensions returns the row and column counts.
func (g Grid[T]) Dimensions() (rows, cols int) {
	size := g.Size()
	return size.Y, size.X
}

// Count returns the number of cells for which f returns true.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if f(v) {
				n++
			}
		}
	}
	return n
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a fingerprint of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// EdgePaths returns every perimeter cell paired with the direction that
// points into the grid. Corner cells appear once per inward direction.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

func (p Path) String() string {
	return p.Pt.String() + " " + p.Dir.String()
}

// Move moves p one step in its direction. It reports false if the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in clockwise order starting at Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step for d; Y grows downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// ParseDirection accepts the arrow form ("^", ">", "v", "<"), the letter
// form ("U", "R", "D", "L") or the word form ("up", "right", ...), in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "^", "u", "up", "n":
		return Up, nil
	case ">", "r", "right", "e":
		return Right, nil
	case "v", "d", "down", "s":
		return Down, nil
	case "<", "l", "left", "w":
		return Left, nil
	}
	return 0, errors.Errorf("unknown direction %q", s)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// ForImmediateNeighbors calls f for the four orthogonal neighbors of p in
// Direction order.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range Directions {
		dp := d.Delta()
		if !f(Pt2[T]{p.X + T(dp.X), p.Y + T(dp.Y)}) {
			return
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Find returns the positions of every cell equal to v, in row-major order.
func Find[T comparable](g Grid[T], v T) []Pt {
	var out []Pt
	for y, row := range g {
		for x, c := range row {
			if c == v {
				out = append(out, Pt{x, y})
			}
		}
	}
	return out
}

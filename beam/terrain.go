package beam

import (
	aoc "github.com/maisem/aoc2023"
	"github.com/pkg/errors"
)

// Terrain symbols.
const (
	Empty           = '.'
	MirrorSlash     = '/'
	MirrorBackslash = '\\'
	SplitVertical   = '|'
	SplitHorizontal = '-'
)

var ErrUnknownTerrain = errors.New("beam: unknown terrain symbol")

type dirs = []aoc.Direction

// deflections maps a terrain symbol and an incoming direction to the
// outgoing directions, in the order beams are queued.
var deflections = map[byte][4]dirs{
	Empty: {
		aoc.Up:    {aoc.Up},
		aoc.Right: {aoc.Right},
		aoc.Down:  {aoc.Down},
		aoc.Left:  {aoc.Left},
	},
	MirrorSlash: {
		aoc.Up:    {aoc.Right},
		aoc.Right: {aoc.Up},
		aoc.Down:  {aoc.Left},
		aoc.Left:  {aoc.Down},
	},
	MirrorBackslash: {
		aoc.Up:    {aoc.Left},
		aoc.Right: {aoc.Down},
		aoc.Down:  {aoc.Right},
		aoc.Left:  {aoc.Up},
	},
	SplitVertical: {
		aoc.Up:    {aoc.Up},
		aoc.Right: {aoc.Up, aoc.Down},
		aoc.Down:  {aoc.Down},
		aoc.Left:  {aoc.Up, aoc.Down},
	},
	SplitHorizontal: {
		aoc.Up:    {aoc.Right, aoc.Left},
		aoc.Right: {aoc.Right},
		aoc.Down:  {aoc.Right, aoc.Left},
		aoc.Left:  {aoc.Left},
	},
}

// Deflect returns the directions a beam travelling in d leaves a cell of
// terrain sym in. ok is false if sym is not a terrain symbol. The returned
// slice must not be modified.
func Deflect(d aoc.Direction, sym byte) (out []aoc.Direction, ok bool) {
	t, ok := deflections[sym]
	if !ok {
		return nil, false
	}
	return t[d], true
}

// IsOptic reports whether sym is a mirror or a splitter.
func IsOptic(sym byte) bool {
	_, ok := deflections[sym]
	return ok && sym != Empty
}

// Validate checks that every cell of g is a terrain symbol.
func Validate(g aoc.Grid[byte]) error {
	for y, row := range g {
		for x, c := range row {
			if _, ok := deflections[c]; !ok {
				return errors.Wrapf(ErrUnknownTerrain, "%q at %v", c, aoc.Pt{X: x, Y: y})
			}
		}
	}
	return nil
}

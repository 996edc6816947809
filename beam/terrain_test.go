package beam

import (
	"testing"

	aoc "github.com/maisem/aoc2023"
	"github.com/stretchr/testify/assert"
)

func TestDeflect(t *testing.T) {
	const (
		U = aoc.Up
		R = aoc.Right
		D = aoc.Down
		L = aoc.Left
	)
	tests := []struct {
		sym  byte
		in   aoc.Direction
		want []aoc.Direction
	}{
		{'.', U, dirs{U}}, {'.', R, dirs{R}}, {'.', D, dirs{D}}, {'.', L, dirs{L}},
		{'/', U, dirs{R}}, {'/', R, dirs{U}}, {'/', D, dirs{L}}, {'/', L, dirs{D}},
		{'\\', U, dirs{L}}, {'\\', L, dirs{U}}, {'\\', D, dirs{R}}, {'\\', R, dirs{D}},
		{'|', U, dirs{U}}, {'|', D, dirs{D}}, {'|', L, dirs{U, D}}, {'|', R, dirs{U, D}},
		{'-', L, dirs{L}}, {'-', R, dirs{R}}, {'-', U, dirs{R, L}}, {'-', D, dirs{R, L}},
	}
	seen := map[byte]int{}
	for _, tt := range tests {
		got, ok := Deflect(tt.in, tt.sym)
		if !ok || !assert.ElementsMatch(t, tt.want, got) {
			t.Errorf("Deflect(%v, %q) = %v, %v; want %v", tt.in, tt.sym, got, ok, tt.want)
		}
		seen[tt.sym]++
	}
	// Every symbol must be covered for all four directions.
	for sym := range deflections {
		assert.Equal(t, 4, seen[sym], "symbol %q", sym)
	}
}

func TestDeflectMirrorsAreReversible(t *testing.T) {
	// Light retraces its path through a mirror when sent back the way it
	// came out.
	for _, sym := range []byte{MirrorSlash, MirrorBackslash} {
		for _, d := range aoc.Directions {
			out, _ := Deflect(d, sym)
			back, _ := Deflect(out[0].Reverse(), sym)
			assert.Equal(t, d.Reverse(), back[0], "%q heading %v", sym, d)
		}
	}
}

func TestDeflectUnknown(t *testing.T) {
	_, ok := Deflect(aoc.Up, '#')
	assert.False(t, ok)
	assert.False(t, IsOptic('#'))
	assert.False(t, IsOptic(Empty))
	for _, sym := range []byte(`/\|-`) {
		assert.True(t, IsOptic(sym), "%q", sym)
	}
}

// Package aoc holds the grid, graph and runner utilities shared by the
// Advent of Code solvers in this module. (forked from bradfitz/aoc)
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample extracts a sample from a doc comment of the form
//
//	want=<answer>
//
//	<input lines>
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples maps solver method names to the sample in their doc
// comment. A sample without input reuses the input of the sample before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "parsing source to extract samples")
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. It gives access to the input of the part
// being run.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	inputOnce sync.Once
	input     []byte
}

func (p *Puzzle) Year() int { return p.year }
func (p *Puzzle) Day() int  { return p.day.day }

// InputPath returns the file the real input is read from.
func (p *Puzzle) InputPath() string {
	return filepath.Join(flagInputs, fmt.Sprint(p.Year()), fmt.Sprintf("%d.input", p.Day()))
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	p.inputOnce.Do(func() {
		b, err := os.ReadFile(p.InputPath())
		if err != nil {
			klog.Fatalf("reading input for day %d: %v", p.day.day, err)
		}
		p.input = b
	})
	return p.input
}

// Grid parses the input as a character grid.
func (p *Puzzle) Grid() Grid[byte] {
	g := MustGet(ParseGrid(string(p.Input())))
	rows, cols := g.Dimensions()
	p.Debugf("grid %dx%d hash=%v", rows, cols, g.Hash())
	return g
}

// Debugf logs when -debug is set, prefixed with the puzzle being run.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug {
		klog.Infof("%d/%02d %s: %s", p.Year(), p.Day(), p.solver.Name, fmt.Sprintf(format, args...))
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		klog.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to. The methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, errors.Errorf("method %s has signature %v; want func() any", mn, vt.Method(i).Type)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", "inputs", "directory holding <year>/<day>.input files")
	klog.InitFlags(flag.CommandLine)
}

var initFlags = sync.OnceFunc(func() {
	flag.Set("logtostderr", "true")
	flag.Parse()
})

// runDay runs every part of day, sample first. It reports false if a sample
// answer did not match.
func runDay(slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	klog.Infof("Running day %d", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so reading it is not timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			elapsed := time.Since(t0).Round(time.Microsecond)
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, elapsed)
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, elapsed)
			}
			klog.V(2).Infof("day %d part %s sample=%v done in %v", day.day, ps.Part, sm, elapsed)
		}
	}
	return true
}

// Run runs the solvers registered as methods on slvr. src is the source of
// the file declaring them; samples are read from the method doc comments.
// slvr must be a pointer to a struct embedding *Puzzle.
func Run(year int, src []byte, slvr any) {
	initFlags()
	defer klog.Flush()

	samples, err := extractSamples(src)
	if err != nil {
		klog.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		klog.Fatal(err)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			klog.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(slvr, year, day, samples) {
			klog.Flush()
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	ok := true
	for _, day := range dayNums {
		ok = runDay(slvr, year, days[day], samples) && ok
		fmt.Println()
	}
	if !ok {
		klog.Flush()
		os.Exit(1)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

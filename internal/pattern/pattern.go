// Package pattern builds initial configurations and renders generations as
// plaintext, where '.' is a dead cell and 'O' (or '*') a live one.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"

	"torus-life/internal/core"
)

// Pattern is a set of live cells given as (row, col) offsets from its origin.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var library = map[string]string{
	"block":   "OO\nOO",
	"blinker": "OOO",
	"glider":  ".O.\n..O\nOOO",
	"toad":    ".OOO\nOOO.",
	"beacon":  "OO..\nOO..\n..OO\n..OO",
}

// ErrUnknown reports a pattern name missing from the library.
var ErrUnknown = errors.New("unknown pattern")

// Names lists the built-in patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns a built-in pattern.
func Named(name string) (Pattern, error) {
	text, ok := library[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q (available: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return Parse(name, text)
}

// Parse reads a plaintext pattern. Lines starting with '!' are comments.
func Parse(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	sc := bufio.NewScanner(strings.NewReader(text))
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, [2]int{row, col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("pattern %q line %d: unexpected %q", name, row+1, ch)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading pattern %q: %w", name, err)
	}
	return p, nil
}

// Random scatters live cells over the whole extent with the given density.
// The same seed always yields the same pattern.
func Random(size core.Size, seed int64, density float64) Pattern {
	rng := core.NewRNG(seed)
	p := Pattern{Name: fmt.Sprintf("random-%d", seed)}
	for r := 0; r < size.H; r++ {
		for c := 0; c < size.W; c++ {
			if rng.Chance(density) {
				p.Cells = append(p.Cells, [2]int{r, c})
			}
		}
	}
	return p
}

// Bounds returns the smallest extent containing every cell.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, rc := range p.Cells {
		if rc[0]+1 > s.H {
			s.H = rc[0] + 1
		}
		if rc[1]+1 > s.W {
			s.W = rc[1] + 1
		}
	}
	return s
}

// Target is the editing surface a pattern is placed through.
type Target interface {
	Size() core.Size
	Get(row, col int) (core.Cell, error)
	Toggle(row, col int) error
}

// Place makes every pattern cell live with its origin at (row, col), wrapping
// around the edges of t. Cells that are already live are left alone.
func (p Pattern) Place(t Target, row, col int) error {
	size := t.Size()
	for _, rc := range p.Cells {
		r, c := size.Wrap(row+rc[0], col+rc[1])
		cell, err := t.Get(r, c)
		if err != nil {
			return fmt.Errorf("placing %s: %w", p.Name, err)
		}
		if cell == core.Live {
			continue
		}
		if err := t.Toggle(r, c); err != nil {
			return fmt.Errorf("placing %s: %w", p.Name, err)
		}
	}
	return nil
}

// Encode renders cells, given in row-major order, one grid row per line.
func Encode(cells []core.Cell, size core.Size) string {
	var b strings.Builder
	b.Grow(size.H * (size.W + 1))
	for r := 0; r < size.H; r++ {
		for c := 0; c < size.W; c++ {
			i := r*size.W + c
			if i < len(cells) && cells[i] == core.Live {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

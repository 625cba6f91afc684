package pattern

import (
	"errors"
	"slices"
	"testing"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

func TestNamedPatterns(t *testing.T) {
	tests := []struct {
		name  string
		cells int
		size  core.Size
	}{
		{"block", 4, core.Size{W: 2, H: 2}},
		{"blinker", 3, core.Size{W: 3, H: 1}},
		{"glider", 5, core.Size{W: 3, H: 3}},
		{"toad", 6, core.Size{W: 4, H: 2}},
		{"beacon", 8, core.Size{W: 4, H: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Named(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if len(p.Cells) != tt.cells {
				t.Errorf("cells = %d, want %d", len(p.Cells), tt.cells)
			}
			if p.Bounds() != tt.size {
				t.Errorf("bounds = %+v, want %+v", p.Bounds(), tt.size)
			}
		})
	}
	if len(Names()) != len(tests) {
		t.Fatalf("Names() = %v", Names())
	}
}

func TestNamedUnknown(t *testing.T) {
	if _, err := Named("spaceship"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v, want ErrUnknown", err)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("test", "!Name: test\n.O\n*.\n")
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 1}, {1, 0}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
	if _, err := Parse("bad", ".x."); err == nil {
		t.Fatal("expected error for unexpected character")
	}
}

func TestEncode(t *testing.T) {
	cells := []core.Cell{core.Live, core.Dead, core.Dead, core.Dead, core.Live, core.Live}
	got := Encode(cells, core.Size{W: 3, H: 2})
	if got != "O..\n.OO\n" {
		t.Fatalf("Encode = %q", got)
	}
	p, err := Parse("encoded", got)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(p.Cells, [][2]int{{0, 0}, {1, 1}, {1, 2}}) {
		t.Fatalf("re-parsed cells = %v", p.Cells)
	}
}

func TestRandomDeterministic(t *testing.T) {
	size := core.Size{W: 16, H: 12}
	a := Random(size, 7, 0.3)
	b := Random(size, 7, 0.3)
	if !slices.Equal(a.Cells, b.Cells) {
		t.Fatal("same seed must give the same pattern")
	}
	if len(a.Cells) == 0 || len(a.Cells) == size.Cells() {
		t.Fatalf("density 0.3 produced %d of %d cells", len(a.Cells), size.Cells())
	}
	if n := len(Random(size, 7, 0).Cells); n != 0 {
		t.Fatalf("density 0 produced %d cells", n)
	}
	if n := len(Random(size, 7, 1).Cells); n != size.Cells() {
		t.Fatalf("density 1 produced %d cells", n)
	}
}

func TestPlaceWraps(t *testing.T) {
	sim := life.New(life.Config{Width: 5, Height: 5, MaxTicks: 1})
	p, _ := Named("block")
	if err := p.Place(sim, 4, 4); err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{4, 4}, {4, 0}, {0, 4}, {0, 0}} {
		if cell, _ := sim.Get(rc[0], rc[1]); cell != core.Live {
			t.Fatalf("cell %v not live", rc)
		}
	}
	if sim.Population() != 4 {
		t.Fatalf("population = %d, want 4", sim.Population())
	}

	// Placing again must not toggle live cells back off.
	if err := p.Place(sim, 4, 4); err != nil {
		t.Fatal(err)
	}
	if sim.Population() != 4 {
		t.Fatalf("population after second place = %d, want 4", sim.Population())
	}
}

func TestPlaceWhileLocked(t *testing.T) {
	sim := life.New(life.Config{Width: 5, Height: 5, MaxTicks: 1})
	if err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	p, _ := Named("blinker")
	if err := p.Place(sim, 0, 0); !errors.Is(err, core.ErrInteractionLocked) {
		t.Fatalf("err = %v, want ErrInteractionLocked", err)
	}
}

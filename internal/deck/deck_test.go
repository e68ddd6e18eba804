package deck

import (
	"errors"
	"testing"
)

// scriptRNG replays a fixed sequence of values, then zeroes.
type scriptRNG struct {
	seq []int
	pos int
}

func (s *scriptRNG) Intn(n int) int {
	if s.pos >= len(s.seq) {
		return 0
	}
	v := s.seq[s.pos]
	s.pos++
	return v % n
}

func mustTable(t *testing.T, entries ...Entry) *Table {
	t.Helper()
	tbl, err := NewTable(entries)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestDraw_FollowsCumulativeRanges(t *testing.T) {
	t.Parallel()

	// Table [("A",2),("B",1)], total 3: unit 0→A, 1→A, 2→B.
	tests := []struct {
		name string
		roll int
		want string
	}{
		{"first unit", 0, "A"},
		{"second unit", 1, "A"},
		{"third unit", 2, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := New(mustTable(t, Entry{Name: "A", Count: 2}, Entry{Name: "B", Count: 1}))
			got, err := d.Draw(&scriptRNG{seq: []int{tt.roll}})
			if err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Draw with roll %d = %q, want %q", tt.roll, got, tt.want)
			}
		})
	}
}

func TestDraw_ShrinksByExactlyOneUnit(t *testing.T) {
	t.Parallel()

	d := New(mustTable(t, Entry{Name: "A", Count: 2}, Entry{Name: "B", Count: 1}))

	name, err := d.Draw(&scriptRNG{seq: []int{0}})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if name != "A" {
		t.Fatalf("Draw = %q, want A", name)
	}
	if got := d.Remaining(); got != 2 {
		t.Fatalf("Remaining = %d, want 2", got)
	}

	counts := d.Counts()
	if counts[0].Remaining != 1 {
		t.Fatalf("A remaining = %d, want 1", counts[0].Remaining)
	}
	if counts[1].Remaining != 1 {
		t.Fatalf("B remaining = %d, want 1 (untouched)", counts[1].Remaining)
	}
}

func TestDraw_SkipsExhaustedTypes(t *testing.T) {
	t.Parallel()

	d := New(mustTable(t, Entry{Name: "A", Count: 1}, Entry{Name: "B", Count: 2}))

	// Exhaust A, then any roll must land on B.
	if _, err := d.Draw(&scriptRNG{seq: []int{0}}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for i := 0; i < 2; i++ {
		got, err := d.Draw(&scriptRNG{seq: []int{0}})
		if err != nil {
			t.Fatalf("Draw %d: %v", i, err)
		}
		if got != "B" {
			t.Fatalf("Draw %d = %q, want B (A exhausted)", i, got)
		}
	}
}

func TestDraw_ExhaustionThenEmptyDeck(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, Entry{Name: "A", Count: 2}, Entry{Name: "B", Count: 3})
	d := New(tbl)
	rng := &scriptRNG{seq: []int{4, 0, 2, 1, 0}}

	for i := 0; i < tbl.Total(); i++ {
		if _, err := d.Draw(rng); err != nil {
			t.Fatalf("draw %d of %d: %v", i+1, tbl.Total(), err)
		}
	}

	if !d.IsEmpty() {
		t.Fatal("deck not empty after drawing every unit")
	}
	if _, err := d.Draw(rng); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("draw on empty deck: err = %v, want ErrEmptyDeck", err)
	}
	if got := d.Remaining(); got != 0 {
		t.Fatalf("failed draw mutated deck: Remaining = %d, want 0", got)
	}
}

func TestConservation_TotalMatchesCountsAndHistory(t *testing.T) {
	t.Parallel()

	d := New(mustTable(t, Entry{Name: "A", Count: 3}, Entry{Name: "B", Count: 2}, Entry{Name: "C", Count: 1}))
	rng := &scriptRNG{seq: []int{5, 0, 3, 2}}

	for i := 0; i < 4; i++ {
		if _, err := d.Draw(rng); err != nil {
			t.Fatalf("Draw: %v", err)
		}

		sum, drawnSum := 0, 0
		for _, c := range d.Counts() {
			sum += c.Remaining
			drawnSum += c.Original - c.Remaining
			if c.Remaining < 0 || c.Remaining > c.Original {
				t.Fatalf("count %q = %d outside [0,%d]", c.Name, c.Remaining, c.Original)
			}
			if got := d.DrawnCount(c.Name); got != c.Original-c.Remaining {
				t.Fatalf("DrawnCount(%q) = %d, want %d", c.Name, got, c.Original-c.Remaining)
			}
		}
		if got := d.Remaining(); got != sum {
			t.Fatalf("Remaining = %d, counts sum to %d", got, sum)
		}
		if got := len(d.Drawn()); got != drawnSum {
			t.Fatalf("drawn history length = %d, want %d", got, drawnSum)
		}
	}
}

func TestReset_RestoresOriginalCounts(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, Entry{Name: "A", Count: 2}, Entry{Name: "B", Count: 1})
	d := New(tbl)
	rng := &scriptRNG{seq: []int{2, 0}}

	for i := 0; i < 2; i++ {
		if _, err := d.Draw(rng); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}

	d.Reset()
	if got := d.Remaining(); got != tbl.Total() {
		t.Fatalf("Remaining after reset = %d, want %d", got, tbl.Total())
	}
	for i, c := range d.Counts() {
		if c.Remaining != c.Original {
			t.Fatalf("entry %d remaining = %d, want %d", i, c.Remaining, c.Original)
		}
	}
	if got := len(d.Drawn()); got != 0 {
		t.Fatalf("drawn history after reset = %d entries, want 0", got)
	}

	// Idempotent: a second reset changes nothing.
	d.Reset()
	if got := d.Remaining(); got != tbl.Total() {
		t.Fatalf("Remaining after double reset = %d, want %d", got, tbl.Total())
	}
}

func TestReset_PreservesEntryOrder(t *testing.T) {
	t.Parallel()

	d := New(mustTable(t, Entry{Name: "C", Count: 1}, Entry{Name: "A", Count: 1}, Entry{Name: "B", Count: 1}))
	d.Reset()

	want := []string{"C", "A", "B"}
	for i, c := range d.Counts() {
		if c.Name != want[i] {
			t.Fatalf("entry %d = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestWithTitle_SetsDisplayTitle(t *testing.T) {
	t.Parallel()

	plain := New(mustTable(t, Entry{Name: "A", Count: 1}))
	if got := plain.Title(); got != "" {
		t.Fatalf("Title = %q, want empty without WithTitle", got)
	}

	titled := New(mustTable(t, Entry{Name: "A", Count: 1}), WithTitle("Terrain"))
	if got := titled.Title(); got != "Terrain" {
		t.Fatalf("Title = %q, want Terrain", got)
	}
}

func TestDrawn_HistoryInDrawOrder(t *testing.T) {
	t.Parallel()

	d := New(mustTable(t, Entry{Name: "Grassland", Count: 2}, Entry{Name: "Desert", Count: 1}))
	rng := &scriptRNG{seq: []int{2, 0, 0}}

	want := []string{"Desert", "Grassland", "Grassland"}
	for i, w := range want {
		got, err := d.Draw(rng)
		if err != nil {
			t.Fatalf("draw %d: %v", i+1, err)
		}
		if got != w {
			t.Fatalf("draw %d = %q, want %q", i+1, got, w)
		}
	}

	drawn := d.Drawn()
	if len(drawn) != len(want) {
		t.Fatalf("Drawn length = %d, want %d", len(drawn), len(want))
	}
	for i, w := range want {
		if drawn[i] != w {
			t.Fatalf("Drawn[%d] = %q, want %q", i, drawn[i], w)
		}
	}
}

func TestEndToEnd_GrasslandDesertScenario(t *testing.T) {
	t.Parallel()

	// Definition {"cards":[{"name":"Grassland","count":2},{"name":"Desert","count":1}]}
	// drawn with scripted indices 2,0,0 yields Desert, Grassland, Grassland.
	tbl := mustTable(t, Entry{Name: "Grassland", Count: 2}, Entry{Name: "Desert", Count: 1})
	d := New(tbl)
	rng := &scriptRNG{seq: []int{2, 0, 0}}

	want := []string{"Desert", "Grassland", "Grassland"}
	for i, w := range want {
		got, err := d.Draw(rng)
		if err != nil {
			t.Fatalf("draw %d: %v", i+1, err)
		}
		if got != w {
			t.Fatalf("draw %d = %q, want %q", i+1, got, w)
		}
	}

	if _, err := d.Draw(rng); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("4th draw err = %v, want ErrEmptyDeck", err)
	}

	d.Reset()
	if got := d.Remaining(); got != 3 {
		t.Fatalf("Remaining after reset = %d, want 3", got)
	}
}

func TestSeededRNG_Reproducible(t *testing.T) {
	t.Parallel()

	a, b := SeededRNG(42), SeededRNG(42)
	for i := 0; i < 50; i++ {
		if va, vb := a.Intn(10), b.Intn(10); va != vb {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, va, vb)
		}
	}
}

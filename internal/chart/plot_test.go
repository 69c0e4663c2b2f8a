package chart

import (
	"strings"
	"testing"

	"github.com/san-kum/world2/internal/world"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		v, lo, hi float64
		divisions int
		want      int
	}{
		{1.65e9, 0, 8e9, 60, 12},
		{4e9, 0, 8e9, 60, 30},
		{8e9, 0, 8e9, 60, 60},
		{9e9, 0, 8e9, 60, 68},   // off the top of the scale
		{-1.0, 0, 40, 60, -2},   // below the bottom
		{0.5, 0.2, 0.6, 60, 45}, // non-zero origin
		{0, 0, 40, 60, 0},
	}

	for _, tt := range tests {
		if got := Column(tt.v, tt.lo, tt.hi, tt.divisions); got != tt.want {
			t.Errorf("Column(%v, %v, %v, %d) = %d, want %d",
				tt.v, tt.lo, tt.hi, tt.divisions, got, tt.want)
		}
	}
}

func runHistory(t *testing.T, c world.Constants) []world.Vars {
	t.Helper()
	m := world.New(c)
	var history []world.Vars
	for !m.Done() {
		v, err := m.Advance()
		if err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
		history = append(history, v)
	}
	return history
}

func TestPlot_StandardRun(t *testing.T) {
	fig, err := NewRegistry().Get("4-1")
	if err != nil {
		t.Fatalf("Get(4-1) error: %v", err)
	}

	out, err := fig.Plot().Render(runHistory(t, fig.Constants()))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	lines := strings.Split(out, "\n")

	// legend, blank, five scale rows, 51 sample rows
	if len(lines) != 58 {
		t.Fatalf("render produced %d lines, want 58", len(lines))
	}
	if lines[0] != "P=P,POLR=2,CI=C,QL=Q,NR=N" {
		t.Errorf("legend = %q", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("line after legend = %q, want blank", lines[1])
	}

	scales := []struct {
		idx  int
		want string
	}{
		{2, "      P 0.             2.B            4.B            6.B            8.B"},
		{3, "      2 0.             10.            20.            30.            40."},
		{5, "      Q 0.             0.5            1.             1.5            2."},
		{6, "      N 0.             250.B          500.B          750.B          1000.B"},
	}
	for _, s := range scales {
		if lines[s.idx] != s.want {
			t.Errorf("scale row %d = %q, want %q", s.idx, lines[s.idx], s.want)
		}
	}

	// dashed rows carry the year label and land every 10th sample
	rows := []struct {
		idx  int
		want string
	}{
		{7, "   1900.2C- - - - - P - - Q - - - - - - - - - - - - - - - - - N - - -"},
		{17, "   1940.2 - -C- - - - - - -P- - - - - - Q - - - - - - - - -N- - - - -"},
		{27, "   1980.- 2 - - - - - C - - - - - - Q -P- - - - - - N - - - - - - - -"},
		{57, "   2100.- - 2 - - - - - QNC - - - - P - - - - - - - - - - - - - - - -"},
	}
	for _, r := range rows {
		if lines[r.idx] != r.want {
			t.Errorf("row %d = %q,\nwant     %q", r.idx, lines[r.idx], r.want)
		}
	}

	// colliding symbols overflow past the right margin
	if !strings.HasSuffix(lines[43], ". CN") {
		t.Errorf("row 43 = %q, want CN overflow note", lines[43])
	}
}

func TestPlot_SharedScaleOverlap(t *testing.T) {
	fig, err := NewRegistry().Get("4-2")
	if err != nil {
		t.Fatalf("Get(4-2) error: %v", err)
	}

	out, err := fig.Plot().Render(runHistory(t, fig.Constants()))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	lines := strings.Split(out, "\n")

	// CIAF runs on its own 0.2..0.6 scale
	if want := "      A 0.2            0.3            0.4            0.5            0.6"; lines[6] != want {
		t.Errorf("CIAF scale = %q, want %q", lines[6], want)
	}
	// FR and QLP start the run on the same column
	if want := "   1900.A - - - M - - - - - - - - - - -F- - - - -4- - - - - - - - - - F5"; lines[7] != want {
		t.Errorf("first row = %q,\nwant      %q", lines[7], want)
	}
}

func TestPlot_UnknownField(t *testing.T) {
	p := New(Series{Field: "XYZZY", Symbol: 'X', Lo: 0, Hi: 1})
	if _, err := p.Render(nil); err == nil {
		t.Error("Render() with unknown field: expected error")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	figs := r.List()
	if len(figs) != 7 {
		t.Fatalf("List() returned %d figures, want 7", len(figs))
	}
	wantOrder := []string{"4-1", "4-2", "4-3", "4-4", "4-5", "4-6", "4-7"}
	for i, f := range figs {
		if f.Name != wantOrder[i] {
			t.Errorf("List()[%d] = %s, want %s", i, f.Name, wantOrder[i])
		}
	}

	fig, err := r.Get("4-5")
	if err != nil {
		t.Fatalf("Get(4-5) error: %v", err)
	}
	if got := fig.Constants().NRUN1; got != 0.25 {
		t.Errorf("figure 4-5 NRUN1 = %v, want 0.25", got)
	}
	if got := fig.Constants().NRUN; got != 1 {
		t.Errorf("figure 4-5 NRUN = %v, want 1", got)
	}

	if _, err := r.Get("9-9"); err == nil {
		t.Error("Get(9-9): expected error")
	}
}

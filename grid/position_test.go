package grid

import (
	"testing"

	"github.com/gogpu/ninebox/font"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		p        Position
		valid    bool
		lockable bool
		row, col int
	}{
		{0, true, true, 0, 0},
		{2, true, true, 0, 2},
		{Center, true, false, 1, 1},
		{5, true, true, 1, 2},
		{8, true, true, 2, 2},
		{-1, false, false, -1, -1},
		{9, false, false, 3, 0},
	}
	for _, tt := range tests {
		if got := tt.p.Valid(); got != tt.valid {
			t.Errorf("Position(%d).Valid() = %v, want %v", tt.p, got, tt.valid)
		}
		if got := tt.p.Lockable(); got != tt.lockable {
			t.Errorf("Position(%d).Lockable() = %v, want %v", tt.p, got, tt.lockable)
		}
		if !tt.valid {
			continue
		}
		if tt.p.Row() != tt.row || tt.p.Col() != tt.col {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", tt.p, tt.p.Row(), tt.p.Col(), tt.row, tt.col)
		}
	}
}

func TestSurroundingExcludesCenter(t *testing.T) {
	if len(Surrounding) != Size-1 {
		t.Fatalf("len(Surrounding) = %d", len(Surrounding))
	}
	for _, p := range Surrounding {
		if p == Center || !p.Valid() {
			t.Errorf("Surrounding contains %d", p)
		}
	}
}

func TestMirror(t *testing.T) {
	a := Mirror("A")
	for i, id := range a {
		if id != "A" {
			t.Errorf("cell %d = %q", i, id)
		}
	}
	if !Mirror(font.Empty).IsBlank() {
		t.Error("Mirror(empty) is not blank")
	}
}

func TestArrangementString(t *testing.T) {
	a := Arrangement{"A", "", "C", "", "天", "", "", "", "z"}
	want := "A · C\n· 天 ·\n· · z"
	if got := a.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

package casino

import "testing"

// quietGrid has no column, diagonal or run matches.
func quietGrid() Grid {
	return Grid{
		{"cherry", "lemon", "orange", "plum", "bell"},
		{"bar", "seven", "grape", "melon", "star"},
		{"horseshoe", "diamond", "cherry", "lemon", "orange"},
	}
}

func TestQuietGridScoresZero(t *testing.T) {
	if got := scoreGrid(quietGrid()); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
}

func TestColumnMatchScoresThree(t *testing.T) {
	g := quietGrid()
	g[1][0] = "cherry"
	g[2][0] = "cherry"

	if got := scoreGrid(g); got != 3 {
		t.Fatalf("score = %d, want 3", got)
	}
}

func TestDiagonalMatchScoresThree(t *testing.T) {
	g := quietGrid()
	// (0,1) -> (1,2) -> (2,3)
	g[0][1] = "star"
	g[1][2] = "star"
	g[2][3] = "star"

	if got := scoreGrid(g); got != 3 {
		t.Fatalf("score = %d, want 3", got)
	}
}

func TestHorizontalRunScoresRunLength(t *testing.T) {
	g := quietGrid()
	g[1][1] = "bar"
	g[1][2] = "bar"
	// row 1: bar bar bar melon star

	if got := scoreGrid(g); got != 3 {
		t.Fatalf("run of 3 score = %d, want 3", got)
	}

	g[1][3] = "bar"
	g[1][4] = "bar"
	if got := scoreGrid(g); got != 5 {
		t.Fatalf("run of 5 score = %d, want 5", got)
	}
}

func TestRulesAccumulate(t *testing.T) {
	g := quietGrid()
	// column 4 triple
	g[1][4] = "bell"
	g[2][4] = "bell"
	// run of 3 in row 2
	g[2][0] = "diamond"
	g[2][2] = "diamond"
	// row 2: diamond diamond diamond lemon bell

	if got := scoreGrid(g); got != 6 {
		t.Fatalf("score = %d, want 6", got)
	}
}

func TestDrawGridUsesAlphabet(t *testing.T) {
	valid := make(map[string]bool, len(slotSymbols))
	for _, s := range slotSymbols {
		valid[s] = true
	}

	g := drawGrid(NewRoller("seed", "client", 0))
	for r := range g {
		for c := range g[r] {
			if !valid[g[r][c]] {
				t.Fatalf("cell (%d,%d) = %q not in alphabet", r, c, g[r][c])
			}
		}
	}
}

package casino

const (
	gridRows = 3
	gridCols = 5
)

// The fixed 12-symbol alphabet every cell draws from.
var slotSymbols = [12]string{
	"cherry", "lemon", "orange", "plum", "bell", "bar",
	"seven", "grape", "melon", "star", "horseshoe", "diamond",
}

type Grid [gridRows][gridCols]string

func drawGrid(rng RNG) Grid {
	var g Grid
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			g[r][c] = slotSymbols[rng.Intn(len(slotSymbols))]
		}
	}
	return g
}

// scoreGrid sums all three scoring rules: full columns (+3 each), the
// three down-right diagonals anchored at row 0 columns 0-2 (+3 each),
// and every maximal horizontal run of three or more (+run length).
func scoreGrid(g Grid) int {
	score := 0

	for c := 0; c < gridCols; c++ {
		if g[0][c] == g[1][c] && g[1][c] == g[2][c] {
			score += 3
		}
	}

	for c := 0; c <= 2; c++ {
		if g[0][c] == g[1][c+1] && g[1][c+1] == g[2][c+2] {
			score += 3
		}
	}

	for r := 0; r < gridRows; r++ {
		run := 1
		for c := 1; c <= gridCols; c++ {
			if c < gridCols && g[r][c] == g[r][c-1] {
				run++
				continue
			}
			if run >= 3 {
				score += run
			}
			run = 1
		}
	}

	return score
}

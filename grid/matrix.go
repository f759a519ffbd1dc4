package grid

import "fmt"

// MatrixGrid is a minimal matrix-backed Grid used as the default
// builder target and in tests.  Real deployments supply a Builder
// wrapping the external collaborator's grid type instead.
type MatrixGrid struct {
	values [][]float64
	window *Window
}

// MatrixBuilder builds MatrixGrids.
type MatrixBuilder struct{}

// FromMatrix fulfills the Builder interface.
func (MatrixBuilder) FromMatrix(values [][]float64, win *Window) (Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	cols := len(values[0])
	dup := make([][]float64, len(values))
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged matrix: row %d has %d values, expected %d", i, len(row), cols)
		}
		dup[i] = make([]float64, cols)
		copy(dup[i], row)
	}
	var w *Window
	if win != nil {
		dupWin := *win
		w = &dupWin
	}
	return &MatrixGrid{values: dup, window: w}, nil
}

func (g *MatrixGrid) Rows() int { return len(g.values) }

func (g *MatrixGrid) Cols() int { return len(g.values[0]) }

func (g *MatrixGrid) Value(row, col int) float64 { return g.values[row][col] }

// Window returns the spatial window attached at construction, or nil.
func (g *MatrixGrid) Window() *Window { return g.window }

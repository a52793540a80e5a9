package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaze(t *testing.T, rows, cols int, difficult bool) *Maze {
	t.Helper()
	m := New()
	require.NoError(t, m.Generate(rows, cols, difficult))
	return m
}

// openGraph counts the non-wall cells and the adjacencies between them.
func openGraph(m *Maze) (nodes, edges int) {
	for row := 0; row < m.NumRows(); row++ {
		for col := 0; col < m.NumCols(); col++ {
			if m.IsWall(row, col) {
				continue
			}
			nodes++
			if m.InBound(row, col+1) && !m.IsWall(row, col+1) {
				edges++
			}
			if m.InBound(row+1, col) && !m.IsWall(row+1, col) {
				edges++
			}
		}
	}
	return nodes, edges
}

// floodReachable walks the open-cell graph from the start cell and returns
// the number of cells reached.
func floodReachable(m *Maze) int {
	seen := map[*Cell]bool{m.StartCell(): true}
	queue := []*Cell{m.StartCell()}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			n := m.Neighbor(cell, dir, 1)
			if n == nil || n.Type == Wall || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func TestGenerateClampsDimensions(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		wantRows int
		wantCols int
	}{
		{"below minimum", 1, 1, MinRows, MinCols},
		{"above maximum", 10000, 10000, MaxRows, MaxCols},
		{"even bumped to odd", 100, 42, 101, 43},
		{"valid odd kept", 21, 499, 21, 499},
		{"even below max bumped", 498, 498, 499, 499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMaze(t, tt.rows, tt.cols, false)
			assert.Equal(t, tt.wantRows, m.NumRows())
			assert.Equal(t, tt.wantCols, m.NumCols())
		})
	}
}

func TestGenerateBoardWellFormed(t *testing.T) {
	m := newTestMaze(t, 21, 21, false)

	starts, ends := 0, 0
	for row := 0; row < m.NumRows(); row++ {
		for col := 0; col < m.NumCols(); col++ {
			cell := m.CellAt(row, col)
			require.NotNil(t, cell)
			assert.Equal(t, row, cell.Row)
			assert.Equal(t, col, cell.Col)
			assert.Zero(t, cell.Value, "values must be clean after generation")

			switch cell.Type {
			case Start:
				starts++
			case End:
				ends++
			case Empty, Wall:
			default:
				t.Fatalf("unexpected cell type %v at (%d,%d)", cell.Type, row, col)
			}
		}
	}

	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
	assert.Equal(t, m.CellAt(1, 0), m.StartCell())
	assert.Equal(t, m.CellAt(m.NumRows()-2, m.NumCols()-2), m.EndCell())
}

func TestGeneratePerimeterIsWalled(t *testing.T) {
	m := newTestMaze(t, 31, 41, false)

	for row := 0; row < m.NumRows(); row++ {
		for col := 0; col < m.NumCols(); col++ {
			cell := m.CellAt(row, col)
			if !m.IsPerimeter(cell) || cell == m.StartCell() {
				continue
			}
			assert.Equal(t, Wall, cell.Type, "perimeter cell (%d,%d) must be a wall", row, col)
		}
	}
}

func TestGenerateSpanningTree(t *testing.T) {
	// Without extra carvings the open cells must form a tree:
	// edge count = node count - 1.
	for i := 0; i < 5; i++ {
		m := newTestMaze(t, 21, 21, false)
		nodes, edges := openGraph(m)
		assert.Equal(t, nodes-1, edges)
	}
}

func TestGenerateDifficultAddsCycles(t *testing.T) {
	m := newTestMaze(t, 41, 41, true)
	nodes, edges := openGraph(m)
	assert.GreaterOrEqual(t, edges, nodes, "difficult maze must contain cycles")
	assert.True(t, m.Difficult())
}

func TestGenerateEndReachable(t *testing.T) {
	for _, difficult := range []bool{false, true} {
		m := newTestMaze(t, 31, 31, difficult)
		nodes, _ := openGraph(m)
		assert.Equal(t, nodes, floodReachable(m), "all open cells must be connected")
	}
}

func TestDimensionAccessorsDuringRegeneration(t *testing.T) {
	// Regeneration rewrites the dimensions under the write lock; readers
	// polling them through the accessors must stay synchronized with it.
	m := newTestMaze(t, 21, 99, false)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			assert.NoError(t, m.Generate(21+2*(i%10), 99, false))
		}
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			rows, cols := m.NumRows(), m.NumCols()
			assert.GreaterOrEqual(t, rows, MinRows)
			assert.Equal(t, 99, cols)
			m.CellType(rows-1, cols-1)
			m.Difficult()
		}
	}
}

func TestSeededGenerationReproducible(t *testing.T) {
	a, b := New(), New()
	a.Seed(42)
	b.Seed(42)
	require.NoError(t, a.Generate(41, 31, true))
	require.NoError(t, b.Generate(41, 31, true))
	assert.Equal(t, a.String(), b.String())

	b.Seed(42)
	require.NoError(t, b.Generate(41, 31, true))
	assert.Equal(t, a.String(), b.String(), "reseeding must reproduce the board")

	b.Seed(7)
	require.NoError(t, b.Generate(41, 31, true))
	assert.NotEqual(t, a.String(), b.String())
}

func TestGenerateReusesAllocation(t *testing.T) {
	m := newTestMaze(t, 121, 121, false)
	bigCap := cap(m.board)

	require.NoError(t, m.Generate(21, 21, false))
	assert.Equal(t, 21, m.NumRows())
	assert.Equal(t, 21, m.NumCols())
	assert.Equal(t, bigCap, cap(m.board), "smaller board must reuse the allocation")
}

func TestClampOdd(t *testing.T) {
	assert.Equal(t, 21, clampOdd(-5, MinRows, MaxRows))
	assert.Equal(t, 499, clampOdd(500, MinRows, MaxRows))
	assert.Equal(t, 23, clampOdd(22, MinRows, MaxRows))
	assert.Equal(t, 33, clampOdd(33, MinRows, MaxRows))
}

func TestValidSeed(t *testing.T) {
	assert.True(t, validSeed(1, 1))
	assert.True(t, validSeed(19, 7))
	assert.False(t, validSeed(0, 1))
	assert.False(t, validSeed(1, 2))
	assert.False(t, validSeed(4, 4))
}

package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborOrder(t *testing.T) {
	f := newField(t, 3, 3, 0)

	// left, upper-left, up, upper-right, right, lower-right, down, lower-left
	assert.Equal(t, []int{3, 0, 1, 2, 5, 8, 7, 6}, f.cells[4].neighbors)
	assert.Equal(t, []int{1, 4, 3}, f.cells[0].neighbors)
	assert.Equal(t, []int{7, 4, 5}, f.cells[8].neighbors)
	assert.Equal(t, []int{0, 2, 5, 4, 3}, f.cells[1].neighbors)
}

func TestOutOfBounds(t *testing.T) {
	f := newField(t, 3, 3, 1)

	_, err := f.Cell(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = f.Open(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.ErrorIs(t, f.ToggleFlag(0, 3), ErrOutOfBounds)
	assert.ErrorIs(t, f.SetFlag(0, -1, true), ErrOutOfBounds)
	assert.ErrorIs(t, f.PlaceMine(9, 9), ErrOutOfBounds)
	assert.ErrorIs(t, f.MarkOpened(3, 3), ErrOutOfBounds)
	assert.Zero(t, f.OpenedCount())
}

func TestCountersFollowMutations(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	f := newField(t, 8, 6, 12)
	require.NoError(t, f.Initialize(r))
	assertCounts(t, f)

	for range 500 {
		x, y := r.IntN(f.Width), r.IntN(f.Height)
		switch r.IntN(4) {
		case 0:
			require.NoError(t, f.ToggleFlag(x, y))
		case 1:
			require.NoError(t, f.SetMine(x, y, r.IntN(2) == 0))
		case 2:
			require.NoError(t, f.MarkOpened(x, y))
		case 3:
			_, err := f.Open(x, y)
			require.NoError(t, err)
		}
		assertCounts(t, f)
	}
}

func TestMineIgnoresCountUpdates(t *testing.T) {
	f := newField(t, 3, 3, 0)

	require.NoError(t, f.PlaceMine(0, 0))
	require.NoError(t, f.PlaceMine(1, 1))
	require.NoError(t, f.PlaceMine(2, 2))
	assert.Equal(t, 1, f.cells[4].mineCount, "updates on a mine are dropped")

	require.NoError(t, f.SetMine(1, 1, false))
	c, err := f.Cell(1, 1)
	require.NoError(t, err)
	assert.False(t, c.IsMine)
	assert.Equal(t, 2, c.MineCount)
	assertCounts(t, f)
}

func TestSetMineIsIdempotent(t *testing.T) {
	f := newField(t, 3, 3, 0)
	require.NoError(t, f.PlaceMine(0, 0))
	require.NoError(t, f.PlaceMine(0, 0))

	c, err := f.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.MineCount)
}

func TestFlagPropagates(t *testing.T) {
	f := newField(t, 3, 3, 0)

	require.NoError(t, f.SetFlag(1, 1, true))
	require.NoError(t, f.SetFlag(1, 1, true))
	for i, c := range f.cells {
		if i == 4 {
			assert.Zero(t, c.flagCount)
		} else {
			assert.Equal(t, 1, c.flagCount)
		}
	}

	require.NoError(t, f.ToggleFlag(1, 1))
	for _, c := range f.cells {
		assert.Zero(t, c.flagCount)
	}
}

func TestFlagOnOpenCellIsNoop(t *testing.T) {
	f := newField(t, 3, 3, 1, Point{2, 2})
	_, err := f.Open(1, 1)
	require.NoError(t, err)

	var rec Recorder
	f.Subscribe(rec.Record)

	require.NoError(t, f.ToggleFlag(1, 1))
	require.NoError(t, f.SetFlag(1, 1, true))

	c, err := f.Cell(1, 1)
	require.NoError(t, err)
	assert.False(t, c.IsFlagged)
	assert.Zero(t, rec.Len())
	assertCounts(t, f)
}

func TestOpenAll(t *testing.T) {
	f := newField(t, 3, 3, 2, Point{0, 0}, Point{2, 2})
	require.NoError(t, f.SetFlag(0, 0, true))
	require.NoError(t, f.SetFlag(1, 0, true))

	f.OpenAll()

	for _, c := range f.Cells() {
		assert.True(t, c.IsOpened)
	}
	assert.Equal(t, 9, f.OpenedCount())
	assert.False(t, f.HasWon(), "mines were opened too")
	_, exploded := f.Explosion()
	assert.False(t, exploded, "OpenAll does not detonate")
}

func TestHasWonTracksOpenedCount(t *testing.T) {
	for seed := range uint64(20) {
		r := rand.New(rand.NewPCG(seed, 7))
		f := newField(t, 6, 6, 5)
		require.NoError(t, f.Initialize(r))

		for range 60 {
			x, y := r.IntN(f.Width), r.IntN(f.Height)
			c, err := f.Cell(x, y)
			require.NoError(t, err)
			if c.IsMine {
				require.NoError(t, f.ToggleFlag(x, y))
				continue
			}
			_, err = f.Open(x, y)
			require.NoError(t, err)

			opened := 0
			for _, c := range f.Cells() {
				if c.IsOpened {
					opened++
				}
			}
			assert.Equal(t, opened, f.OpenedCount())
			assert.Equal(t, opened == 36-5, f.HasWon())
		}
	}
}

func TestSubscribe(t *testing.T) {
	f := newField(t, 3, 3, 1, Point{2, 2})

	var first, second []Point
	cancel := f.Subscribe(func(c CellInfo) { first = append(first, c.Point()) })
	f.Subscribe(func(c CellInfo) { second = append(second, c.Point()) })

	require.NoError(t, f.ToggleFlag(0, 0))
	cancel()
	require.NoError(t, f.ToggleFlag(0, 0))

	assert.Equal(t, []Point{{0, 0}}, first)
	assert.Equal(t, []Point{{0, 0}, {0, 0}}, second)
}

func TestRecorderDrain(t *testing.T) {
	f := newField(t, 3, 3, 1, Point{2, 2})
	var rec Recorder
	f.Subscribe(rec.Record)

	require.NoError(t, f.ToggleFlag(0, 0))
	changes := rec.Drain()
	require.Len(t, changes, 1)
	assert.True(t, changes[0].IsFlagged)

	assert.Empty(t, rec.Drain())
}

func TestCountChangeOnOpenCellNotifies(t *testing.T) {
	f := newField(t, 3, 3, 1)
	require.NoError(t, f.MarkOpened(1, 1))

	var rec Recorder
	f.Subscribe(rec.Record)
	require.NoError(t, f.InitializeWith([]Point{{0, 0}}))

	changes := rec.Drain()
	require.Len(t, changes, 1)
	assert.Equal(t, Point{1, 1}, changes[0].Point())
	assert.Equal(t, 1, changes[0].MineCount)
}

package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Field owns the cells of one game. Mines are placed lazily by [Field.Initialize]
// so that whatever is open at that moment stays safe.
//
// A Field is not safe for concurrent use.
type Field struct {
	GameParams
	cells       []Cell
	openedCount int
	initialized bool
	explosion   Point
	exploded    bool
	observers   []observer
	nextID      int
}

func NewField(params GameParams) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		GameParams: params,
		cells:      make([]Cell, params.Width*params.Height),
	}
	for y := range params.Height {
		for x := range params.Width {
			f.cells[y*params.Width+x] = Cell{
				x: x, y: y,
				neighbors: params.neighbors(x, y),
			}
		}
	}
	return f, nil
}

func (f *Field) index(x, y int) (int, error) {
	if !f.PointInBounds(x, y) {
		return 0, fmt.Errorf(
			"%w: (%d, %d) on %dx%d field", ErrOutOfBounds, x, y, f.Width, f.Height,
		)
	}
	return y*f.Width + x, nil
}

func (f *Field) cell(x, y int) (*Cell, error) {
	i, err := f.index(x, y)
	if err != nil {
		return nil, err
	}
	return &f.cells[i], nil
}

func (f *Field) Cell(x, y int) (CellInfo, error) {
	c, err := f.cell(x, y)
	if err != nil {
		return CellInfo{}, err
	}
	return f.info(c), nil
}

// Cells returns snapshots of every cell, row by row.
func (f *Field) Cells() []CellInfo {
	out := make([]CellInfo, len(f.cells))
	for i := range f.cells {
		out[i] = f.info(&f.cells[i])
	}
	return out
}

func (f *Field) Initialized() bool { return f.initialized }

func (f *Field) OpenedCount() int { return f.openedCount }

func (f *Field) NeededOpened() int { return f.Width*f.Height - f.MineCount }

func (f *Field) HasWon() bool {
	return f.openedCount == f.NeededOpened()
}

// Explosion returns the first mine ever opened.
func (f *Field) Explosion() (Point, bool) {
	return f.explosion, f.exploded
}

func (f *Field) setExplosion(p Point) {
	if f.exploded {
		return
	}
	f.explosion, f.exploded = p, true
	Log.WithField("point", p).Debug("explosion")
	f.notify(&f.cells[p.Y*f.Width+p.X])
}

// SetMine adds or removes a mine and keeps the neighbours' counts exact.
// It does not check the field's mine quota.
func (f *Field) SetMine(x, y int, value bool) error {
	c, err := f.cell(x, y)
	if err != nil {
		return err
	}
	f.setMine(c, value)
	return nil
}

func (f *Field) PlaceMine(x, y int) error {
	return f.SetMine(x, y, true)
}

// SetFlag is a no-op on open cells.
func (f *Field) SetFlag(x, y int, value bool) error {
	c, err := f.cell(x, y)
	if err != nil {
		return err
	}
	f.setFlagged(c, value)
	return nil
}

func (f *Field) ToggleFlag(x, y int) error {
	c, err := f.cell(x, y)
	if err != nil {
		return err
	}
	f.setFlagged(c, !c.flagged)
	return nil
}

// MarkOpened opens a single cell without any reveal logic. Used for the
// first click, before the mines are placed.
func (f *Field) MarkOpened(x, y int) error {
	c, err := f.cell(x, y)
	if err != nil {
		return err
	}
	f.setOpened(c, true)
	return nil
}

// OpenAll opens every cell regardless of flags.
func (f *Field) OpenAll() {
	for i := range f.cells {
		f.setOpened(&f.cells[i], true)
	}
}

package mines

type Cell struct {
	x, y      int
	mine      bool
	flagged   bool
	opened    bool
	mineCount int // mines around; meaningless for a mine
	flagCount int // flags around
	neighbors []int
}

// CellInfo is a read-only snapshot of a cell handed out to callers and
// change observers.
type CellInfo struct {
	X, Y      int
	IsMine    bool
	IsFlagged bool
	IsOpened  bool
	MineCount int
	FlagCount int
	Exploded  bool
}

func (c CellInfo) Point() Point {
	return Point{c.X, c.Y}
}

func (f *Field) info(c *Cell) CellInfo {
	return CellInfo{
		X:         c.x,
		Y:         c.y,
		IsMine:    c.mine,
		IsFlagged: c.flagged,
		IsOpened:  c.opened,
		MineCount: c.mineCount,
		FlagCount: c.flagCount,
		Exploded:  f.exploded && f.explosion == Point{c.x, c.y},
	}
}

func (f *Field) setMine(c *Cell, value bool) {
	if c.mine == value {
		return
	}
	c.mine = value

	delta := 1
	if !value {
		delta = -1
	}
	for _, i := range c.neighbors {
		n := &f.cells[i]
		f.setMineCount(n, n.mineCount+delta)
	}

	if !value {
		// updates were dropped while this cell was a mine
		count := 0
		for _, i := range c.neighbors {
			if f.cells[i].mine {
				count++
			}
		}
		f.setMineCount(c, count)
	}
}

func (f *Field) setMineCount(c *Cell, value int) {
	if c.mineCount == value || c.mine {
		return
	}
	c.mineCount = value
	if c.opened {
		f.notify(c)
	}
}

func (f *Field) setFlagged(c *Cell, value bool) {
	if c.flagged == value || c.opened {
		return
	}
	c.flagged = value

	delta := 1
	if !value {
		delta = -1
	}
	for _, i := range c.neighbors {
		f.cells[i].flagCount += delta
	}

	f.notify(c)
}

func (f *Field) setOpened(c *Cell, value bool) {
	if c.opened == value {
		return
	}
	c.opened = value
	if value {
		f.openedCount++
	} else {
		f.openedCount--
	}
	f.notify(c)
}

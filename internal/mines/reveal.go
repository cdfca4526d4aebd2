package mines

import "github.com/gammazero/deque"

type visit struct {
	index int
	chain bool
}

// Open opens the cell at x, y and reports false if a mine went off.
//
// Once a safe cell has at least as many flags around it as mines, every
// neighbour is opened as well, and so on through the cascade. Flagged cells
// stop the cascade, as do cells that were already open. Opening an already
// open cell directly re-runs its expansion, which is how a chord works.
func (f *Field) Open(x, y int) (bool, error) {
	i, err := f.index(x, y)
	if err != nil {
		return false, err
	}
	return f.open(i), nil
}

// open walks the cascade depth-first in the same order a recursive
// reveal would. Every branch is followed even after a mine is hit.
func (f *Field) open(start int) bool {
	var (
		safe  = true
		stack deque.Deque[visit]
	)
	stack.PushBack(visit{index: start})

	for stack.Len() > 0 {
		v := stack.PopBack()
		c := &f.cells[v.index]

		if c.flagged || (v.chain && c.opened) {
			continue
		}

		f.setOpened(c, true)

		if c.mine {
			f.setExplosion(Point{c.x, c.y})
			safe = false
			continue
		}

		if c.flagCount >= c.mineCount {
			// reversed so the first neighbour is popped first
			for j := len(c.neighbors) - 1; j >= 0; j-- {
				stack.PushBack(visit{index: c.neighbors[j], chain: true})
			}
		}
	}

	return safe
}

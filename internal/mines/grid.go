package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Neighbours are always walked clockwise starting from the left one.
var sides = [8]Point{
	{-1, 0},  // left
	{-1, -1}, // upper-left
	{0, -1},  // up
	{1, -1},  // upper-right
	{1, 0},   // right
	{1, 1},   // lower-right
	{0, 1},   // down
	{-1, 1},  // lower-left
}

func (p GameParams) neighbors(x, y int) []int {
	out := make([]int, 0, len(sides))
	for _, d := range sides {
		xx, yy := x+d.X, y+d.Y
		if p.PointInBounds(xx, yy) {
			out = append(out, yy*p.Width+xx)
		}
	}
	return out
}

// String dumps the mine layout: '*' for a mine, '.' for zero, the mine count
// otherwise.
func (f *Field) String() string {
	var b strings.Builder
	for y := range f.Height {
		for x := range f.Width {
			c := &f.cells[y*f.Width+x]
			switch {
			case c.mine:
				b.WriteByte('*')
			case c.mineCount == 0:
				b.WriteByte('.')
			default:
				b.WriteString(strconv.Itoa(c.mineCount))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

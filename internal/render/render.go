package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper-field/internal/mines"
)

const (
	Closed      = "#"
	Flag        = "!"
	Mine        = "*"
	FlaggedMine = "F"
	Explosion   = "X"
	Empty       = "."
)

// Glyph picks what a cell looks like. The exploded mine wins over every
// other mine look.
func Glyph(c mines.CellInfo) string {
	if !c.IsOpened {
		if c.IsFlagged {
			return Flag
		}
		return Closed
	}
	switch {
	case c.Exploded:
		return Explosion
	case c.IsMine && c.IsFlagged:
		return FlaggedMine
	case c.IsMine:
		return Mine
	case c.MineCount == 0:
		return Empty
	default:
		return strconv.Itoa(c.MineCount)
	}
}

var styles = map[string]lipgloss.Style{
	Closed:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	Mine:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	FlaggedMine: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	Explosion:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
	"1":         lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"2":         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"3":         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"4":         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"5":         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"6":         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"7":         lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"8":         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// Screen is the player's view of a field. It only changes through Apply,
// so it shows exactly what the change notifications reported.
type Screen struct {
	Width, Height int
	Styled        bool
	cells         []mines.CellInfo
}

func NewScreen(width, height int) *Screen {
	s := &Screen{
		Width:  width,
		Height: height,
		cells:  make([]mines.CellInfo, width*height),
	}
	for y := range height {
		for x := range width {
			s.cells[y*width+x] = mines.CellInfo{X: x, Y: y}
		}
	}
	return s
}

func (s *Screen) Apply(cells []mines.CellInfo) {
	for _, c := range cells {
		if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
			continue
		}
		s.cells[c.Y*s.Width+c.X] = c
	}
}

func (s *Screen) Glyph(x, y int) string {
	return Glyph(s.cells[y*s.Width+x])
}

func (s *Screen) paint(g string) string {
	if !s.Styled {
		return g
	}
	if style, ok := styles[g]; ok {
		return style.Render(g)
	}
	return g
}

// Render writes the grid with column numbers on top and row numbers on the
// left.
func (s *Screen) Render(w io.Writer) error {
	b := bufio.NewWriter(w)

	fmt.Fprint(b, "   ")
	for x := range s.Width {
		fmt.Fprintf(b, "%3d", x)
	}
	fmt.Fprint(b, "\n")

	for y := range s.Height {
		fmt.Fprintf(b, "%3d", y)
		for x := range s.Width {
			fmt.Fprint(b, "  "+s.paint(s.Glyph(x, y)))
		}
		fmt.Fprint(b, "\n")
	}

	return b.Flush()
}

package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

// DefaultParams is the board the game starts with when nothing else is asked for.
var DefaultParams = GameParams{Width: 16, Height: 16, MineCount: 32}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	switch {
	case p.Width < 1 || p.Height < 1:
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	case p.MineCount >= p.Width*p.Height:
		return fmt.Errorf(
			"%w: %d mines do not fit a %dx%d field",
			ErrInvalidParams, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Source picks mine positions. [*math/rand/v2.Rand] satisfies it.
type Source interface {
	IntN(n int) int
}

// Initialize places the mines. Cells that are already open are never mined,
// which is what makes the first click safe. Calling it again is a no-op.
func (f *Field) Initialize(r Source) error {
	if f.initialized {
		return nil
	}

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, len(f.cells))
	for i := range f.cells {
		if !f.cells[i].opened {
			candidates = append(candidates, i)
		}
	}

	if f.MineCount > len(candidates) {
		return fmt.Errorf(
			"%w: want %d, have %d", ErrTooManyMines, f.MineCount, len(candidates),
		)
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range f.MineCount {
		i := r.IntN(k)
		f.setMine(&f.cells[candidates[i]], true)
		k--
		candidates[i] = candidates[k]
	}

	f.initialized = true
	Log.WithField("params", f.Seed()).Debugf("mines placed\n%s", f)
	return nil
}

// InitializeWith places mines at exactly the given points. The layout must
// hold MineCount distinct closed cells.
func (f *Field) InitializeWith(points []Point) error {
	if f.initialized {
		return nil
	}
	if len(points) != f.MineCount {
		return fmt.Errorf(
			"%w: want %d mines, have %d", ErrInvalidLayout, f.MineCount, len(points),
		)
	}

	seen := make(map[int]struct{}, len(points))
	indices := make([]int, 0, len(points))
	for _, p := range points {
		i, err := f.index(p.X, p.Y)
		if err != nil {
			return err
		}
		if _, ok := seen[i]; ok {
			return fmt.Errorf("%w: duplicate mine at %s", ErrInvalidLayout, p)
		}
		if f.cells[i].opened {
			return fmt.Errorf("%w: mine at open cell %s", ErrInvalidLayout, p)
		}
		seen[i] = struct{}{}
		indices = append(indices, i)
	}

	for _, i := range indices {
		f.setMine(&f.cells[i], true)
	}

	f.initialized = true
	Log.WithField("params", f.Seed()).Debugf("mines placed\n%s", f)
	return nil
}

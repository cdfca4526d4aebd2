package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-field/internal/mines"
)

var ErrGameOver = errors.New("game is over")

type Status int

const (
	On Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case On:
		return "on"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Update is what a single command changed, in the order it changed.
type Update struct {
	Status Status
	Cells  []mines.CellInfo
}

// Session drives one game the way a player does: the first open places the
// mines around the clicked cell, and the whole field is revealed once the
// game is won or lost.
type Session struct {
	ID     uuid.UUID
	field  *mines.Field
	rec    mines.Recorder
	src    mines.Source
	status Status
	log    *logrus.Entry
}

func New(params mines.GameParams, src mines.Source, log *logrus.Logger) (*Session, error) {
	field, err := mines.NewField(params)
	if err != nil {
		return nil, err
	}
	return newSession(field, src, log), nil
}

// NewWithLayout starts a game whose mines are already in place.
func NewWithLayout(params mines.GameParams, layout []mines.Point, log *logrus.Logger) (*Session, error) {
	field, err := mines.NewField(params)
	if err != nil {
		return nil, err
	}
	if err := field.InitializeWith(layout); err != nil {
		return nil, err
	}
	return newSession(field, nil, log), nil
}

func newSession(field *mines.Field, src mines.Source, log *logrus.Logger) *Session {
	id := uuid.New()
	s := &Session{
		ID:    id,
		field: field,
		src:   src,
		log: log.WithFields(logrus.Fields{
			"game":   id.String(),
			"params": field.Seed(),
		}),
	}
	field.Subscribe(s.rec.Record)
	s.log.Info("new game")
	return s
}

func (s *Session) Status() Status { return s.status }

func (s *Session) Params() mines.GameParams { return s.field.GameParams }

// Cells returns the current state of every cell, row by row.
func (s *Session) Cells() []mines.CellInfo { return s.field.Cells() }

func (s *Session) Cell(x, y int) (mines.CellInfo, error) { return s.field.Cell(x, y) }

func (s *Session) Explosion() (mines.Point, bool) { return s.field.Explosion() }

func (s *Session) Open(x, y int) (Update, error) {
	if s.status != On {
		return Update{Status: s.status}, ErrGameOver
	}
	if !s.field.PointInBounds(x, y) {
		return Update{Status: s.status}, fmt.Errorf(
			"%w: (%d, %d)", mines.ErrOutOfBounds, x, y,
		)
	}

	log := s.log.WithFields(logrus.Fields{"x": x, "y": y})

	if !s.field.Initialized() {
		if err := s.field.MarkOpened(x, y); err != nil {
			return s.flush(), err
		}
		if err := s.field.Initialize(s.src); err != nil {
			return s.flush(), err
		}
	}

	safe, err := s.field.Open(x, y)
	if err != nil {
		return s.flush(), err
	}

	switch {
	case !safe:
		s.status = Lost
		s.field.OpenAll()
		p, _ := s.field.Explosion()
		log.WithField("explosion", p).Info("game lost")
	case s.field.HasWon():
		s.status = Won
		s.field.OpenAll()
		log.Info("game won")
	default:
		log.Debug("opened")
	}

	return s.flush(), nil
}

// ToggleFlag is ignored until the first cell is open, and on open cells.
func (s *Session) ToggleFlag(x, y int) (Update, error) {
	if s.status != On {
		return Update{Status: s.status}, ErrGameOver
	}
	if !s.field.Initialized() {
		if !s.field.PointInBounds(x, y) {
			return Update{Status: s.status}, fmt.Errorf(
				"%w: (%d, %d)", mines.ErrOutOfBounds, x, y,
			)
		}
		return Update{Status: s.status}, nil
	}
	if err := s.field.ToggleFlag(x, y); err != nil {
		return s.flush(), err
	}
	return s.flush(), nil
}

func (s *Session) flush() Update {
	return Update{Status: s.status, Cells: s.rec.Drain()}
}

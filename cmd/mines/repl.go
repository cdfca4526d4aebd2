package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-field/internal/config"
	"github.com/vancomm/minesweeper-field/internal/game"
	"github.com/vancomm/minesweeper-field/internal/mines"
	"github.com/vancomm/minesweeper-field/internal/render"
)

type repl struct {
	out     io.Writer
	config  *config.Config
	log     *logrus.Logger
	rnd     mines.Source
	session *game.Session
	screen  *render.Screen
}

func newREPL(out io.Writer, config *config.Config, log *logrus.Logger) *repl {
	return &repl{
		out:    out,
		config: config,
		log:    log,
		rnd:    config.Rand(),
	}
}

func (r *repl) newGame(params mines.GameParams) error {
	session, err := game.New(params, r.rnd, r.log)
	if err != nil {
		return err
	}
	r.session = session
	r.screen = render.NewScreen(params.Width, params.Height)
	r.screen.Styled = r.config.Color
	return r.screen.Render(r.out)
}

func (r *repl) execute(line string) error {
	name, args, err := splitCommand(line)
	if err != nil {
		return err
	}

	switch name {
	case "":
		return nil
	case "o", "f":
		x, y, err := parseXY(args)
		if err != nil {
			return err
		}
		var upd game.Update
		if name == "o" {
			upd, err = r.session.Open(x, y)
		} else {
			upd, err = r.session.ToggleFlag(x, y)
		}
		if err != nil {
			return err
		}
		return r.apply(upd)
	case "n":
		params, err := parseParams(args, r.session.Params())
		if err != nil {
			return err
		}
		return r.newGame(params)
	case "p":
		return r.screen.Render(r.out)
	case "h":
		_, err := io.WriteString(r.out, help)
		return err
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}

func (r *repl) apply(upd game.Update) error {
	if len(upd.Cells) == 0 {
		return nil
	}
	r.screen.Apply(upd.Cells)
	if err := r.screen.Render(r.out); err != nil {
		return err
	}
	switch upd.Status {
	case game.Won:
		fmt.Fprintln(r.out, "Game over. You won! :D")
	case game.Lost:
		fmt.Fprintln(r.out, "Game over. You lost :(")
	}
	return nil
}

// Run executes lines until quit, end of input, or ctx is done. Command
// errors are reported to the player and do not stop the loop.
func (r *repl) Run(ctx context.Context, lines <-chan string) error {
	fmt.Fprint(r.out, "> ")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return io.EOF
			}
			err := r.execute(line)
			if errors.Is(err, errQuit) {
				return err
			}
			if err != nil {
				r.log.WithError(err).WithField("command", line).Debug("command failed")
				fmt.Fprintf(r.out, "error: %s\n", err)
			}
			fmt.Fprint(r.out, "> ")
		}
	}
}

// scanLines feeds lines from in until it runs out or ctx is done.
func scanLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

package main

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-field/internal/mines"
)

// Maps known commands to number of arguments, -1 for any
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"n": -1,
	"p": 0,
	"h": 0,
	"q": 0,
}

const help = `commands:
  o X Y                           open a cell
  f X Y                           flag or unflag a cell
  n [width=W height=H mines=M]    start a new game
  p                               print the field
  h                               show this help
  q                               quit
`

var (
	errQuit = errors.New("quit")
	decoder = schema.NewDecoder()
)

type newGameParams struct {
	Width  int `schema:"width"`
	Height int `schema:"height"`
	Mines  int `schema:"mines"`
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// parseParams reads key=value pairs over the given defaults.
func parseParams(args []string, defaults mines.GameParams) (mines.GameParams, error) {
	values := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return defaults, fmt.Errorf("expected key=value, got %q", arg)
		}
		values.Add(key, value)
	}

	p := newGameParams{
		Width:  defaults.Width,
		Height: defaults.Height,
		Mines:  defaults.MineCount,
	}
	if err := decoder.Decode(&p, values); err != nil {
		return defaults, err
	}

	params := mines.GameParams{Width: p.Width, Height: p.Height, MineCount: p.Mines}
	if err := params.Validate(); err != nil {
		return defaults, err
	}
	return params, nil
}

func splitCommand(line string) (name string, args []string, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return "", nil, errors.New("unknown command")
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return "", nil, errors.New("invalid number of arguments")
	}
	return parts[0], parts[1:], nil
}

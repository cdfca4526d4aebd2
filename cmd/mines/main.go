package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-field/internal/config"
	"github.com/vancomm/minesweeper-field/internal/mines"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func setupLogging(cfg *config.Config) error {
	log.SetLevel(cfg.LogLevel())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Color})
	mines.Log = log

	if cfg.Log.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Level:      cfg.LogLevel(),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	// the terminal belongs to the game once logs have a file
	log.SetOutput(io.Discard)
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Read(configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	r := newREPL(os.Stdout, cfg, log)
	if err := r.newGame(cfg.Game.Params()); err != nil {
		log.Fatal("unable to start a game: ", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	lines := scanLines(gCtx, os.Stdin)
	g.Go(func() error {
		return r.Run(gCtx, lines)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil {
		log.Infof("exit reason: %s", err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/testament/internal/catalog"
	"github.com/alexanderramin/testament/internal/cli"
	"github.com/alexanderramin/testament/internal/config"
	"github.com/alexanderramin/testament/internal/db"
	"github.com/alexanderramin/testament/internal/game"
	"github.com/alexanderramin/testament/internal/logging"
	"github.com/alexanderramin/testament/internal/repository"
	"github.com/alexanderramin/testament/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	log := logging.New(logFile, level)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scoreRepo := repository.NewSQLiteScoreRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	scores := service.NewScoreService(scoreRepo, uow, log, service.NewLogUseCaseObserver(log))

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading book catalog: %w", err)
	}

	frames := cli.NewFrameBuffer()
	controller := game.NewController(cat, scores,
		game.WithDisplay(frames),
		game.WithAmbience(service.NewLogAmbience(log, "theme")),
		game.WithLogger(log),
		game.WithDifficulty(cfg.Difficulty),
		game.WithMusic(cfg.Music),
	)

	app := &cli.App{
		Game:    controller,
		Catalog: cat,
		Frames:  frames,
		Log:     log,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	log.Debug().
		Str("db", cfg.DBPath).
		Str("difficulty", string(cfg.Difficulty)).
		Bool("music", cfg.Music).
		Msg("starting")

	return cli.NewRootCmd(app).Execute()
}

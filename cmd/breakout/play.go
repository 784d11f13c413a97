package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLevel      int
	flagResume     string
	flagSound      bool
	flagVolume     float64
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a Breakout session in this terminal.

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch ball
  W/S, Up/Down     - Choose level (menu)
  Enter            - Start / continue
  P                - Pause
  R                - Abandon run
  Ctrl+S           - Save session
  F2               - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Config values, ball speeds up with score
  hard   - Fewer lives, narrow paddle, faster ball
  fixed  - Config values, no speed-up

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.toml
  breakout play --levels ./levels --level 2
  breakout play --resume
  breakout play --sound --log ./breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of *.lvl files to play instead of the built-in levels")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level selected in the menu (1-based)")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Resume a saved session by ID, or the latest with no value")
	playCmd.Flags().Lookup("resume").NoOptDefVal = "latest"
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureBreakout(); err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Storage is optional: the game runs without score persistence.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		store = nil
	}
	defer closeStore(store)

	opts := tui.Options{Store: store, Logger: logger}

	if flagResume != "" {
		data, resumeErr := loadResume(store, flagResume)
		if resumeErr != nil {
			return resumeErr
		}
		opts.Resume = data
	}

	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if initErr := player.Init(); initErr != nil {
			logger.Warn("sound disabled", "err", initErr)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// configureBreakout checks the config and level flags and hands them to
// the game package. Errors here are user mistakes and stop the command.
func configureBreakout() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadBreakout(flagConfig); err != nil {
			return err
		}
	}

	levels := breakout.BuiltinLevels()
	if flagLevelsDir != "" {
		var err error
		if levels, err = breakout.LoadLevelsDir(flagLevelsDir); err != nil {
			return err
		}
	}
	if flagLevel < 1 || flagLevel > len(levels) {
		return fmt.Errorf("level %d out of range (1-%d)", flagLevel, len(levels))
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetLevelsDir(flagLevelsDir)
	breakout.SetStartLevel(flagLevel - 1)
	return nil
}

// loadResume fetches an encoded session by ID, or the newest for "latest".
func loadResume(store *storage.Store, id string) ([]byte, error) {
	if store == nil {
		return nil, fmt.Errorf("cannot resume without the scores database")
	}

	var (
		save *storage.SaveEntry
		err  error
	)
	if id == "latest" {
		save, err = store.LatestSave(gameID)
	} else {
		save, err = store.LoadSave(id)
	}
	if err != nil {
		return nil, err
	}
	if save == nil {
		return nil, fmt.Errorf("no saved session %q", id)
	}
	return save.Data, nil
}

// openLog returns a file logger for path, or a discarding logger when path
// is empty. Stdout belongs to the TUI.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// tictactoe-local is a terminal tic-tac-toe for two players with a
// navigable move history.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/game"
	"tictactoe-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagConfig   = flag.String("config", "", "Path to a config file (default: XDG config dir)")
	flagLogLevel = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagDesc     = flag.Bool("desc", false, "Show the move list newest first")
	flagFocus    = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tictactoe-local %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe-local: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		return err
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if *flagDesc {
		cfg.MovesAscending = false
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := initLogger(cfg.LogLevel, logOut)
	logger.Info("starting", "version", Version, "config", cfg.Path())

	app := tview.NewApplication()
	app.EnableMouse(true)

	rootPage := tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" # tic-tac-toe ")

	ctrl := game.NewController(logger)
	ctrl.SetAscending(cfg.MovesAscending)

	gameUI := ui.NewGameUI(app, cfg, ctrl, logger)
	gameUI.OnQuit = app.Stop

	themeUI := ui.NewThemeUI(cfg, logger, func() {
		gameUI.SetConfig(cfg)
		rootPage.SwitchToPage("game")
		app.SetFocus(gameUI.Board().Box)
	})
	gameUI.OnTheme = func() {
		themeUI.Reset()
		rootPage.SwitchToPage("theme")
		app.SetFocus(themeUI.List())
	}

	rootPage.AddPage("game", gameUI.Frame(), true, true)
	rootPage.AddPage("theme", themeUI.Flex(), true, false)

	if *flagFocus {
		gameUI.SetFocusMode(true)
	}

	if err := app.SetRoot(rootPage, true).SetFocus(gameUI.Board().Box).Run(); err != nil {
		logger.Error("terminal", "err", err)
		return fmt.Errorf("run terminal ui: %w", err)
	}
	logger.Info("stopped", "moves", ctrl.Len()-1)
	return nil
}

// loadConfig reads an explicit config file, or searches the XDG config dirs.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg, err := config.InitConfig()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNoConfigFile) {
		return nil, fmt.Errorf("load config: %w (use -config with an existing file)", err)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openLogFile opens the log file in the XDG state directory. The terminal
// belongs to the UI, so logs are discarded if the file cannot be opened.
func openLogFile() (io.Writer, func()) {
	path, err := config.LogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe-local: logging disabled: %s\n", err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe-local: logging disabled: %s\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func initLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

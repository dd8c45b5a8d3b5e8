package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "tictactoe-local/config.json"
	logFile = "tictactoe-local/tictactoe.log"
)

// ErrNoConfigFile is returned by Load when an explicit path does not exist.
var ErrNoConfigFile = errors.New("config file not found")

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	Cell        int `json:"cell" env:"TICTACTOE_CELL_COLOR"`
	Grid        int `json:"grid"`
	X           int `json:"x"`
	O           int `json:"o"`
	Highlight   int `json:"highlight" env:"TICTACTOE_HIGHLIGHT"`
	CursorBG    int `json:"cursor_bg"`
	CurrentMove int `json:"current_move"`
}

type ConfigSymbols struct {
	X      string `json:"x"`
	O      string `json:"o"`
	Cursor string `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

type Config struct {
	LogLevel       string `json:"log_level" env:"TICTACTOE_LOG_LEVEL"`
	MovesAscending bool   `json:"moves_ascending"`
	MovesDesc      bool   `json:"-" env:"TICTACTOE_MOVES_DESC"`
	Theme          Theme  `json:"theme"`

	path string
	// stored is the config as read from the file, without environment or
	// flag overrides. Save writes it back.
	stored *Config
}

// InitConfig loads the config file from the XDG config directories, falling
// back to defaults when none exists. Environment variables override both.
func InitConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		path = ""
	}
	return Load(path)
}

// Load reads the config at path. An empty path reads only the environment.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	stored := DefaultConfig
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrNoConfigFile, path)
			}
			return nil, fmt.Errorf("stat config: %w", err)
		}
		if err := readCfgFile(path, &stored); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		config.path = path
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read config env: %w", err)
	}
	if config.MovesDesc {
		config.MovesAscending = false
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.stored = &stored
	return &config, nil
}

// Path returns the file the config was read from, if any.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	for _, s := range []string{c.Theme.Symbols.X, c.Theme.Symbols.O, c.Theme.Symbols.Cursor} {
		r := []rune(s)
		if len(r) != 1 {
			return &InvalidConfig{"symbols must be exactly one character"}
		}
		if r[0] < 32 || (r[0] >= 127 && r[0] <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := c.Theme.Colors
	for _, code := range []int{colors.Cell, colors.Grid, colors.X, colors.O, colors.Highlight, colors.CursorBG, colors.CurrentMove} {
		if code < 0 || code > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256 color palette", code)}
		}
	}
	return nil
}

// SetHighlight changes the winning line color for this session and for the
// next Save.
func (c *Config) SetHighlight(code int) {
	c.Theme.Colors.Highlight = code
	c.file().Theme.Colors.Highlight = code
}

func (c *Config) file() *Config {
	if c.stored == nil {
		stored := DefaultConfig
		c.stored = &stored
	}
	return c.stored
}

// Save writes the stored settings back to the file they were loaded from, or
// to the user's XDG config directory. Environment and flag overrides are
// not saved.
func (c *Config) Save() error {
	absPath := c.path
	if absPath == "" {
		var err error
		absPath, err = xdg.ConfigFile(cfgFile)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}
	if err := saveCfgFile(absPath, c.file(), 0664); err != nil {
		return err
	}
	c.path = absPath
	return nil
}

// LogFile returns the path of the log file in the XDG state directory,
// creating parent directories as needed.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, a)
}

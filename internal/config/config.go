package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"noteboard/internal/notes"
)

// Mode selects one of the board variants
type Mode string

const (
	ModeScore    Mode = "score"    // score only
	ModeClassify Mode = "classify" // score and learner classification
	ModeThread   Mode = "thread"   // classification, duplicate check, capacity
)

// DefaultThreadCapacity is the capacity a thread board starts with
const DefaultThreadCapacity = 3

// Config holds the unified application configuration
type Config struct {
	Mode            Mode
	MaxUnique       int
	CheckDuplicates bool
	LogDir          string
}

// Settings represents the config file structure
type Settings struct {
	Mode            string `yaml:"mode,omitempty"`
	MaxUnique       *int   `yaml:"max_unique,omitempty"`
	CheckDuplicates *bool  `yaml:"check_duplicates,omitempty"`
	LogDir          string `yaml:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags. Nil pointers mean "not set".
type CLIFlags struct {
	Mode            string
	MaxUnique       *int
	CheckDuplicates *bool
	LogDir          string
}

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeScore, ModeClassify, ModeThread:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want score, classify or thread)", s)
}

// Defaults returns the configuration a mode starts from
func Defaults(mode Mode) *Config {
	cfg := &Config{Mode: mode}
	if mode == ModeThread {
		cfg.MaxUnique = DefaultThreadCapacity
		cfg.CheckDuplicates = true
	}
	return cfg
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	var file *Settings
	if configPath, err := getConfigPath(); err == nil {
		if s, err := loadConfigFile(configPath); err == nil {
			file = s
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}
	return resolve(flags, file)
}

func resolve(flags CLIFlags, file *Settings) (*Config, error) {
	if file == nil {
		file = &Settings{}
	}

	// The mode is resolved first since it supplies defaults for the rest
	modeName := string(ModeThread)
	if file.Mode != "" {
		modeName = file.Mode
	}
	if env := os.Getenv("NOTEBOARD_MODE"); env != "" {
		modeName = env
	}
	if flags.Mode != "" {
		modeName = flags.Mode
	}
	mode, err := ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	cfg := Defaults(mode)

	// Priority 3: config file
	if file.MaxUnique != nil {
		cfg.MaxUnique = *file.MaxUnique
	}
	if file.CheckDuplicates != nil {
		cfg.CheckDuplicates = *file.CheckDuplicates
	}
	if file.LogDir != "" {
		cfg.LogDir = expandPath(file.LogDir)
	}

	// Priority 2: environment variables
	if env := os.Getenv("NOTEBOARD_MAX_UNIQUE"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			return nil, fmt.Errorf("NOTEBOARD_MAX_UNIQUE: %w", err)
		}
		cfg.MaxUnique = n
	}
	if env := os.Getenv("NOTEBOARD_DUPLICATES"); env != "" {
		b, err := strconv.ParseBool(env)
		if err != nil {
			return nil, fmt.Errorf("NOTEBOARD_DUPLICATES: %w", err)
		}
		cfg.CheckDuplicates = b
	}
	if env := os.Getenv("NOTEBOARD_LOG_DIR"); env != "" {
		cfg.LogDir = expandPath(env)
	}

	// Priority 1: CLI flags override everything
	if flags.MaxUnique != nil {
		cfg.MaxUnique = *flags.MaxUnique
	}
	if flags.CheckDuplicates != nil {
		cfg.CheckDuplicates = *flags.CheckDuplicates
	}
	if flags.LogDir != "" {
		cfg.LogDir = expandPath(flags.LogDir)
	}

	if cfg.MaxUnique < 0 {
		return nil, fmt.Errorf("max unique must not be negative, got %d", cfg.MaxUnique)
	}

	return cfg, nil
}

// BoardOptions translates the configuration into notes.Board options
func (c *Config) BoardOptions() []notes.Option {
	var opts []notes.Option
	if c.MaxUnique > 0 {
		opts = append(opts, notes.WithMaxUnique(c.MaxUnique))
	}
	if c.CheckDuplicates {
		opts = append(opts, notes.WithDuplicateCheck())
	}
	return opts
}

// NewBoard creates an empty board configured for this mode
func (c *Config) NewBoard() *notes.Board {
	return notes.NewBoard(c.BoardOptions()...)
}

// ShowsClassification reports whether the learner badge is displayed
func (c *Config) ShowsClassification() bool {
	return c.Mode != ModeScore
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "noteboard", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return writeDefaultSettings(configPath)
}

func writeDefaultSettings(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	capacity := DefaultThreadCapacity
	duplicates := true
	settings := Settings{
		Mode:            string(ModeThread),
		MaxUnique:       &capacity,
		CheckDuplicates: &duplicates,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

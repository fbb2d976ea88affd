package replay

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"noteboard/internal/config"
)

// Script is a sequence of board actions read from YAML
type Script struct {
	Mode            string `yaml:"mode,omitempty"`
	MaxUnique       *int   `yaml:"max_unique,omitempty"`
	CheckDuplicates *bool  `yaml:"check_duplicates,omitempty"`
	Steps           []Step `yaml:"steps"`
}

// Step holds exactly one action
type Step struct {
	Add    *string `yaml:"add,omitempty"`
	Remove *string `yaml:"remove,omitempty"` // matched against note text, ignoring case and surrounding space
	Clear  bool    `yaml:"clear,omitempty"`
}

// Action names the step's action
func (s Step) Action() string {
	switch {
	case s.Add != nil:
		return "add"
	case s.Remove != nil:
		return "remove"
	case s.Clear:
		return "clear"
	}
	return ""
}

func (s Step) validate() error {
	n := 0
	if s.Add != nil {
		n++
	}
	if s.Remove != nil {
		n++
	}
	if s.Clear {
		n++
	}
	if n != 1 {
		return fmt.Errorf("step must have exactly one of add, remove or clear, got %d", n)
	}
	return nil
}

// Parse decodes and validates a script
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty script")
		}
		return nil, fmt.Errorf("parsing script: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	if s.Mode != "" {
		if _, err := config.ParseMode(s.Mode); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Load reads a script file
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Config layers the script's settings over base
func (s *Script) Config(base *config.Config) *config.Config {
	var cfg config.Config
	if base != nil {
		cfg = *base
	} else {
		cfg = *config.Defaults(config.ModeThread)
	}

	if s.Mode != "" {
		// validated by Parse
		mode, _ := config.ParseMode(s.Mode)
		defaults := config.Defaults(mode)
		cfg.Mode = defaults.Mode
		cfg.MaxUnique = defaults.MaxUnique
		cfg.CheckDuplicates = defaults.CheckDuplicates
	}
	if s.MaxUnique != nil {
		cfg.MaxUnique = *s.MaxUnique
	}
	if s.CheckDuplicates != nil {
		cfg.CheckDuplicates = *s.CheckDuplicates
	}
	return &cfg
}

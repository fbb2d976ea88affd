package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"noteboard/internal/config"
	"noteboard/internal/logs"
	"noteboard/internal/tui"
)

// Version is set at build time
var Version = "dev"

type rootOptions struct {
	mode       string
	maxUnique  int
	duplicates bool
	logDir     string
	verbose    bool
}

// NewRootCommand builds the noteboard command tree. Without a subcommand it
// launches the interactive TUI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "noteboard",
		Short: "Take notes, earn points, see what kind of learner you are",
		Long: `noteboard is a terminal note-taking scorer. Every note is worth 2 points,
your note count decides your learner classification, and thread mode
rejects duplicate notes and caps the board at a fixed number of notes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.mode, "mode", "m", "", "Board mode: score, classify or thread")
	flags.IntVar(&opts.maxUnique, "max-unique", 0, "Maximum number of notes on the board (0 = unbounded)")
	flags.BoolVar(&opts.duplicates, "duplicates", false, "Reject notes that repeat an existing note")
	flags.StringVar(&opts.logDir, "log-dir", "", "Directory for debug.log")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newReplayCommand(opts), newVersionCommand())
	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

// loadConfig resolves configuration, letting only explicitly set flags
// override env vars and the config file.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	flags := config.CLIFlags{
		Mode:   opts.mode,
		LogDir: opts.logDir,
	}
	if cmd.Flags().Changed("max-unique") {
		flags.MaxUnique = &opts.maxUnique
	}
	if cmd.Flags().Changed("duplicates") {
		flags.CheckDuplicates = &opts.duplicates
	}
	return config.Load(flags)
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.EnsureConfigFile(); err != nil {
		slog.Warn("could not create config file", "error", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	logs.Logger.Printf("Starting TUI: mode=%s max_unique=%d duplicates=%v", cfg.Mode, cfg.MaxUnique, cfg.CheckDuplicates)

	p := tea.NewProgram(tui.NewAppModel(cfg, cfg.NewBoard()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of noteboard",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "noteboard version %s\n", Version)
		},
	}
}

package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"noteboard/internal/replay"
)

func newReplayCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a scripted note session and print the board after each step",
		Long: `Replay reads a YAML script of add, remove and clear steps, applies them to
a fresh board, and prints the score, classification and status message after
every step. Mode and capacity settings in the script override the flags.

Example script:

  mode: thread
  steps:
    - add: "Hello world"
    - add: "  hello world  "   # rejected as a duplicate
    - remove: "hello world"
    - clear: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			script, err := replay.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load script: %w", err)
			}
			slog.Debug("replaying script", "path", args[0], "steps", len(script.Steps))

			res, err := replay.Run(script, cfg, cmd.OutOrStdout(), time.Now)
			if err != nil {
				return err
			}

			rejected := 0
			for _, o := range res.Outcomes {
				if o.Err != nil {
					rejected++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d step(s), %d rejected. Final: %d note(s), score %d\n",
				len(res.Outcomes), rejected, res.Board.Len(), res.Board.Score())
			return nil
		},
	}
}

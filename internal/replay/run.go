package replay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/m-mizutani/goerr/v2"
	"noteboard/internal/config"
	"noteboard/internal/notes"
)

// Outcome records what happened to one step
type Outcome struct {
	Step   int
	Action string
	Text   string
	Err    error // nil on success; one of the notes.Err* sentinels otherwise
}

// Result is the final state of a replay
type Result struct {
	Config   *config.Config
	Board    *notes.Board
	Outcomes []Outcome
}

// Run executes every step of s against a fresh board and writes a table of
// the board state after each step to out. Rejected steps are recorded as
// outcomes, not returned as errors.
func Run(s *Script, base *config.Config, out io.Writer, now func() time.Time) (*Result, error) {
	cfg := s.Config(base)
	if cfg.MaxUnique < 0 {
		return nil, fmt.Errorf("max unique must not be negative, got %d", cfg.MaxUnique)
	}
	if now == nil {
		now = time.Now
	}

	board := cfg.NewBoard()
	res := &Result{Config: cfg, Board: board}

	headers := []string{"#", "action", "text", "outcome", "count", "score"}
	if cfg.ShowsClassification() {
		headers = append(headers, "class")
	}
	headers = append(headers, "status")

	var rows [][]string
	for i, step := range s.Steps {
		outcome := apply(board, step, now())
		outcome.Step = i + 1
		res.Outcomes = append(res.Outcomes, outcome)

		slog.Debug("replay step",
			"step", outcome.Step,
			"action", outcome.Action,
			"outcome", describe(outcome.Err),
			"count", board.Len(),
		)

		row := []string{
			strconv.Itoa(outcome.Step),
			outcome.Action,
			outcome.Text,
			describe(outcome.Err),
			strconv.Itoa(board.Len()),
			strconv.Itoa(board.Score()),
		}
		if cfg.ShowsClassification() {
			row = append(row, board.Classification().String())
		}
		row = append(row, board.StatusMessage().Text)
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if _, err := fmt.Fprintln(out, t.String()); err != nil {
		return nil, err
	}
	return res, nil
}

func apply(board *notes.Board, step Step, now time.Time) Outcome {
	switch {
	case step.Add != nil:
		_, err := board.AddNote(*step.Add, now)
		return Outcome{Action: "add", Text: *step.Add, Err: err}

	case step.Remove != nil:
		for _, n := range board.Notes() {
			if n.SameText(*step.Remove) {
				return Outcome{Action: "remove", Text: *step.Remove, Err: board.RemoveNote(n.ID)}
			}
		}
		err := goerr.Wrap(notes.ErrNotFound, "no note matches", goerr.V("text", *step.Remove))
		return Outcome{Action: "remove", Text: *step.Remove, Err: err}

	default:
		board.ClearAll()
		return Outcome{Action: "clear"}
	}
}

func describe(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, notes.ErrEmptyText):
		return "empty text"
	case errors.Is(err, notes.ErrDuplicateText):
		return "duplicate"
	case errors.Is(err, notes.ErrCapacityExceeded):
		return "capacity exceeded"
	case errors.Is(err, notes.ErrNotFound):
		return "not found"
	}
	return err.Error()
}

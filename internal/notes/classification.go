package notes

import "fmt"

// Classification is the learner label derived from a note count
type Classification int

const (
	NeedsEncouragement Classification = iota
	PassiveLearner
	ActiveLearner
)

// Classify maps a note count to a Classification.
// 0 -> NeedsEncouragement, 1-2 -> PassiveLearner, 3+ -> ActiveLearner.
func Classify(count int) Classification {
	switch {
	case count >= 3:
		return ActiveLearner
	case count >= 1:
		return PassiveLearner
	default:
		return NeedsEncouragement
	}
}

func (c Classification) String() string {
	switch c {
	case ActiveLearner:
		return "Active Learner"
	case PassiveLearner:
		return "Passive Learner"
	default:
		return "Needs Encouragement"
	}
}

// Severity grades a status message
type Severity int

const (
	SeverityOK Severity = iota
	SeverityCaution
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityCaution:
		return "caution"
	case SeverityWarning:
		return "warning"
	default:
		return "ok"
	}
}

// Message is an advisory status line for the presentation layer
type Message struct {
	Text     string
	Severity Severity
}

// StatusFor returns the count-based status message
func StatusFor(count int) Message {
	switch {
	case count <= 0:
		return Message{Text: "Reminder: Please add notes!", Severity: SeverityWarning}
	case count == 1:
		return Message{Text: "At least 2 notes are required.", Severity: SeverityCaution}
	default:
		return Message{Text: "Good, keep it up!", Severity: SeverityOK}
	}
}

// FullMessage is shown once a board reaches its capacity
func FullMessage(maxUnique int) string {
	return fmt.Sprintf("Board full: you can add up to %d unique notes only.", maxUnique)
}

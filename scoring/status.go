package scoring

import "fmt"

// Status is a match's lifecycle state. Only StatusCompleted carries an
// authoritative result; every other state means predictions are unscored.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusPostponed  Status = "postponed"
)

// ParseStatus validates a status string. Empty input defaults to
// StatusCompleted, matching how score updates are normally submitted
// without an explicit status.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusCompleted, nil
	}
	switch st := Status(s); st {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusPostponed:
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// Action is what a status transition means for the match's predictions.
type Action int

const (
	// ActionNone leaves every prediction untouched.
	ActionNone Action = iota
	// ActionRescore recomputes points from the recorded result.
	ActionRescore
	// ActionUnscore resets points to zero; the old result is no longer
	// authoritative.
	ActionUnscore
)

// Transition maps a (previous, new) status pair to the action taken on the
// match's predictions. Leaving completed always unscores; arriving at
// completed always rescores, including a completed -> completed re-save
// with corrected scores. Transitions between non-completed states touch
// nothing.
func Transition(prev, next Status) Action {
	switch {
	case prev == StatusCompleted && next != StatusCompleted:
		return ActionUnscore
	case next == StatusCompleted:
		return ActionRescore
	}
	return ActionNone
}

// Package scoring computes prediction points for finished matches and
// plans the per-prediction updates that follow a match status change.
package scoring

import "fmt"

// Base point values, before the match multiplier is applied.
const (
	PointsExact      = 3
	PointsDifference = 2
	PointsWinner     = 1
	PointsNone       = 0
)

// BasePoints returns the unscaled point value for a prediction against the
// actual result. Rules, first match wins:
//
//	exact scoreline                     -> 3
//	correct winner and goal difference  -> 2
//	correct winner only                 -> 1
//	anything else                       -> 0
//
// A predicted draw against an actual draw of a different scoreline lands on
// the goal-difference rule (0 == 0), never on correct-winner-only.
func BasePoints(predHome, predAway, actualHome, actualAway int) int {
	if predHome == actualHome && predAway == actualAway {
		return PointsExact
	}

	predDiff := predHome - predAway
	actualDiff := actualHome - actualAway

	if predDiff == actualDiff {
		return PointsDifference
	}
	if sign(predDiff) == sign(actualDiff) {
		return PointsWinner
	}
	return PointsNone
}

// CalculatePoints returns the final points for a prediction: base points
// scaled by the match multiplier. The multiplier's 1..3 range is enforced
// by callers, not here.
func CalculatePoints(predHome, predAway, actualHome, actualAway, multiplier int) int {
	return BasePoints(predHome, predAway, actualHome, actualAway) * multiplier
}

// Describe maps a prediction outcome to a display string, annotated with
// the multiplier when it is greater than one.
func Describe(predHome, predAway, actualHome, actualAway, multiplier int) string {
	var desc string
	switch BasePoints(predHome, predAway, actualHome, actualAway) {
	case PointsExact:
		desc = "Exact score!"
	case PointsDifference:
		desc = "Correct winner + goal difference"
	case PointsWinner:
		desc = "Correct winner"
	default:
		desc = "No points"
	}

	if multiplier > 1 {
		desc = fmt.Sprintf("%s (×%d)", desc, multiplier)
	}
	return desc
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

package scoring

import "github.com/cianmurphy/kickpredict/models"

// Result is the snapshot of a match's recorded outcome used for one
// rescoring pass. The whole batch is scored against this single snapshot.
type Result struct {
	HomeScore  int
	AwayScore  int
	Multiplier int
}

// Update is one pending points write for a single prediction.
type Update struct {
	PredictionID int
	Points       int
}

// Plan computes the points writes implied by a match moving from prev to
// next status. It returns nil when the transition calls for no prediction
// updates. Plan is pure: running it twice with the same inputs yields the
// same updates, so applying them is idempotent.
func Plan(prev, next Status, res Result, preds []models.Prediction) []Update {
	action := Transition(prev, next)
	if action == ActionNone || len(preds) == 0 {
		return nil
	}

	updates := make([]Update, len(preds))
	for i, p := range preds {
		u := Update{PredictionID: p.PredictionID}
		if action == ActionRescore {
			u.Points = CalculatePoints(p.HomeScore, p.AwayScore, res.HomeScore, res.AwayScore, res.Multiplier)
		}
		updates[i] = u
	}
	return updates
}

package scoring

import (
	"reflect"
	"testing"

	"github.com/cianmurphy/kickpredict/models"
)

func pred(id, home, away int) models.Prediction {
	return models.Prediction{PredictionID: id, HomeScore: home, AwayScore: away}
}

func TestPlanRescoreOnCompletion(t *testing.T) {
	// Match finishes 2-1 with a x2 multiplier.
	res := Result{HomeScore: 2, AwayScore: 1, Multiplier: 2}
	preds := []models.Prediction{
		pred(1, 2, 1), // exact
		pred(2, 3, 0), // correct winner, wrong difference
		pred(3, 1, 1), // predicted draw, home won
	}

	got := Plan(StatusScheduled, StatusCompleted, res, preds)
	want := []Update{
		{PredictionID: 1, Points: 6},
		{PredictionID: 2, Points: 2},
		{PredictionID: 3, Points: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan = %+v, want %+v", got, want)
	}
}

func TestPlanUnscoreResetsToZero(t *testing.T) {
	res := Result{HomeScore: 2, AwayScore: 1, Multiplier: 3}
	preds := []models.Prediction{pred(1, 2, 1), pred(2, 0, 0)}

	for _, next := range []Status{StatusScheduled, StatusInProgress, StatusCancelled, StatusPostponed} {
		got := Plan(StatusCompleted, next, res, preds)
		want := []Update{{PredictionID: 1}, {PredictionID: 2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("completed -> %s: Plan = %+v, want %+v", next, got, want)
		}
	}
}

func TestPlanNoOpBetweenNonCompletedStatuses(t *testing.T) {
	res := Result{HomeScore: 1, AwayScore: 0, Multiplier: 1}
	preds := []models.Prediction{pred(1, 1, 0)}

	pairs := [][2]Status{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusPostponed},
		{StatusInProgress, StatusCancelled},
		{StatusPostponed, StatusScheduled},
	}
	for _, p := range pairs {
		if got := Plan(p[0], p[1], res, preds); got != nil {
			t.Errorf("%s -> %s: expected no updates, got %+v", p[0], p[1], got)
		}
	}
}

func TestPlanEmptyPredictionSet(t *testing.T) {
	res := Result{HomeScore: 2, AwayScore: 0, Multiplier: 2}
	if got := Plan(StatusScheduled, StatusCompleted, res, nil); got != nil {
		t.Errorf("expected no updates for empty set, got %+v", got)
	}
}

func TestPlanIdempotent(t *testing.T) {
	res := Result{HomeScore: 3, AwayScore: 1, Multiplier: 2}
	preds := []models.Prediction{pred(1, 3, 1), pred(2, 2, 0), pred(3, 0, 2)}

	first := Plan(StatusInProgress, StatusCompleted, res, preds)
	second := Plan(StatusInProgress, StatusCompleted, res, preds)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Plan diverged: %+v vs %+v", first, second)
	}
}

func TestPlanResultCorrection(t *testing.T) {
	// A completed -> completed re-save recomputes from the revised score.
	preds := []models.Prediction{pred(1, 2, 1)}

	initial := Plan(StatusScheduled, StatusCompleted, Result{HomeScore: 2, AwayScore: 1, Multiplier: 1}, preds)
	if initial[0].Points != 3 {
		t.Fatalf("initial scoring: got %d, want 3", initial[0].Points)
	}

	corrected := Plan(StatusCompleted, StatusCompleted, Result{HomeScore: 0, AwayScore: 1, Multiplier: 1}, preds)
	if corrected[0].Points != 0 {
		t.Errorf("corrected scoring: got %d, want 0", corrected[0].Points)
	}
}

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cianmurphy/kickpredict/models"
	"github.com/cianmurphy/kickpredict/scoring"
)

// scoreRequest is the score-update payload. Status is optional and
// defaults to completed; scores are pointers so a missing field is
// distinguishable from 0-0.
type scoreRequest struct {
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Status    string `json:"status,omitempty"`
}

// validateScoreRequest resolves the request's target status and checks the
// score fields against it. Scores are required, and must be non-negative,
// whenever the match is moving to completed.
func validateScoreRequest(req scoreRequest) (scoring.Status, error) {
	next, err := scoring.ParseStatus(req.Status)
	if err != nil {
		return "", err
	}

	if next == scoring.StatusCompleted {
		if req.HomeScore == nil || req.AwayScore == nil {
			return "", errors.New("home_score and away_score are required")
		}
	}
	if req.HomeScore != nil && *req.HomeScore < 0 {
		return "", errors.New("home_score must be non-negative")
	}
	if req.AwayScore != nil && *req.AwayScore < 0 {
		return "", errors.New("away_score must be non-negative")
	}

	return next, nil
}

// UpdateMatchScore records a match result and rescores every prediction on
// the match. Wired to both the admin score route and the result-correction
// route, which share these semantics.
//
// The match row is written first, then one points write per prediction. A
// failure partway leaves already-written predictions in their new state;
// re-submitting the update recomputes everything and converges.
func (h *Handler) UpdateMatchScore(c echo.Context) error {
	matchID := c.Param("id")

	var req scoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next, err := validateScoreRequest(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	match := &models.Match{}
	err = h.db.NewSelect().Model(match).
		Column("m.match_id", "m.tournament_id", "m.multiplier", "m.status").
		Where("m.match_id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "match not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	prev, err := scoring.ParseStatus(match.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("stored match status: %v", err))
	}

	upd := h.db.NewUpdate().Model((*models.Match)(nil)).
		Set("status = ?", string(next)).
		Set("updated_at = ?", time.Now()).
		Where("match_id = ?", match.MatchID)
	if req.HomeScore != nil {
		upd = upd.Set("home_score = ?", *req.HomeScore)
	}
	if req.AwayScore != nil {
		upd = upd.Set("away_score = ?", *req.AwayScore)
	}
	if _, err := upd.Exec(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var preds []models.Prediction
	err = h.db.NewSelect().Model(&preds).
		Column("p.prediction_id", "p.home_score", "p.away_score").
		Where("p.match_id = ?", match.MatchID).
		Scan(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := scoring.Result{Multiplier: match.Multiplier}
	if req.HomeScore != nil {
		result.HomeScore = *req.HomeScore
	}
	if req.AwayScore != nil {
		result.AwayScore = *req.AwayScore
	}

	updates := scoring.Plan(prev, next, result, preds)
	for _, u := range updates {
		_, err := h.db.NewUpdate().Model((*models.Prediction)(nil)).
			Set("points_earned = ?", u.Points).
			Set("updated_at = ?", time.Now()).
			Where("prediction_id = ?", u.PredictionID).
			Exec(ctx)
		if err != nil {
			// No rollback of already-written predictions; a retry of the
			// same update converges.
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	zap.L().Info("match scored",
		zap.Int("match_id", match.MatchID),
		zap.String("status", string(next)),
		zap.Int("predictions_updated", len(updates)),
	)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"matchID":            match.MatchID,
		"status":             string(next),
		"predictionsUpdated": len(updates),
	})
}

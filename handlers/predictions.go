package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cianmurphy/kickpredict/models"
	"github.com/cianmurphy/kickpredict/scoring"
)

type predictionRequest struct {
	MatchID   int  `json:"matchID"`
	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`
}

// SavePrediction creates or replaces the caller's prediction for a match.
// Predictions close once the match leaves scheduled or kickoff passes.
func (h *Handler) SavePrediction(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req predictionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.MatchID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "matchID is required")
	}
	if req.HomeScore == nil || req.AwayScore == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "homeScore and awayScore are required")
	}
	if *req.HomeScore < 0 || *req.AwayScore < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "scores must be non-negative")
	}

	ctx := c.Request().Context()

	match := &models.Match{}
	err := h.db.NewSelect().Model(match).
		Column("m.match_id", "m.status", "m.kickoff").
		Where("m.match_id = ?", req.MatchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "match not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if match.Status != string(scoring.StatusScheduled) || time.Now().After(match.Kickoff) {
		return echo.NewHTTPError(http.StatusConflict, "predictions are closed for this match")
	}

	pred := &models.Prediction{
		UserID:    userID,
		MatchID:   req.MatchID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
		UpdatedAt: time.Now(),
	}

	_, err = h.db.NewInsert().Model(pred).
		On("CONFLICT (user_id, match_id) DO UPDATE SET home_score = EXCLUDED.home_score, away_score = EXCLUDED.away_score, updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"matchID":   req.MatchID,
		"homeScore": *req.HomeScore,
		"awayScore": *req.AwayScore,
	})
}

type predictionRow struct {
	PredictionID int    `bun:"prediction_id" json:"predictionID"`
	Username     string `bun:"username" json:"username"`
	DisplayName  string `bun:"display_name" json:"displayName"`
	HomeScore    int    `bun:"home_score" json:"homeScore"`
	AwayScore    int    `bun:"away_score" json:"awayScore"`
	PointsEarned int    `bun:"points_earned" json:"pointsEarned"`
}

// MatchPredictions returns all predictions for a match with usernames.
// Hidden from non-admins until kickoff so players cannot copy each other.
func (h *Handler) MatchPredictions(c echo.Context) error {
	matchID := c.Param("id")
	ctx := c.Request().Context()

	match := &models.Match{}
	err := h.db.NewSelect().Model(match).
		Column("m.match_id", "m.kickoff").
		Where("m.match_id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "match not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	username, _ := c.Get("username").(string)
	if time.Now().Before(match.Kickoff) && !h.cfg.IsAdmin(username) {
		return echo.NewHTTPError(http.StatusForbidden, "predictions are hidden until kickoff")
	}

	var rows []predictionRow
	err = h.db.NewRaw(`
		SELECT p.prediction_id, u.username, u.display_name,
		       p.home_score, p.away_score, p.points_earned
		FROM predictions p
		INNER JOIN users u ON u.id = p.user_id
		WHERE p.match_id = ?
		ORDER BY p.points_earned DESC, u.username`,
		matchID,
	).Scan(ctx, &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

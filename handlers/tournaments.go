package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cianmurphy/kickpredict/models"
)

type tournamentData struct {
	TournamentID int    `json:"tournamentID"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Archived     bool   `json:"archived"`
}

type createTournamentRequest struct {
	Name   string `json:"name"`
	Season string `json:"season"`
}

// Tournaments returns all tournaments. Pass ?all=true to include archived ones.
func (h *Handler) Tournaments(c echo.Context) error {
	var tournaments []models.Tournament
	q := h.db.NewSelect().
		Model(&tournaments).
		OrderExpr("tn.tournament_id DESC")

	if c.QueryParam("all") != "true" {
		q = q.Where("NOT tn.archived")
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]tournamentData, len(tournaments))
	for i, t := range tournaments {
		result[i] = tournamentData{
			TournamentID: t.TournamentID,
			Name:         t.Name,
			Season:       t.Season,
			Archived:     t.Archived,
		}
	}

	return c.JSON(http.StatusOK, result)
}

// CreateTournament inserts a new tournament.
func (h *Handler) CreateTournament(c echo.Context) error {
	var req createTournamentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Season = strings.TrimSpace(req.Season)

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Season == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "season is required")
	}

	tournament := &models.Tournament{Name: req.Name, Season: req.Season}
	if _, err := h.db.NewInsert().Model(tournament).Exec(c.Request().Context()); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return echo.NewHTTPError(http.StatusConflict, "tournament already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, tournamentData{
		TournamentID: tournament.TournamentID,
		Name:         tournament.Name,
		Season:       tournament.Season,
	})
}

type rankingRow struct {
	UserID          int    `bun:"user_id" json:"userID"`
	Username        string `bun:"username" json:"username"`
	DisplayName     string `bun:"display_name" json:"displayName"`
	TotalPoints     int    `bun:"total_points" json:"totalPoints"`
	PredictionsMade int    `bun:"predictions_made" json:"predictionsMade"`
	Rank            int    `bun:"rank" json:"rank"`
}

// Rankings returns the tournament's ranking table, derived on read from
// each prediction's points_earned.
func (h *Handler) Rankings(c echo.Context) error {
	tournamentID := c.Param("id")

	var rows []rankingRow
	err := h.db.NewRaw(`
		SELECT user_id, username, display_name, total_points, predictions_made, rank
		FROM tournament_rankings
		WHERE tournament_id = ?
		ORDER BY rank, username`,
		tournamentID,
	).Scan(c.Request().Context(), &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cianmurphy/kickpredict/models"
	"github.com/cianmurphy/kickpredict/scoring"
)

type createMatchRequest struct {
	TournamentID int    `json:"tournamentID"`
	HomeTeamID   int    `json:"homeTeamID"`
	AwayTeamID   int    `json:"awayTeamID"`
	Kickoff      string `json:"kickoff"`
	Multiplier   int    `json:"multiplier"`
}

// matchRow is a flat scan target for the match list join query.
type matchRow struct {
	MatchID      int       `bun:"match_id" json:"matchID"`
	TournamentID int       `bun:"tournament_id" json:"tournamentID"`
	Kickoff      time.Time `bun:"kickoff" json:"kickoff"`
	Multiplier   int       `bun:"multiplier" json:"multiplier"`
	Status       string    `bun:"status" json:"status"`
	HomeScore    *int      `bun:"home_score" json:"homeScore,omitempty"`
	AwayScore    *int      `bun:"away_score" json:"awayScore,omitempty"`
	HomeTeam     string    `bun:"home_team" json:"homeTeam"`
	HomeCode     string    `bun:"home_code" json:"homeCode"`
	AwayTeam     string    `bun:"away_team" json:"awayTeam"`
	AwayCode     string    `bun:"away_code" json:"awayCode"`
}

// TournamentMatches returns a tournament's matches with team names,
// ordered by kickoff.
func (h *Handler) TournamentMatches(c echo.Context) error {
	tournamentID := c.Param("id")

	var rows []matchRow
	err := h.db.NewRaw(`
		SELECT m.match_id, m.tournament_id, m.kickoff, m.multiplier, m.status,
		       m.home_score, m.away_score,
		       ht.name AS home_team, ht.short_code AS home_code,
		       aw.name AS away_team, aw.short_code AS away_code
		FROM matches m
		INNER JOIN teams ht ON ht.team_id = m.home_team_id
		INNER JOIN teams aw ON aw.team_id = m.away_team_id
		WHERE m.tournament_id = ?
		ORDER BY m.kickoff, m.match_id`,
		tournamentID,
	).Scan(c.Request().Context(), &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

// CreateMatch inserts a new scheduled match.
func (h *Handler) CreateMatch(c echo.Context) error {
	var req createMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.TournamentID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "tournamentID is required")
	}
	if req.HomeTeamID == 0 || req.AwayTeamID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "homeTeamID and awayTeamID are required")
	}
	if req.HomeTeamID == req.AwayTeamID {
		return echo.NewHTTPError(http.StatusBadRequest, "a team cannot play itself")
	}

	if req.Multiplier == 0 {
		req.Multiplier = 1
	}
	if req.Multiplier < 1 || req.Multiplier > 3 {
		return echo.NewHTTPError(http.StatusBadRequest, "multiplier must be between 1 and 3")
	}

	kickoff, err := time.Parse(time.RFC3339, req.Kickoff)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "kickoff must be RFC3339")
	}

	match := &models.Match{
		TournamentID: req.TournamentID,
		HomeTeamID:   req.HomeTeamID,
		AwayTeamID:   req.AwayTeamID,
		Kickoff:      kickoff,
		Multiplier:   req.Multiplier,
		Status:       string(scoring.StatusScheduled),
		UpdatedAt:    time.Now(),
	}

	if _, err := h.db.NewInsert().Model(match).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, match)
}

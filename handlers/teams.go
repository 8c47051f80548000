package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cianmurphy/kickpredict/models"
)

type teamData struct {
	TeamID    int    `json:"teamID"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
}

type createTeamRequest struct {
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
}

// Teams returns all teams ordered by name.
func (h *Handler) Teams(c echo.Context) error {
	var teams []models.Team
	err := h.db.NewSelect().
		Model(&teams).
		OrderExpr("t.name ASC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]teamData, len(teams))
	for i, t := range teams {
		result[i] = teamData{TeamID: t.TeamID, Name: t.Name, ShortCode: t.ShortCode}
	}

	return c.JSON(http.StatusOK, result)
}

// CreateTeam inserts a new team.
func (h *Handler) CreateTeam(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	req.ShortCode = strings.ToUpper(strings.TrimSpace(req.ShortCode))

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.ShortCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "shortCode is required")
	}

	team := &models.Team{Name: req.Name, ShortCode: req.ShortCode}
	if _, err := h.db.NewInsert().Model(team).Exec(c.Request().Context()); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return echo.NewHTTPError(http.StatusConflict, "team already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, teamData{
		TeamID:    team.TeamID,
		Name:      team.Name,
		ShortCode: team.ShortCode,
	})
}

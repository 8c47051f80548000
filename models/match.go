package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Match is a fixture between two teams within a tournament.
//
// HomeScore/AwayScore stay NULL until a result is recorded. Multiplier
// weights high-importance matches and is constrained to 1..3 at the
// request layer and by a table check constraint.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	MatchID      int       `bun:"match_id,pk,autoincrement" json:"matchID"`
	TournamentID int       `bun:"tournament_id,notnull" json:"tournamentID"`
	HomeTeamID   int       `bun:"home_team_id,notnull" json:"homeTeamID"`
	AwayTeamID   int       `bun:"away_team_id,notnull" json:"awayTeamID"`
	Kickoff      time.Time `bun:"kickoff,notnull" json:"kickoff"`
	Multiplier   int       `bun:"multiplier,notnull,default:1" json:"multiplier"`
	Status       string    `bun:"status,notnull,default:'scheduled'" json:"status"`
	HomeScore    *int      `bun:"home_score" json:"homeScore,omitempty"`
	AwayScore    *int      `bun:"away_score" json:"awayScore,omitempty"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`

	Tournament *Tournament `bun:"rel:belongs-to,join:tournament_id=tournament_id" json:"-"`
	HomeTeam   *Team       `bun:"rel:belongs-to,join:home_team_id=team_id" json:"-"`
	AwayTeam   *Team       `bun:"rel:belongs-to,join:away_team_id=team_id" json:"-"`
}

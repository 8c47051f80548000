package models

import "github.com/uptrace/bun"

// Team represents a competing team.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	TeamID    int    `bun:"team_id,pk,autoincrement" json:"teamID"`
	Name      string `bun:"name,notnull,unique" json:"name"`
	ShortCode string `bun:"short_code,notnull" json:"shortCode"`
}

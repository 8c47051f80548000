package models

import "github.com/uptrace/bun"

// Tournament groups matches into one prediction competition.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:tn"`

	TournamentID int    `bun:"tournament_id,pk,autoincrement" json:"tournamentID"`
	Name         string `bun:"name,notnull,unique" json:"name"`
	Season       string `bun:"season,notnull" json:"season"`
	Archived     bool   `bun:"archived,notnull,default:false" json:"archived"`
}

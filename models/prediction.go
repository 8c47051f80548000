package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Prediction is one user's forecasted score for one match. A user has at
// most one prediction per match (predictions_no_dupes constraint).
//
// PointsEarned is owned by the rescoring flow: it holds the scored value
// while the match is completed and 0 otherwise.
type Prediction struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	PredictionID int       `bun:"prediction_id,pk,autoincrement" json:"predictionID"`
	UserID       int       `bun:"user_id,notnull" json:"userID"`
	MatchID      int       `bun:"match_id,notnull" json:"matchID"`
	HomeScore    int       `bun:"home_score,notnull" json:"homeScore"`
	AwayScore    int       `bun:"away_score,notnull" json:"awayScore"`
	PointsEarned int       `bun:"points_earned,notnull,default:0" json:"pointsEarned"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`

	User  *User  `bun:"rel:belongs-to,join:user_id=id" json:"-"`
	Match *Match `bun:"rel:belongs-to,join:match_id=match_id" json:"-"`
}

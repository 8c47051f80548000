package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/cianmurphy/kickpredict/config"
	"github.com/cianmurphy/kickpredict/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order, the uniqueness and
// range constraints the models rely on, and the rankings view.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Team)(nil),
		(*models.Tournament)(nil),
		(*models.Match)(nil),
		(*models.Prediction)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	constraints := []string{
		// One prediction per user per match.
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'predictions_no_dupes') THEN ALTER TABLE predictions ADD CONSTRAINT predictions_no_dupes UNIQUE (user_id, match_id); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'matches_multiplier_range') THEN ALTER TABLE matches ADD CONSTRAINT matches_multiplier_range CHECK (multiplier BETWEEN 1 AND 3); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'matches_distinct_teams') THEN ALTER TABLE matches ADD CONSTRAINT matches_distinct_teams CHECK (home_team_id <> away_team_id); END IF; END $$`,
	}
	for _, stmt := range constraints {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("constraint: %v", err)
		}
	}

	// Rankings are derived on read from points_earned, never stored.
	if _, err := db.ExecContext(ctx, rankingsViewSQL); err != nil {
		return fmt.Errorf("creating rankings view: %w", err)
	}

	return nil
}

const rankingsViewSQL = `
CREATE OR REPLACE VIEW tournament_rankings AS
SELECT
	m.tournament_id,
	u.id           AS user_id,
	u.username,
	u.display_name,
	SUM(p.points_earned)::integer AS total_points,
	COUNT(p.prediction_id)::integer AS predictions_made,
	RANK() OVER (
		PARTITION BY m.tournament_id
		ORDER BY SUM(p.points_earned) DESC
	) AS rank
FROM predictions p
INNER JOIN matches m ON m.match_id = p.match_id
INNER JOIN users   u ON u.id = p.user_id
GROUP BY m.tournament_id, u.id, u.username, u.display_name
`

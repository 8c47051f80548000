// cmd/migrate/main.go
// Migrates data from the legacy MySQL predleague database into the local
// PostgreSQL database.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/predleague?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"

	"github.com/cianmurphy/kickpredict/config"
	bundb "github.com/cianmurphy/kickpredict/db"
	"github.com/cianmurphy/kickpredict/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/predleague?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	// Disable FK enforcement so we can load in bulk without strict ordering
	if _, err := pgDB.ExecContext(ctx, "SET session_replication_role = 'replica'"); err != nil {
		log.Fatalf("disable FK: %v", err)
	}
	defer func() {
		if _, err := pgDB.ExecContext(ctx, "SET session_replication_role = 'origin'"); err != nil {
			log.Printf("re-enable FK: %v", err)
		}
	}()

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"users", func() (int, error) { return migrateUsers(ctx, myDB, pgDB) }},
		{"teams", func() (int, error) { return migrateTeams(ctx, myDB, pgDB) }},
		{"tournaments", func() (int, error) { return migrateTournaments(ctx, myDB, pgDB) }},
		{"matches", func() (int, error) { return migrateMatches(ctx, myDB, pgDB) }},
		{"predictions", func() (int, error) { return migratePredictions(ctx, myDB, pgDB) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			log.Fatalf("migrate %s: %v", s.name, err)
		}
		log.Printf("%-15s  %d rows migrated", s.name, n)
	}

	resetSequences(ctx, pgDB)
	log.Println("migration complete")
}

// --- helpers ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// bulkInsert inserts a batch, skipping rows that already exist (idempotent re-runs).
func bulkInsert[T any](ctx context.Context, pgDB *bun.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pgDB.NewInsert().Model(&rows).On("CONFLICT DO NOTHING").Exec(ctx)
	return err
}

// --- per-table migrations ---

func migrateUsers(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT id, username, displayName, password FROM users")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.User
	total := 0
	for rows.Next() {
		var r models.User
		if err := rows.Scan(&r.ID, &r.Username, &r.DisplayName, &r.Password); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateTeams(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT teamID, name, shortCode FROM teams")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Team
	total := 0
	for rows.Next() {
		var r models.Team
		if err := rows.Scan(&r.TeamID, &r.Name, &r.ShortCode); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateTournaments(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT tournamentID, name, season, archived FROM tournaments")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Tournament
	total := 0
	for rows.Next() {
		var r models.Tournament
		if err := rows.Scan(&r.TournamentID, &r.Name, &r.Season, &r.Archived); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateMatches(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT matchID, tournamentID, homeTeamID, awayTeamID, kickoff,
		        multiplier, status, homeScore, awayScore, updatedAt
		 FROM matches`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Match
	total := 0
	for rows.Next() {
		var (
			matchID      int
			tournamentID int
			homeTeamID   int
			awayTeamID   int
			kickoff      time.Time
			multiplier   int
			status       string
			homeScore    sql.NullInt64
			awayScore    sql.NullInt64
			updatedAt    time.Time
		)
		if err := rows.Scan(&matchID, &tournamentID, &homeTeamID, &awayTeamID,
			&kickoff, &multiplier, &status, &homeScore, &awayScore, &updatedAt); err != nil {
			return total, err
		}
		batch = append(batch, models.Match{
			MatchID:      matchID,
			TournamentID: tournamentID,
			HomeTeamID:   homeTeamID,
			AwayTeamID:   awayTeamID,
			Kickoff:      kickoff,
			Multiplier:   multiplier,
			Status:       status,
			HomeScore:    nullInt(homeScore),
			AwayScore:    nullInt(awayScore),
			UpdatedAt:    updatedAt,
		})
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migratePredictions(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT predictionID, userID, matchID, homeScore, awayScore,
		        pointsEarned, updatedAt
		 FROM predictions`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Prediction
	total := 0
	for rows.Next() {
		var r models.Prediction
		if err := rows.Scan(&r.PredictionID, &r.UserID, &r.MatchID,
			&r.HomeScore, &r.AwayScore, &r.PointsEarned, &r.UpdatedAt); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

// resetSequences advances each PG sequence to MAX(id) so new inserts don't conflict.
func resetSequences(ctx context.Context, pgDB *bun.DB) {
	seqs := []struct{ seq, table, col string }{
		{"users_id_seq", "users", "id"},
		{"teams_team_id_seq", "teams", "team_id"},
		{"tournaments_tournament_id_seq", "tournaments", "tournament_id"},
		{"matches_match_id_seq", "matches", "match_id"},
		{"predictions_prediction_id_seq", "predictions", "prediction_id"},
	}
	for _, s := range seqs {
		q := fmt.Sprintf(
			"SELECT setval('%s', COALESCE((SELECT MAX(%s) FROM %s), 1))",
			s.seq, s.col, s.table,
		)
		if _, err := pgDB.ExecContext(ctx, q); err != nil {
			log.Printf("reset seq %s: %v", s.seq, err)
		}
	}
	log.Println("sequences reset")
}

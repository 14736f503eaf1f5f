package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const analysisSchema = `
	CREATE TABLE IF NOT EXISTS analysis (
		board      BYTEA            NOT NULL,
		side       SMALLINT         NOT NULL,
		depth      SMALLINT         NOT NULL,
		has_move   BOOLEAN          NOT NULL,
		move_row   SMALLINT         NOT NULL,
		move_col   SMALLINT         NOT NULL,
		score      DOUBLE PRECISION NOT NULL,
		nodes      BIGINT           NOT NULL,
		created_at TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		PRIMARY KEY (board, side, depth)
	);`

// InitPostgres initializes the database connection and creates missing tables.
func InitPostgres(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err = db.Exec(analysisSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return db, nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	analysisKeyPrefix = "analysis"
	analysisTTL       = config.AnalysisTTLSeconds * time.Second
)

// ErrNotFound is returned when no analysis is stored for a job.
var ErrNotFound = errors.New("analysis not found")

// AnalysisRepository stores search results in memory, Redis and Postgres.
// Redis and Postgres are skipped when they are not configured.
type AnalysisRepository struct {
	services *services.Services
}

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(c *fiber.Ctx) *AnalysisRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &AnalysisRepository{
		services: services,
	}
}

// NewAnalysisRepositoryFromServices creates a new AnalysisRepository.
func NewAnalysisRepositoryFromServices(services *services.Services) *AnalysisRepository {
	return &AnalysisRepository{
		services: services,
	}
}

// analysisRow is an analysis as stored in Postgres.
type analysisRow struct {
	Board   []byte  `db:"board"`
	Side    int16   `db:"side"`
	Depth   int16   `db:"depth"`
	HasMove bool    `db:"has_move"`
	MoveRow int16   `db:"move_row"`
	MoveCol int16   `db:"move_col"`
	Score   float64 `db:"score"`
	Nodes   int64   `db:"nodes"`
}

func newAnalysisRow(analysis models.Analysis) analysisRow {
	return analysisRow{
		Board:   analysis.Board.Bytes(),
		Side:    int16(analysis.Side),
		Depth:   int16(analysis.Depth), //nolint:gosec
		HasMove: analysis.HasMove,
		MoveRow: int16(analysis.Move.Row), //nolint:gosec
		MoveCol: int16(analysis.Move.Col), //nolint:gosec
		Score:   analysis.Score,
		Nodes:   int64(analysis.Nodes), //nolint:gosec
	}
}

func (row analysisRow) toAnalysis() (models.Analysis, error) {
	board, err := models.NewBoardFromBytes(row.Board)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("error scanning board: %w", err)
	}

	return models.Analysis{
		Board:   board,
		Side:    models.Color(row.Side),
		Depth:   int(row.Depth),
		HasMove: row.HasMove,
		Move:    models.NewMove(int(row.MoveRow), int(row.MoveCol)),
		Score:   row.Score,
		Nodes:   uint64(row.Nodes), //nolint:gosec
	}, nil
}

// redisKey returns the Redis key of a job.
func redisKey(job models.Job) string {
	return fmt.Sprintf("%s:%s:%s:%d", analysisKeyPrefix, job.Board.String(), job.Side, job.Depth)
}

// Lookup finds a stored analysis, trying memory, Redis and Postgres in that order.
// Hits in a slower store are copied to the faster ones. It returns ErrNotFound on a miss.
func (repo *AnalysisRepository) Lookup(ctx context.Context, job models.Job) (models.Analysis, error) {
	if analysis, ok := repo.services.Memory.Lookup(job); ok {
		return analysis, nil
	}

	analysis, err := repo.lookupRedis(ctx, job)
	if err == nil {
		repo.services.Memory.Upsert(analysis)
		return analysis, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Analysis{}, err
	}

	analysis, err = repo.lookupPostgres(ctx, job)
	if err != nil {
		return models.Analysis{}, err
	}

	repo.services.Memory.Upsert(analysis)
	if err = repo.saveRedis(ctx, analysis); err != nil {
		return models.Analysis{}, err
	}

	return analysis, nil
}

func (repo *AnalysisRepository) lookupRedis(ctx context.Context, job models.Job) (models.Analysis, error) {
	redisConn := repo.services.Redis
	if redisConn == nil {
		return models.Analysis{}, ErrNotFound
	}

	jsonData, err := redisConn.Get(ctx, redisKey(job)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Analysis{}, ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("error getting analysis from Redis: %w", err)
	}

	var analysis models.Analysis
	if err = json.Unmarshal(jsonData, &analysis); err != nil {
		return models.Analysis{}, fmt.Errorf("error unmarshaling analysis: %w", err)
	}

	return analysis, nil
}

func (repo *AnalysisRepository) lookupPostgres(ctx context.Context, job models.Job) (models.Analysis, error) {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return models.Analysis{}, ErrNotFound
	}

	query := `
		SELECT board, side, depth, has_move, move_row, move_col, score, nodes
		FROM analysis
		WHERE board = $1 AND side = $2 AND depth = $3
	`

	var row analysisRow
	err := pgConn.GetContext(ctx, &row, query, job.Board.Bytes(), int16(job.Side), job.Depth)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Analysis{}, ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("error getting analysis from Postgres: %w", err)
	}

	return row.toAnalysis()
}

// Save stores an analysis in all configured stores.
func (repo *AnalysisRepository) Save(ctx context.Context, analysis models.Analysis) error {
	repo.services.Memory.Upsert(analysis)

	if err := repo.saveRedis(ctx, analysis); err != nil {
		return err
	}

	return repo.savePostgres(ctx, analysis)
}

func (repo *AnalysisRepository) saveRedis(ctx context.Context, analysis models.Analysis) error {
	redisConn := repo.services.Redis
	if redisConn == nil {
		return nil
	}

	jsonData, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("error marshaling analysis: %w", err)
	}

	if err = redisConn.Set(ctx, redisKey(analysis.Job()), jsonData, analysisTTL).Err(); err != nil {
		return fmt.Errorf("error storing analysis in Redis: %w", err)
	}

	return nil
}

func (repo *AnalysisRepository) savePostgres(ctx context.Context, analysis models.Analysis) error {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return nil
	}

	query := `
		INSERT INTO analysis (board, side, depth, has_move, move_row, move_col, score, nodes)
		VALUES (:board, :side, :depth, :has_move, :move_row, :move_col, :score, :nodes)
		ON CONFLICT (board, side, depth) DO NOTHING
	`

	if _, err := pgConn.NamedExecContext(ctx, query, newAnalysisRow(analysis)); err != nil {
		return fmt.Errorf("error storing analysis in Postgres: %w", err)
	}

	return nil
}

// Count returns the number of analyses stored in Postgres, or in memory if Postgres is not configured.
func (repo *AnalysisRepository) Count(ctx context.Context) (int, error) {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return repo.services.Memory.Len(), nil
	}

	var count int
	if err := pgConn.GetContext(ctx, &count, "SELECT COUNT(*) FROM analysis"); err != nil {
		return 0, fmt.Errorf("error counting analyses: %w", err)
	}

	return count, nil
}

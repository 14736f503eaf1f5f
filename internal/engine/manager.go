package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/search"
)

// MaxDepth is the deepest search a job may request.
const MaxDepth = 10

// ErrInvalidJob is returned for jobs with a bad side or depth.
var ErrInvalidJob = errors.New("invalid job")

// Store looks up and saves analyses.
type Store interface {
	Lookup(ctx context.Context, job models.Job) (models.Analysis, error)
	Save(ctx context.Context, analysis models.Analysis) error
}

// Manager runs search jobs. Results are looked up in the store first and saved after a search.
type Manager struct {
	store    Store
	parallel bool
}

// NewManager creates a new Manager.
func NewManager(store Store, parallel bool) *Manager {
	return &Manager{
		store:    store,
		parallel: parallel,
	}
}

// NewManagerFromRepository creates a Manager backed by an AnalysisRepository.
func NewManagerFromRepository(repo *repository.AnalysisRepository, parallel bool) *Manager {
	return NewManager(repo, parallel)
}

// ValidateJob checks that a job can be searched.
func ValidateJob(job models.Job) error {
	if !job.Side.IsSide() {
		return fmt.Errorf("%w: side must be black or white, got %s", ErrInvalidJob, job.Side)
	}

	if job.Depth < 0 || job.Depth > MaxDepth {
		return fmt.Errorf("%w: depth must be between 0 and %d, got %d", ErrInvalidJob, MaxDepth, job.Depth)
	}

	return nil
}

// DoJob returns the analysis of job.
// Store failures are logged and do not fail the job, since the search can always run.
func (m *Manager) DoJob(ctx context.Context, job models.Job) (*models.JobResult, error) {
	if err := ValidateJob(job); err != nil {
		return nil, err
	}

	startTime := time.Now()

	// A side without moves passes, there is nothing to look up or store.
	if !job.Board.HasAnyLegalMove(job.Side) {
		return &models.JobResult{
			Analysis: models.Analysis{
				Board: job.Board,
				Side:  job.Side,
				Depth: job.Depth,
			},
			Cached:          false,
			ComputationTime: time.Since(startTime),
		}, nil
	}

	analysis, err := m.store.Lookup(ctx, job)
	if err == nil {
		slog.Debug("Analysis found in store", "board", job.Board, "side", job.Side, "depth", job.Depth)
		return &models.JobResult{
			Analysis:        analysis,
			Cached:          true,
			ComputationTime: time.Since(startTime),
		}, nil
	}

	if !errors.Is(err, repository.ErrNotFound) {
		slog.Warn("Failed to look up analysis", "error", err)
	}

	analysis = m.search(job)

	if err = m.store.Save(ctx, analysis); err != nil {
		slog.Warn("Failed to save analysis", "error", err)
	}

	return &models.JobResult{
		Analysis:        analysis,
		Cached:          false,
		ComputationTime: time.Since(startTime),
	}, nil
}

func (m *Manager) search(job models.Job) models.Analysis {
	var result search.Result
	if m.parallel {
		result = search.SearchParallel(job.Board, job.Side, job.Depth)
	} else {
		result = search.NewBot().Search(job.Board, job.Side, job.Depth)
	}

	return models.Analysis{
		Board:   job.Board,
		Side:    job.Side,
		Depth:   job.Depth,
		HasMove: result.HasMove,
		Move:    result.Move,
		Score:   result.Score,
		Nodes:   result.Nodes,
	}
}

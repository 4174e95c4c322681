package worker

import (
	"context"
	"fanvote/pkg/leaderboard"
	"fanvote/pkg/logger"
	"fanvote/pkg/storage"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const defaultMaxWorkers = 20

// Options configure the job workers.
type Options struct {
	// MaxWorkers is the number of jobs of the default queue worked at once.
	MaxWorkers int
}

// Start registers every worker and starts processing jobs. Jobs are
// enqueued by the storage layer inside the transactions of the workflows.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	options storage.PlayerOptionStorage,
	board leaderboard.Board,
	opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewLeaderboardWorker(options, board))

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

package worker

import (
	"context"
	"fanvote/internal/voting"
	"fanvote/pkg/domain"
	"fanvote/pkg/leaderboard"
	"fanvote/pkg/logger"
	"fanvote/pkg/storage"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// LeaderboardWorker copies the committed vote count of a player option into
// the leaderboard. It reads the option without locking it, so it never
// blocks a vote. Jobs for the same option may run out of order; the board
// drops scores read at an older version than the one it holds.
//
// Options that expired or were deleted are removed from the board.
type LeaderboardWorker struct {
	river.WorkerDefaults[voting.LeaderboardJobArgs]

	options storage.PlayerOptionStorage
	board   leaderboard.Board
	now     func() time.Time
}

// NewLeaderboardWorker constructs a LeaderboardWorker reading options from
// the given storage.
func NewLeaderboardWorker(options storage.PlayerOptionStorage, board leaderboard.Board) *LeaderboardWorker {
	return &LeaderboardWorker{
		options: options,
		board:   board,
		now:     time.Now,
	}
}

// Work refreshes the leaderboard entry of one option.
func (w *LeaderboardWorker) Work(ctx context.Context, job *river.Job[voting.LeaderboardJobArgs]) error {
	orgID := domain.OrganizationID(job.Args.OrganizationID)
	optionID := domain.PlayerOptionID(job.Args.PlayerOptionID)
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("organizationID", orgID),
		zap.Stringer("playerOptionID", optionID))

	option, err := w.options.PlayerOptionByID(ctx, optionID)
	if err != nil {
		logger.Error(ctx, "error reading player option", zap.Error(err))

		return fmt.Errorf("could not get player option: %w", err)
	}

	if option == nil || option.IsExpired(w.now()) {
		if err := w.board.Remove(ctx, orgID, optionID); err != nil {
			logger.Error(ctx, "error removing leaderboard entry", zap.Error(err))

			return fmt.Errorf("could not remove leaderboard entry: %w", err)
		}
		logger.Info(ctx, "player option removed from leaderboard")

		return nil
	}

	applied, err := w.board.SetScore(ctx, orgID, optionID, option.Votes(), option.Version())
	if err != nil {
		logger.Error(ctx, "error updating leaderboard", zap.Error(err))

		return fmt.Errorf("could not update leaderboard: %w", err)
	}
	if !applied {
		logger.Debug(ctx, "leaderboard already holds a newer count", zap.Int64("version", option.Version()))

		return nil
	}

	logger.Info(ctx, "leaderboard updated", zap.Int64("votes", option.Votes()))

	return nil
}

package voting

import (
	"context"
	"fanvote/internal/config"
	"fanvote/pkg/domain"
	"fanvote/pkg/leaderboard"
	"fanvote/pkg/logger"
	"fanvote/pkg/metrics"
	"fanvote/pkg/serrors"
	"fanvote/pkg/storage"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "fanvote/internal/voting"

// Options configure the vote workflows. These settings are typically
// derived from application configuration.
type Options struct {
	// Retry controls how often a workflow is retried after losing a race
	// against a concurrent writer.
	Retry storage.RetryOptions
	// LeaderboardJobMaxAttempts is the maximum number of attempts of the
	// leaderboard refresh job enqueued by every vote change.
	LeaderboardJobMaxAttempts int
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Metrics records workflow outcomes. Defaults to a no-op recorder.
	Metrics *metrics.Recorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Retry: storage.RetryOptions{
			MaxRetries: cfg.Voting.MaxConflictRetries,
			BaseDelay:  cfg.Voting.RetryBaseDelay,
		},
		LeaderboardJobMaxAttempts: cfg.Voting.LeaderboardJobMaxAttempts,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	storage storage.Storage
	board   leaderboard.Board
	tracer  trace.Tracer
}

// New creates a new Service backed by the provided storage and leaderboard.
func New(storage storage.Storage, board leaderboard.Board, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Metrics == nil {
		options.Metrics = metrics.Noop()
	}

	return &service{
		options: options,
		storage: storage,
		board:   board,
		tracer:  otel.Tracer(tracerName),
	}
}

// withRetry runs cb in its own transaction, retrying the whole unit of work
// on version conflicts.
func (s *service) withRetry(ctx context.Context, workflow string, cb func(tx storage.AllStorage) error) error {
	opts := s.options.Retry
	opts.OnConflict = func(ctx context.Context, err error) {
		s.options.Metrics.Conflict(ctx, workflow)
		logger.Debug(ctx, "lost concurrent write", zap.String("workflow", workflow), zap.Error(err))
	}

	return storage.WithRetry(ctx, opts, func(ctx context.Context) error {
		return s.storage.WithTx(ctx, cb)
	})
}

// finish records the outcome of a workflow on its span and metrics.
func (s *service) finish(ctx context.Context, span trace.Span, workflow string, start time.Time, err error) {
	s.options.Metrics.Observe(ctx, workflow, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *service) enqueueRefresh(ctx context.Context, tx storage.AllStorage, option *domain.PlayerOption) error {
	if _, err := tx.AddJob(ctx, NewLeaderboardJobArgs(option, s.options.LeaderboardJobMaxAttempts), nil); err != nil {
		return fmt.Errorf("could not add leaderboard job: %w", err)
	}

	return nil
}

// CastVote locks the option and then the budget, applies the domain
// workflow and writes all three records back in one transaction.
func (s *service) CastVote(
	ctx context.Context,
	userID domain.UserID,
	optionID domain.PlayerOptionID) (_ *domain.Vote, err error) {
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID), zap.Stringer("playerOptionID", optionID))
	ctx, span := s.tracer.Start(ctx, "voting.CastVote", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("player_option.id", optionID.String()),
	))
	defer func(start time.Time) { s.finish(ctx, span, metrics.WorkflowCastVote, start, err) }(time.Now())

	var vote *domain.Vote
	err = s.withRetry(ctx, metrics.WorkflowCastVote, func(tx storage.AllStorage) error {
		option, err := tx.PlayerOptionByIDForUpdate(ctx, optionID)
		if err != nil {
			return fmt.Errorf("could not get player option: %w", err)
		}
		if option == nil {
			return serrors.With(serrors.ErrNotFound, "player option %s not found", optionID)
		}

		budget, err := tx.BudgetForUpdate(ctx, userID, option.OrganizationID())
		if err != nil {
			return fmt.Errorf("could not get vote budget: %w", err)
		}

		v, err := domain.CastVote(userID, option, budget, s.options.Now())
		if err != nil {
			return err
		}

		if err := tx.UpdatePlayerOptionVotes(ctx, option); err != nil {
			return fmt.Errorf("could not update player option votes: %w", err)
		}
		if err := tx.SaveBudget(ctx, budget); err != nil {
			return fmt.Errorf("could not save vote budget: %w", err)
		}
		if err := tx.StoreVote(ctx, v); err != nil {
			return fmt.Errorf("could not store vote: %w", err)
		}
		if err := s.enqueueRefresh(ctx, tx, option); err != nil {
			return err
		}
		vote = v

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not cast vote: %w", err)
	}

	s.options.Metrics.VoteCast(ctx)
	logger.Info(ctx, "vote cast", zap.Stringer("voteID", vote.ID()))

	return vote, nil
}

// RemoveVote locks the vote, its option and the owner's budget in that
// order, undoes the vote and deletes it in one transaction.
func (s *service) RemoveVote(ctx context.Context, voteID domain.VoteID) (err error) {
	ctx = logger.WithFields(ctx, zap.Stringer("voteID", voteID))
	ctx, span := s.tracer.Start(ctx, "voting.RemoveVote", trace.WithAttributes(
		attribute.String("vote.id", voteID.String()),
	))
	defer func(start time.Time) { s.finish(ctx, span, metrics.WorkflowRemoveVote, start, err) }(time.Now())

	err = s.withRetry(ctx, metrics.WorkflowRemoveVote, func(tx storage.AllStorage) error {
		vote, err := tx.VoteByIDForUpdate(ctx, voteID)
		if err != nil {
			return fmt.Errorf("could not get vote: %w", err)
		}
		if vote == nil {
			return serrors.With(serrors.ErrNotFound, "vote %s not found", voteID)
		}

		option, err := tx.PlayerOptionByIDForUpdate(ctx, vote.PlayerOptionID())
		if err != nil {
			return fmt.Errorf("could not get player option: %w", err)
		}
		if option == nil {
			return serrors.With(serrors.ErrNotFound, "player option %s not found", vote.PlayerOptionID())
		}

		budget, err := tx.BudgetForUpdate(ctx, vote.UserID(), vote.OrganizationID())
		if err != nil {
			return fmt.Errorf("could not get vote budget: %w", err)
		}
		if budget == nil {
			return serrors.With(domain.ErrInvariantViolation, "vote %s has no budget to refund", voteID)
		}

		if err := domain.RetractVote(vote, option, budget, s.options.Now()); err != nil {
			return err
		}

		if err := tx.UpdatePlayerOptionVotes(ctx, option); err != nil {
			return fmt.Errorf("could not update player option votes: %w", err)
		}
		if err := tx.SaveBudget(ctx, budget); err != nil {
			return fmt.Errorf("could not save vote budget: %w", err)
		}
		deleted, err := tx.DeleteVote(ctx, voteID)
		if err != nil {
			return fmt.Errorf("could not delete vote: %w", err)
		}
		if !deleted {
			return fmt.Errorf("vote %s vanished: %w", voteID, storage.ErrVersionConflict)
		}

		return s.enqueueRefresh(ctx, tx, option)
	})
	if err != nil {
		return fmt.Errorf("could not remove vote: %w", err)
	}

	s.options.Metrics.VoteRemoved(ctx)
	logger.Info(ctx, "vote removed")

	return nil
}

// Standings reads the leaderboard. It never touches the database, so it may
// lag behind the committed counts until the refresh jobs ran.
func (s *service) Standings(ctx context.Context, orgID domain.OrganizationID, n int) ([]leaderboard.Entry, error) {
	if n <= 0 {
		return nil, serrors.With(domain.ErrValidation, "standings size must be positive, got %d", n)
	}

	entries, err := s.board.Top(ctx, orgID, n)
	if err != nil {
		return nil, fmt.Errorf("could not read standings: %w", err)
	}

	return entries, nil
}

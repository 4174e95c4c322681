// Package budgets supplies vote budgets to users outside of code
// redemption, for example from a season ticket or a promotion.
package budgets

import (
	"context"
	"fanvote/internal/config"
	"fanvote/pkg/domain"
	"fanvote/pkg/logger"
	"fanvote/pkg/serrors"
	"fanvote/pkg/storage"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service grants votes and reads balances.
type Service interface {
	// Grant credits n votes to the user's budget for orgID, opening the
	// budget when the user has none yet. It returns the credited budget.
	Grant(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID, n int64) (*domain.VoteBudget, error)
	// Balance returns the votes the user has left in orgID. A user without
	// a budget has none.
	Balance(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID) (int64, error)
}

// Options configure the budget commands.
type Options struct {
	Retry         storage.RetryOptions
	InitialBudget int64
	Now           func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Retry: storage.RetryOptions{
			MaxRetries: cfg.Voting.MaxConflictRetries,
			BaseDelay:  cfg.Voting.RetryBaseDelay,
		},
		InitialBudget: cfg.Voting.InitialBudget,
	}
}

type service struct {
	options Options
	storage storage.Storage
}

// New creates a new Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &service{options: options, storage: storage}
}

func (s *service) Grant(
	ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID,
	n int64) (*domain.VoteBudget, error) {
	if n <= 0 {
		return nil, serrors.With(domain.ErrValidation, "votes to grant must be positive, got %d", n)
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID), zap.Stringer("organizationID", orgID))

	var budget *domain.VoteBudget
	err := storage.WithRetry(ctx, s.options.Retry, func(ctx context.Context) error {
		return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			exists, err := tx.OrganizationExists(ctx, orgID)
			if err != nil {
				return fmt.Errorf("could not check organization: %w", err)
			}
			if !exists {
				return serrors.With(serrors.ErrNotFound, "organization %s not found", orgID)
			}

			now := s.options.Now()
			b, err := tx.BudgetForUpdate(ctx, userID, orgID)
			if err != nil {
				return fmt.Errorf("could not get vote budget: %w", err)
			}
			if b == nil {
				if b, err = domain.NewVoteBudget(userID, orgID, s.options.InitialBudget, now); err != nil {
					return err
				}
			}
			if err := b.AddVotes(n, now); err != nil {
				return err
			}

			if err := tx.SaveBudget(ctx, b); err != nil {
				return fmt.Errorf("could not save vote budget: %w", err)
			}
			budget = b

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not grant votes: %w", err)
	}

	logger.Info(ctx, "votes granted", zap.Int64("votes", n), zap.Int64("votesRemaining", budget.VotesRemaining()))

	return budget, nil
}

func (s *service) Balance(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID) (int64, error) {
	b, err := s.storage.Budget(ctx, userID, orgID)
	if err != nil {
		return 0, fmt.Errorf("could not get vote budget: %w", err)
	}
	if b == nil {
		return 0, nil
	}

	return b.VotesRemaining(), nil
}

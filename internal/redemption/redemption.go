package redemption

import (
	"context"
	"fanvote/internal/config"
	"fanvote/pkg/domain"
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

// MaxBatchSize bounds the number of codes created by one Generate call.
const MaxBatchSize = 10_000

// Options configure redemption and code generation.
type Options struct {
	// Retry controls how often a workflow is retried after losing a race
	// against a concurrent writer.
	Retry storage.RetryOptions
	// InitialBudget is the balance of a budget opened by a redemption,
	// before the code's votes are added.
	InitialBudget int64
	// CodeLength is the length of generated code values.
	CodeLength int
	// DefaultTTL is used when a request does not set one.
	DefaultTTL time.Duration
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
		InitialBudget: cfg.Voting.InitialBudget,
		CodeLength:    cfg.Codes.Length,
		DefaultTTL:    cfg.Codes.DefaultTTL,
	}
}

type service struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer
}

// New creates a new Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Metrics == nil {
		options.Metrics = metrics.Noop()
	}
	if options.CodeLength == 0 {
		options.CodeLength = domain.DefaultCodeLength
	}

	return &service{
		options: options,
		storage: storage,
		tracer:  otel.Tracer("fanvote/internal/redemption"),
	}
}

func (s *service) withRetry(ctx context.Context, cb func(tx storage.AllStorage) error) error {
	opts := s.options.Retry
	opts.OnConflict = func(ctx context.Context, err error) {
		s.options.Metrics.Conflict(ctx, metrics.WorkflowRedeem)
		logger.Debug(ctx, "lost concurrent write", zap.Error(err))
	}

	return storage.WithRetry(ctx, opts, func(ctx context.Context) error {
		return s.storage.WithTx(ctx, cb)
	})
}

// Redeem locks the code row and then the budget row, so two redemptions of
// the same code serialize and the second one sees it redeemed.
func (s *service) Redeem(ctx context.Context, userID domain.UserID, value string) (_ *domain.VoteBudget, err error) {
	value = domain.NormalizeCodeValue(value)
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))
	ctx, span := s.tracer.Start(ctx, "redemption.Redeem", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
	))
	defer func(start time.Time) {
		s.options.Metrics.Observe(ctx, metrics.WorkflowRedeem, start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}(time.Now())

	if value == "" {
		return nil, serrors.With(domain.ErrValidation, "code is required")
	}

	var (
		budget *domain.VoteBudget
		code   *domain.Code
	)
	err = s.withRetry(ctx, func(tx storage.AllStorage) error {
		c, err := tx.CodeByValueForUpdate(ctx, value)
		if err != nil {
			return fmt.Errorf("could not get code: %w", err)
		}
		if c == nil {
			return serrors.With(serrors.ErrNotFound, "code not found")
		}

		now := s.options.Now()
		b, err := tx.BudgetForUpdate(ctx, userID, c.OrganizationID())
		if err != nil {
			return fmt.Errorf("could not get vote budget: %w", err)
		}
		if b == nil {
			if b, err = domain.NewVoteBudget(userID, c.OrganizationID(), s.options.InitialBudget, now); err != nil {
				return err
			}
		}

		b, err = domain.RedeemCode(c, b, userID, now)
		if err != nil {
			return err
		}

		if err := tx.SaveBudget(ctx, b); err != nil {
			return fmt.Errorf("could not save vote budget: %w", err)
		}
		if err := tx.UpdateCode(ctx, c); err != nil {
			return fmt.Errorf("could not update code: %w", err)
		}
		budget, code = b, c

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not redeem code: %w", err)
	}

	s.options.Metrics.CodeRedeemed(ctx)
	logger.Info(ctx, "code redeemed",
		zap.Stringer("codeID", code.ID()),
		zap.Stringer("organizationID", code.OrganizationID()),
		zap.Int64("votesAwarded", code.VotesAwarded()),
		zap.Int64("votesRemaining", budget.VotesRemaining()))

	return budget, nil
}

// Generate draws fresh random values on every attempt, so a clash with an
// existing value is retried like any other conflict.
func (s *service) Generate(ctx context.Context, req GenerateRequest) ([]*domain.Code, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("organizationID", req.OrganizationID))
	ctx, span := s.tracer.Start(ctx, "redemption.Generate")
	defer span.End()

	if req.Count <= 0 || req.Count > MaxBatchSize {
		return nil, serrors.With(domain.ErrValidation, "count must be between 1 and %d, got %d", MaxBatchSize, req.Count)
	}

	var generated []*domain.Code
	err := s.withRetry(ctx, func(tx storage.AllStorage) error {
		exists, err := tx.OrganizationExists(ctx, req.OrganizationID)
		if err != nil {
			return fmt.Errorf("could not check organization: %w", err)
		}
		if !exists {
			return serrors.With(serrors.ErrNotFound, "organization %s not found", req.OrganizationID)
		}

		now := s.options.Now()
		var expiresAt time.Time
		if !req.NoExpiry {
			ttl := req.TTL
			if ttl == 0 {
				ttl = s.options.DefaultTTL
			}
			if ttl > 0 {
				expiresAt = now.Add(ttl)
			}
		}

		batch := make([]*domain.Code, 0, req.Count)
		for range req.Count {
			value, err := domain.GenerateCodeValue(s.options.CodeLength)
			if err != nil {
				return fmt.Errorf("could not generate code value: %w", err)
			}
			code, err := domain.NewCode(req.OrganizationID, value, req.VotesAwarded, expiresAt, now)
			if err != nil {
				return err
			}
			batch = append(batch, code)
		}

		if err := tx.StoreCodes(ctx, batch...); err != nil {
			return fmt.Errorf("could not store codes: %w", err)
		}
		generated = batch

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("could not generate codes: %w", err)
	}

	logger.Info(ctx, "codes generated", zap.Int("count", len(generated)), zap.Int64("votesAwarded", req.VotesAwarded))

	return generated, nil
}

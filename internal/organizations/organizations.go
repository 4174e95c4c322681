package organizations

import (
	"context"
	"fanvote/internal/config"
	"fanvote/internal/voting"
	"fanvote/pkg/domain"
	"fanvote/pkg/logger"
	"fanvote/pkg/serrors"
	"fanvote/pkg/storage"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options configure the organization commands.
type Options struct {
	// Retry controls how often a command is retried after a concurrent
	// change of the same organization.
	Retry storage.RetryOptions
	// LeaderboardJobMaxAttempts is the maximum number of attempts of the
	// leaderboard refresh job enqueued when an option stops taking votes.
	LeaderboardJobMaxAttempts int
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
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

	return &service{
		options: options,
		storage: storage,
		tracer:  otel.Tracer("fanvote/internal/organizations"),
	}
}

// mutation changes a loaded organization inside the command transaction.
type mutation func(ctx context.Context, tx storage.AllStorage, org *domain.Organization, now time.Time) error

// update loads the organization, applies fn and writes the aggregate back.
// The whole unit is retried when the organization version moved.
func (s *service) update(
	ctx context.Context,
	command string,
	id domain.OrganizationID,
	fn mutation) (_ *domain.Organization, err error) {
	ctx = logger.WithFields(ctx, zap.Stringer("organizationID", id), zap.String("command", command))
	ctx, span := s.tracer.Start(ctx, "organizations."+command, trace.WithAttributes(
		attribute.String("organization.id", id.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	opts := s.options.Retry
	opts.OnConflict = func(ctx context.Context, err error) {
		logger.Debug(ctx, "organization changed concurrently", zap.Error(err))
	}

	var org *domain.Organization
	err = storage.WithRetry(ctx, opts, func(ctx context.Context) error {
		return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			o, err := tx.OrganizationByID(ctx, id)
			if err != nil {
				return fmt.Errorf("could not get organization: %w", err)
			}
			if o == nil {
				return serrors.With(serrors.ErrNotFound, "organization %s not found", id)
			}

			if err := fn(ctx, tx, o, s.options.Now()); err != nil {
				return err
			}

			if err := tx.UpdateOrganization(ctx, o); err != nil {
				return fmt.Errorf("could not update organization: %w", err)
			}
			org = o

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not %s: %w", command, err)
	}

	logger.Info(ctx, "organization updated")

	return org, nil
}

func (s *service) Create(ctx context.Context, params domain.OrganizationParams) (*domain.Organization, error) {
	org, err := domain.NewOrganization(params, s.options.Now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.StoreOrganization(ctx, org); err != nil {
		return nil, fmt.Errorf("could not store organization: %w", err)
	}
	logger.Info(ctx, "organization created", zap.Stringer("organizationID", org.ID()))

	// read back so the caller holds the stored version
	return s.Get(ctx, org.ID())
}

func (s *service) Get(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	org, err := s.storage.OrganizationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get organization: %w", err)
	}
	if org == nil {
		return nil, serrors.With(serrors.ErrNotFound, "organization %s not found", id)
	}

	return org, nil
}

// Statistics reads the organization without locking it; the figures are
// consistent with each other but may trail concurrent votes.
func (s *service) Statistics(ctx context.Context, id domain.OrganizationID) (*Statistics, error) {
	org, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.options.Now()
	stats := &Statistics{
		ActivePlayerOptions: org.ActivePlayerOptionsCount(now),
		TotalVotes:          org.TotalVotes(),
		Trending:            org.TrendingPlayerOptions(now),
		AveragePlayerAge:    org.AveragePlayerAge(now),
		ActivePlayers:       org.ActivePlayersCount(),
		TotalMarketValue:    org.TotalMarketValue(now),
	}
	if best, ok := org.MostPopularPlayerOption(now); ok {
		stats.MostPopular = &best
	}

	return stats, nil
}

func (s *service) Lock(ctx context.Context, id domain.OrganizationID, reason string) (*domain.Organization, error) {
	return s.update(ctx, "lock organization", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, now time.Time) error {
			return org.Lock(reason, now)
		})
}

func (s *service) Unlock(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	return s.update(ctx, "unlock organization", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			return org.Unlock()
		})
}

func (s *service) Rename(ctx context.Context, id domain.OrganizationID, name string) (*domain.Organization, error) {
	return s.update(ctx, "rename organization", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			return org.Rename(name)
		})
}

func (s *service) UpdateDescription(
	ctx context.Context,
	id domain.OrganizationID,
	description string) (*domain.Organization, error) {
	return s.update(ctx, "update description", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			return org.UpdateDescription(description)
		})
}

func (s *service) ReplaceVenue(
	ctx context.Context,
	id domain.OrganizationID,
	venue domain.Venue) (*domain.Organization, error) {
	return s.update(ctx, "replace venue", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			return org.ReplaceVenue(venue)
		})
}

func (s *service) ReplaceMediaAssets(
	ctx context.Context,
	id domain.OrganizationID,
	media domain.MediaAssets) (*domain.Organization, error) {
	return s.update(ctx, "replace media assets", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			org.ReplaceMediaAssets(media)

			return nil
		})
}

func (s *service) ReplaceSocialLinks(
	ctx context.Context,
	id domain.OrganizationID,
	links domain.SocialLinks) (*domain.Organization, error) {
	return s.update(ctx, "replace social links", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			org.ReplaceSocialLinks(links)

			return nil
		})
}

func (s *service) ReplaceTeamColors(
	ctx context.Context,
	id domain.OrganizationID,
	colors domain.TeamColors) (*domain.Organization, error) {
	return s.update(ctx, "replace team colors", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			return org.ReplaceTeamColors(colors)
		})
}

func (s *service) AddPlayer(
	ctx context.Context,
	id domain.OrganizationID,
	params domain.PlayerParams) (domain.Player, error) {
	var player *domain.Player
	_, err := s.update(ctx, "add player", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, now time.Time) error {
			if params.LeagueID == (domain.LeagueID{}) {
				params.LeagueID = org.LeagueID()
			}
			p, err := domain.NewPlayer(params, now)
			if err != nil {
				return err
			}
			if err := org.AddPlayer(p); err != nil {
				return err
			}
			player = p

			return nil
		})
	if err != nil {
		return domain.Player{}, err
	}

	return *player, nil
}

func (s *service) RemovePlayer(ctx context.Context, id domain.OrganizationID, playerID domain.PlayerID) error {
	_, err := s.update(ctx, "remove player", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, now time.Time) error {
			return org.RemovePlayer(playerID, now)
		})

	return err
}

func (s *service) SetPlayerActive(
	ctx context.Context,
	id domain.OrganizationID,
	playerID domain.PlayerID,
	active bool) error {
	_, err := s.update(ctx, "set player active", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, _ time.Time) error {
			return org.SetPlayerActive(playerID, active)
		})

	return err
}

func (s *service) CreatePlayerOption(
	ctx context.Context,
	id domain.OrganizationID,
	req CreateOptionRequest) (domain.PlayerOption, error) {
	var created domain.PlayerOption
	_, err := s.update(ctx, "create player option", id,
		func(ctx context.Context, tx storage.AllStorage, org *domain.Organization, now time.Time) error {
			opt, err := org.CreatePlayerOption(req.Title, req.Description, req.PlayerID, req.ExpiresAt, now)
			if err != nil {
				return err
			}
			created = opt

			return s.scheduleExpiryRefresh(ctx, tx, opt)
		})
	if err != nil {
		return domain.PlayerOption{}, err
	}

	return created, nil
}

// enqueueRefresh schedules a leaderboard refresh of an option that stopped
// taking votes. The worker drops such options from the board.
func (s *service) enqueueRefresh(ctx context.Context, tx storage.AllStorage, opt domain.PlayerOption) error {
	if _, err := tx.AddJob(ctx, voting.NewLeaderboardJobArgs(&opt, s.options.LeaderboardJobMaxAttempts), nil); err != nil {
		return fmt.Errorf("could not add leaderboard job: %w", err)
	}

	return nil
}

// scheduleExpiryRefresh enqueues a refresh that runs once the option expires
// on its own, so the worker drops it from the board. A job left over from an
// earlier expiry finds the option still active and only rewrites its score.
func (s *service) scheduleExpiryRefresh(ctx context.Context, tx storage.AllStorage, opt domain.PlayerOption) error {
	args := voting.NewLeaderboardJobArgs(&opt, s.options.LeaderboardJobMaxAttempts)
	if _, err := tx.AddJob(ctx, args, &river.InsertOpts{ScheduledAt: opt.ExpiresAt()}); err != nil {
		return fmt.Errorf("could not schedule leaderboard job: %w", err)
	}

	return nil
}

func (s *service) RemovePlayerOption(
	ctx context.Context,
	id domain.OrganizationID,
	optionID domain.PlayerOptionID) error {
	_, err := s.update(ctx, "remove player option", id,
		func(ctx context.Context, tx storage.AllStorage, org *domain.Organization, now time.Time) error {
			opt, ok := org.PlayerOption(optionID)
			if !ok {
				return serrors.With(serrors.ErrNotFound, "player option %s not found", optionID)
			}
			if err := org.RemovePlayerOption(optionID, now); err != nil {
				return err
			}

			return s.enqueueRefresh(ctx, tx, opt)
		})

	return err
}

func (s *service) UpdatePlayerOptionDetails(
	ctx context.Context,
	id domain.OrganizationID,
	optionID domain.PlayerOptionID,
	title, description string) (domain.PlayerOption, error) {
	org, err := s.update(ctx, "update player option", id,
		func(_ context.Context, _ storage.AllStorage, org *domain.Organization, now time.Time) error {
			return org.UpdatePlayerOptionDetails(optionID, title, description, now)
		})
	if err != nil {
		return domain.PlayerOption{}, err
	}
	opt, _ := org.PlayerOption(optionID)

	return opt, nil
}

func (s *service) ExtendPlayerOptionExpiry(
	ctx context.Context,
	id domain.OrganizationID,
	optionID domain.PlayerOptionID,
	expiresAt time.Time) (domain.PlayerOption, error) {
	org, err := s.update(ctx, "extend player option", id,
		func(ctx context.Context, tx storage.AllStorage, org *domain.Organization, now time.Time) error {
			if err := org.ExtendPlayerOptionExpiry(optionID, expiresAt, now); err != nil {
				return err
			}
			opt, _ := org.PlayerOption(optionID)

			return s.scheduleExpiryRefresh(ctx, tx, opt)
		})
	if err != nil {
		return domain.PlayerOption{}, err
	}
	opt, _ := org.PlayerOption(optionID)

	return opt, nil
}

func (s *service) ExpirePlayerOption(
	ctx context.Context,
	id domain.OrganizationID,
	optionID domain.PlayerOptionID) error {
	_, err := s.update(ctx, "expire player option", id,
		func(ctx context.Context, tx storage.AllStorage, org *domain.Organization, now time.Time) error {
			if err := org.ExpirePlayerOption(optionID, now); err != nil {
				return err
			}
			opt, _ := org.PlayerOption(optionID)

			return s.enqueueRefresh(ctx, tx, opt)
		})

	return err
}

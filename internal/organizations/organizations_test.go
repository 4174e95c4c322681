package organizations_test

import (
	"context"
	"fanvote/internal/organizations"
	"fanvote/internal/voting"
	"fanvote/pkg/domain"
	"fanvote/pkg/serrors"
	"fanvote/pkg/storage"
	mockstorage "fanvote/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, organizations.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := organizations.New(st, organizations.Options{
		Retry:                     storage.RetryOptions{MaxRetries: 2, BaseDelay: time.Millisecond},
		LeaderboardJobMaxAttempts: 3,
		Now:                       func() time.Time { return now },
	})

	return ctrl, st, svc
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func organizationParams(t *testing.T) domain.OrganizationParams {
	t.Helper()

	venue, err := domain.NewVenue("Riverside Park", "Lisbon", 42000)
	require.NoError(t, err)
	media, err := domain.NewMediaAssets("", "", "")
	require.NoError(t, err)
	social, err := domain.NewSocialLinks(domain.SocialLinksParams{})
	require.NoError(t, err)
	colors, err := domain.NewTeamColors("#112233", "")
	require.NoError(t, err)

	return domain.OrganizationParams{
		LeagueID:    domain.NewLeagueID(),
		Name:        "Riverside FC",
		Venue:       &venue,
		MediaAssets: &media,
		SocialLinks: &social,
		TeamColors:  &colors,
	}
}

func newOrganization(t *testing.T) *domain.Organization {
	t.Helper()

	org, err := domain.NewOrganization(organizationParams(t), now.Add(-72*time.Hour))
	require.NoError(t, err)

	return org
}

// newOrganizationWithOption returns an organization with one player and one
// option created two days ago that expires at expiresAt.
func newOrganizationWithOption(t *testing.T, expiresAt time.Time) (*domain.Organization, domain.PlayerOption) {
	t.Helper()

	org := newOrganization(t)
	p, err := domain.NewPlayer(domain.PlayerParams{
		LeagueID:    org.LeagueID(),
		Name:        "Rui Costa",
		DateOfBirth: now.AddDate(-27, 0, 0),
	}, now.Add(-72*time.Hour))
	require.NoError(t, err)
	require.NoError(t, org.AddPlayer(p))

	opt, err := org.CreatePlayerOption("Captain", "Who leads the team?", p.ID(), &expiresAt, now.Add(-48*time.Hour))
	require.NoError(t, err)

	return org, opt
}

func expectRefreshJob(t *testing.T, tx *mockstorage.MockAllStorage, opt domain.PlayerOption) {
	t.Helper()

	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(voting.LeaderboardJobArgs)
			require.True(t, ok, "unexpected job args %T", args)
			require.Equal(t, uuid.UUID(opt.ID()), job.PlayerOptionID)
			require.Equal(t, uuid.UUID(opt.OrganizationID()), job.OrganizationID)
			require.Equal(t, 3, job.InsertOpts().MaxAttempts)

			return true, nil
		})
}

// expectExpiryJob expects a refresh of optionID scheduled for expiresAt.
func expectExpiryJob(
	t *testing.T,
	tx *mockstorage.MockAllStorage,
	optionID domain.PlayerOptionID,
	expiresAt time.Time) {
	t.Helper()

	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
		func(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
			job, ok := args.(voting.LeaderboardJobArgs)
			require.True(t, ok, "unexpected job args %T", args)
			require.Equal(t, uuid.UUID(optionID), job.PlayerOptionID)
			require.Equal(t, 3, job.InsertOpts().MaxAttempts)
			require.Equal(t, expiresAt, opts.ScheduledAt)

			return true, nil
		})
}

func TestService_Create(t *testing.T) {
	_, st, svc := newTestService(t)

	var stored *domain.Organization
	gomock.InOrder(
		st.EXPECT().StoreOrganization(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, org *domain.Organization) error {
				stored = org

				return nil
			}),
		st.EXPECT().OrganizationByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.OrganizationID) (*domain.Organization, error) {
				require.Equal(t, stored.ID(), id)

				return stored, nil
			}),
	)

	org, err := svc.Create(context.Background(), organizationParams(t))
	require.NoError(t, err)
	require.Equal(t, "Riverside FC", org.Name())
	require.Equal(t, now, org.CreatedAt())
	require.False(t, org.IsLocked())
}

func TestService_Create_Invalid(t *testing.T) {
	_, _, svc := newTestService(t)

	params := organizationParams(t)
	params.Name = "  "
	_, err := svc.Create(context.Background(), params)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Get_NotFound(t *testing.T) {
	_, st, svc := newTestService(t)

	st.EXPECT().OrganizationByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Get(context.Background(), domain.NewOrganizationID())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Lock(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org := newOrganization(t)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil),
			tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil),
		)
	})

	locked, err := svc.Lock(context.Background(), org.ID(), "season closed")
	require.NoError(t, err)
	require.True(t, locked.IsLocked())
	require.Equal(t, "season closed", locked.LockReason())
	require.Equal(t, now, locked.LockedAt())
}

func TestService_Update_Rejected(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org := newOrganization(t)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		// nothing is written
	})

	_, err := svc.Unlock(context.Background(), org.ID())
	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	id := domain.NewOrganizationID()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), id).Return(nil, nil)
	})

	_, err := svc.Rename(context.Background(), id, "New name")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Update_RetriesConflict(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	stale := newOrganization(t)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), stale.ID()).Return(stale, nil)
		tx.EXPECT().UpdateOrganization(gomock.Any(), stale).Return(storage.ErrVersionConflict)
	})

	fresh, err := domain.RestoreOrganization(stale.State())
	require.NoError(t, err)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), stale.ID()).Return(fresh, nil)
		tx.EXPECT().UpdateOrganization(gomock.Any(), fresh).Return(nil)
	})

	org, err := svc.UpdateDescription(context.Background(), stale.ID(), "Founded by dock workers")
	require.NoError(t, err)
	require.Same(t, fresh, org)
	require.Equal(t, "Founded by dock workers", org.Description())
}

func TestService_Update_GivesUp(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	id := domain.NewOrganizationID()
	for range 3 {
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrganizationByID(gomock.Any(), id).DoAndReturn(
				func(context.Context, domain.OrganizationID) (*domain.Organization, error) {
					return newOrganization(t), nil
				})
			tx.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any()).Return(storage.ErrVersionConflict)
		})
	}

	_, err := svc.Rename(context.Background(), id, "New name")
	require.ErrorIs(t, err, storage.ErrVersionConflict)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_AddPlayer(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org := newOrganization(t)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil)
	})

	p, err := svc.AddPlayer(context.Background(), org.ID(), domain.PlayerParams{
		Name:        "Bruno Alves",
		Position:    "Defender",
		DateOfBirth: time.Date(1999, time.May, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, org.LeagueID(), p.LeagueID())

	_, ok := org.Player(p.ID())
	require.True(t, ok)
}

func TestService_CreatePlayerOption_Locked(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org, _ := newOrganizationWithOption(t, now.Add(time.Hour))
	require.NoError(t, org.Lock("audit", now.Add(-time.Hour)))
	playerID := org.Players()[0].ID()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
	})

	_, err := svc.CreatePlayerOption(context.Background(), org.ID(), organizations.CreateOptionRequest{
		PlayerID:    playerID,
		Title:       "Man of the match",
		Description: "Who decided the derby?",
	})
	require.ErrorIs(t, err, domain.ErrLockedOrganization)
}

func TestService_CreatePlayerOption(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org, _ := newOrganizationWithOption(t, now.Add(time.Hour))
	playerID := org.Players()[0].ID()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
				job, ok := args.(voting.LeaderboardJobArgs)
				require.True(t, ok, "unexpected job args %T", args)
				require.Equal(t, uuid.UUID(org.ID()), job.OrganizationID)
				require.Equal(t, now.AddDate(0, 1, 0), opts.ScheduledAt)

				return true, nil
			})
		tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil)
	})

	opt, err := svc.CreatePlayerOption(context.Background(), org.ID(), organizations.CreateOptionRequest{
		PlayerID:    playerID,
		Title:       "Man of the match",
		Description: "Who decided the derby?",
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), opt.Votes())
	require.Equal(t, "Who decided the derby?", opt.Description())
	require.Equal(t, now.AddDate(0, 1, 0), opt.ExpiresAt())
	require.Len(t, org.PlayerOptions(), 2)
}

func TestService_CreatePlayerOption_BlankDescription(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org, _ := newOrganizationWithOption(t, now.Add(time.Hour))
	playerID := org.Players()[0].ID()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
	})

	_, err := svc.CreatePlayerOption(context.Background(), org.ID(), organizations.CreateOptionRequest{
		PlayerID:    playerID,
		Title:       "Man of the match",
		Description: "   ",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Len(t, org.PlayerOptions(), 1)
}

func TestService_RemovePlayerOption(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		ctrl, st, svc := newTestService(t)

		org, opt := newOrganizationWithOption(t, now.Add(-time.Hour))
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
			expectRefreshJob(t, tx, opt)
			tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil)
		})

		require.NoError(t, svc.RemovePlayerOption(context.Background(), org.ID(), opt.ID()))
		require.Empty(t, org.PlayerOptions())
	})

	t.Run("still active", func(t *testing.T) {
		ctrl, st, svc := newTestService(t)

		org, opt := newOrganizationWithOption(t, now.Add(time.Hour))
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		})

		err := svc.RemovePlayerOption(context.Background(), org.ID(), opt.ID())
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("unknown option", func(t *testing.T) {
		ctrl, st, svc := newTestService(t)

		org, _ := newOrganizationWithOption(t, now.Add(-time.Hour))
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		})

		err := svc.RemovePlayerOption(context.Background(), org.ID(), domain.NewPlayerOptionID())
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestService_ExpirePlayerOption(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org, opt := newOrganizationWithOption(t, now.Add(time.Hour))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		expectRefreshJob(t, tx, opt)
		tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil)
	})

	require.NoError(t, svc.ExpirePlayerOption(context.Background(), org.ID(), opt.ID()))

	expired, ok := org.PlayerOption(opt.ID())
	require.True(t, ok)
	require.True(t, expired.IsExpired(now))
}

func TestService_ExtendPlayerOptionExpiry(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org, opt := newOrganizationWithOption(t, now.Add(time.Hour))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		expectExpiryJob(t, tx, opt.ID(), now.Add(48*time.Hour))
		tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil)
	})

	extended, err := svc.ExtendPlayerOptionExpiry(context.Background(), org.ID(), opt.ID(), now.Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, now.Add(48*time.Hour), extended.ExpiresAt())
}

func TestService_ExtendPlayerOptionExpiry_Expired(t *testing.T) {
	ctrl, st, svc := newTestService(t)

	org, opt := newOrganizationWithOption(t, now.Add(-time.Hour))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
	})

	_, err := svc.ExtendPlayerOptionExpiry(context.Background(), org.ID(), opt.ID(), now.Add(48*time.Hour))
	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestService_RemovePlayer(t *testing.T) {
	t.Run("featured by an active option", func(t *testing.T) {
		ctrl, st, svc := newTestService(t)

		org, _ := newOrganizationWithOption(t, now.Add(time.Hour))
		playerID := org.Players()[0].ID()
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
		})

		err := svc.RemovePlayer(context.Background(), org.ID(), playerID)
		require.ErrorIs(t, err, domain.ErrInvalidState)
		require.Len(t, org.Players(), 1)
	})

	t.Run("option expired", func(t *testing.T) {
		ctrl, st, svc := newTestService(t)

		org, _ := newOrganizationWithOption(t, now.Add(-time.Hour))
		playerID := org.Players()[0].ID()
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)
			tx.EXPECT().UpdateOrganization(gomock.Any(), org).Return(nil)
		})

		require.NoError(t, svc.RemovePlayer(context.Background(), org.ID(), playerID))
		require.Empty(t, org.Players())
	})
}

func TestService_Statistics(t *testing.T) {
	_, st, svc := newTestService(t)

	org, opt := newOrganizationWithOption(t, now.Add(time.Hour))
	st.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)

	stats, err := svc.Statistics(context.Background(), org.ID())
	require.NoError(t, err)
	require.Equal(t, 1, stats.ActivePlayerOptions)
	require.Equal(t, int64(0), stats.TotalVotes)
	require.NotNil(t, stats.MostPopular)
	require.Equal(t, opt.ID(), stats.MostPopular.ID())
	require.Equal(t, 1, stats.ActivePlayers)
	require.InDelta(t, 27.0, stats.AveragePlayerAge, 0.001)
	require.Equal(t, int64(10_000_000), stats.TotalMarketValue)
}

func TestService_Statistics_NoActiveOption(t *testing.T) {
	_, st, svc := newTestService(t)

	org, _ := newOrganizationWithOption(t, now.Add(-time.Hour))
	st.EXPECT().OrganizationByID(gomock.Any(), org.ID()).Return(org, nil)

	stats, err := svc.Statistics(context.Background(), org.ID())
	require.NoError(t, err)
	require.Equal(t, 0, stats.ActivePlayerOptions)
	require.Nil(t, stats.MostPopular)
	require.Empty(t, stats.Trending)
}

package domain_test

import (
	"fanvote/pkg/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPopularityFor_Boundaries(t *testing.T) {
	cases := []struct {
		votes int64
		want  domain.PopularityLevel
	}{
		{0, domain.PopularityNew},
		{9, domain.PopularityNew},
		{10, domain.PopularityActive},
		{49, domain.PopularityActive},
		{50, domain.PopularityTrending},
		{99, domain.PopularityTrending},
		{100, domain.PopularityPopular},
		{499, domain.PopularityPopular},
		{500, domain.PopularityVeryPopular},
		{999, domain.PopularityVeryPopular},
		{1000, domain.PopularityViral},
	}
	for _, c := range cases {
		require.Equal(t, c.want, domain.PopularityFor(c.votes), "votes=%d", c.votes)
	}
}

func TestNewPlayerOption_Validation(t *testing.T) {
	orgID, playerID := domain.NewOrganizationID(), domain.NewPlayerID()

	cases := []struct {
		name        string
		title, desc string
		expiresAt   *time.Time
	}{
		{"blank title", "  ", "desc", nil},
		{"long title", strings.Repeat("a", domain.MaxTitleLength+1), "desc", nil},
		{"blank description", "title", "", nil},
		{"long description", "title", strings.Repeat("a", domain.MaxDescriptionLength+1), nil},
		{"expiry in the past", "title", "desc", ptr(now.Add(-time.Minute))},
		{"expiry equal to now", "title", "desc", ptr(now)},
		{"expiry beyond a year", "title", "desc", ptr(now.AddDate(1, 0, 1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := domain.NewPlayerOption(c.title, c.desc, playerID, orgID, c.expiresAt, now)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := domain.NewPlayerOption("title", "desc", domain.PlayerID{}, orgID, nil, now)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewPlayerOption_Defaults(t *testing.T) {
	opt, err := domain.NewPlayerOption(" Captain ", " armband ", domain.NewPlayerID(), domain.NewOrganizationID(), nil, now)
	require.NoError(t, err)
	require.Equal(t, "Captain", opt.Title())
	require.Equal(t, "armband", opt.Description())
	require.Equal(t, now.AddDate(0, 1, 0), opt.ExpiresAt())
	require.Zero(t, opt.Votes())
	require.Zero(t, opt.Version())
	require.True(t, opt.IsActive(now))

	exactlyOneYear := now.AddDate(1, 0, 0)
	opt, err = domain.NewPlayerOption("t", "d", domain.NewPlayerID(), domain.NewOrganizationID(), &exactlyOneYear, now)
	require.NoError(t, err)
	require.Equal(t, exactlyOneYear, opt.ExpiresAt())
}

func TestPlayerOption_DerivedRules(t *testing.T) {
	expires := now.Add(5 * 24 * time.Hour)

	opt := newOption(t, 60, now.Add(-2*24*time.Hour), expires)
	require.True(t, opt.IsActive(now))
	require.False(t, opt.IsExpired(now))
	require.True(t, opt.IsTrending(now))
	require.False(t, opt.IsPopular())
	require.InDelta(t, 30.0, opt.EngagementScore(now), 1e-9)
	require.True(t, opt.ShouldPromote(now))

	require.False(t, opt.IsActive(expires), "expiry instant is already expired")
	require.False(t, opt.IsTrending(expires))
	require.Zero(t, opt.EngagementScore(expires))
	require.False(t, opt.ShouldPromote(expires))

	young := newOption(t, 4, now.Add(-time.Hour), expires)
	require.InDelta(t, 4.0, young.EngagementScore(now), 1e-9, "age below one day counts as one day")

	slow := newOption(t, 100, now.Add(-40*24*time.Hour), expires)
	require.True(t, slow.IsPopular())
	require.True(t, slow.IsTrending(now))
	require.False(t, slow.ShouldPromote(now), "2.5 votes a day is not enough")
}

func TestPlayerOption_AddAndRemoveVote(t *testing.T) {
	opt := newOption(t, 0, now, now.Add(time.Hour))

	err := opt.RemoveVote(now)
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
	require.Zero(t, opt.Votes())

	require.NoError(t, opt.AddVote(now))
	require.NoError(t, opt.AddVote(now))
	require.NoError(t, opt.RemoveVote(now))
	require.EqualValues(t, 1, opt.Votes())

	later := now.Add(2 * time.Hour)
	require.ErrorIs(t, opt.AddVote(later), domain.ErrExpiredOption)
	require.ErrorIs(t, opt.RemoveVote(later), domain.ErrExpiredOption)
	require.EqualValues(t, 1, opt.Votes())
}

func TestPlayerOption_ExtendExpiry(t *testing.T) {
	current := now.Add(24 * time.Hour)

	opt := newOption(t, 0, now, current)
	require.ErrorIs(t, opt.ExtendExpiry(current, now), domain.ErrValidation)
	require.ErrorIs(t, opt.ExtendExpiry(current.Add(-time.Minute), now), domain.ErrValidation)
	require.ErrorIs(t, opt.ExtendExpiry(now.AddDate(1, 0, 0).Add(time.Second), now), domain.ErrValidation)

	require.NoError(t, opt.ExtendExpiry(now.AddDate(1, 0, 0), now))
	require.Equal(t, now.AddDate(1, 0, 0), opt.ExpiresAt())

	expired := newOption(t, 0, now.Add(-48*time.Hour), now.Add(-time.Hour))
	require.ErrorIs(t, expired.ExtendExpiry(now.Add(time.Hour), now), domain.ErrInvalidState)
}

func TestPlayerOption_ExpireNow(t *testing.T) {
	opt := newOption(t, 3, now.Add(-time.Hour), now.Add(time.Hour))

	require.NoError(t, opt.ExpireNow(now))
	require.Equal(t, now, opt.ExpiresAt())
	require.True(t, opt.IsExpired(now))

	require.ErrorIs(t, opt.ExpireNow(now), domain.ErrInvalidState, "expiring twice is an error")
}

func TestPlayerOption_UpdateDetails(t *testing.T) {
	opt := newOption(t, 0, now, now.Add(time.Hour))

	require.ErrorIs(t, opt.UpdateDetails("", "d", now), domain.ErrValidation)
	require.NoError(t, opt.UpdateDetails("New title", "New description", now))
	require.Equal(t, "New title", opt.Title())

	require.ErrorIs(t, opt.UpdateDetails("t", "d", now.Add(time.Hour)), domain.ErrInvalidState)
}

func TestRestorePlayerOption_RejectsNegativeVotes(t *testing.T) {
	_, err := domain.RestorePlayerOption(domain.PlayerOptionState{
		ID:             domain.NewPlayerOptionID(),
		OrganizationID: domain.NewOrganizationID(),
		PlayerID:       domain.NewPlayerID(),
		Votes:          -1,
	})
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
}

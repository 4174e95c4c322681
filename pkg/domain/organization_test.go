package domain_test

import (
	"fanvote/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewOrganization_RequiresValueObjects(t *testing.T) {
	venue, err := domain.NewVenue("Ground", "", 0)
	require.NoError(t, err)
	colors, err := domain.NewTeamColors("#000000", "")
	require.NoError(t, err)
	media, social := domain.MediaAssets{}, domain.SocialLinks{}

	base := domain.OrganizationParams{
		LeagueID:    domain.NewLeagueID(),
		Name:        "Club",
		Venue:       &venue,
		MediaAssets: &media,
		SocialLinks: &social,
		TeamColors:  &colors,
	}

	cases := map[string]func(p *domain.OrganizationParams){
		"no venue":         func(p *domain.OrganizationParams) { p.Venue = nil },
		"no media":         func(p *domain.OrganizationParams) { p.MediaAssets = nil },
		"no social links":  func(p *domain.OrganizationParams) { p.SocialLinks = nil },
		"no colors":        func(p *domain.OrganizationParams) { p.TeamColors = nil },
		"blank name":       func(p *domain.OrganizationParams) { p.Name = " " },
		"no league":        func(p *domain.OrganizationParams) { p.LeagueID = domain.LeagueID{} },
		"long short name":  func(p *domain.OrganizationParams) { p.TeamShortName = "ABCDEFGHIJK" },
		"formed in future": func(p *domain.OrganizationParams) { p.FormedYear = now.Year() + 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := base
			mutate(&p)
			_, err := domain.NewOrganization(p, now)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	org, err := domain.NewOrganization(base, now)
	require.NoError(t, err)
	require.False(t, org.IsLocked())
	require.Empty(t, org.PlayerOptions())
	require.Empty(t, org.Players())
}

func TestOrganization_LockBlocksStructuralChanges(t *testing.T) {
	org, playerID := newOrganizationWithPlayer(t)

	require.ErrorIs(t, org.Lock("  ", now), domain.ErrValidation)
	require.NoError(t, org.Lock("transfer window closed", now))
	require.True(t, org.IsLocked())
	require.Equal(t, "transfer window closed", org.LockReason())
	require.Equal(t, now, org.LockedAt())
	require.False(t, org.CanCreatePlayerOptions())
	require.ErrorIs(t, org.Lock("again", now), domain.ErrInvalidState)

	_, err := org.CreatePlayerOption("Captain", "Pick one", playerID, nil, now)
	require.ErrorIs(t, err, domain.ErrLockedOrganization)
	require.ErrorIs(t, org.AddPlayer(newPlayer(t, org.LeagueID(), now.AddDate(-20, 0, 0))), domain.ErrLockedOrganization)
	require.ErrorIs(t, org.RemovePlayer(playerID, now), domain.ErrLockedOrganization)
	require.Empty(t, org.PlayerOptions())
	require.Len(t, org.Players(), 1)

	require.NoError(t, org.Unlock())
	require.ErrorIs(t, org.Unlock(), domain.ErrInvalidState)
	require.Empty(t, org.LockReason())

	opt, err := org.CreatePlayerOption("Captain", "Pick one", playerID, nil, now)
	require.NoError(t, err)
	require.Equal(t, org.ID(), opt.OrganizationID())
}

func TestOrganization_CreatePlayerOptionRequiresOwnPlayer(t *testing.T) {
	org := newOrganization(t)

	_, err := org.CreatePlayerOption("Captain", "Pick one", domain.NewPlayerID(), nil, now)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrganization_ChildrenAreCopies(t *testing.T) {
	org, playerID := newOrganizationWithPlayer(t)

	opt, err := org.CreatePlayerOption("Captain", "Pick one", playerID, nil, now)
	require.NoError(t, err)
	require.NoError(t, opt.AddVote(now))

	stored, ok := org.PlayerOption(opt.ID())
	require.True(t, ok)
	require.Zero(t, stored.Votes(), "mutating a returned copy must not leak into the aggregate")
}

func TestOrganization_RemovePlayerOption(t *testing.T) {
	org, playerID := newOrganizationWithPlayer(t)

	opt, err := org.CreatePlayerOption("Captain", "Pick one", playerID, ptr(now.Add(time.Hour)), now)
	require.NoError(t, err)

	require.ErrorIs(t, org.RemovePlayerOption(opt.ID(), now), domain.ErrInvalidState)
	require.ErrorIs(t, org.RemovePlayerOption(domain.NewPlayerOptionID(), now), domain.ErrNotFound)

	require.NoError(t, org.ExpirePlayerOption(opt.ID(), now))
	require.NoError(t, org.RemovePlayerOption(opt.ID(), now))
	require.Empty(t, org.PlayerOptions())
}

func TestOrganization_PlayerManagement(t *testing.T) {
	org, playerID := newOrganizationWithPlayer(t)

	p, ok := org.Player(playerID)
	require.True(t, ok)
	require.ErrorIs(t, org.AddPlayer(&p), domain.ErrInvalidState)

	other := newPlayer(t, domain.NewLeagueID(), now.AddDate(-20, 0, 0))
	require.ErrorIs(t, org.AddPlayer(other), domain.ErrValidation)

	require.ErrorIs(t, org.RemovePlayer(domain.NewPlayerID(), now), domain.ErrNotFound)
	require.NoError(t, org.RemovePlayer(playerID, now))
	require.Empty(t, org.Players())
	require.False(t, org.CanCreatePlayerOptions())
}

func TestOrganization_RemovePlayerFeaturedByOption(t *testing.T) {
	org, playerID := newOrganizationWithPlayer(t)

	opt, err := org.CreatePlayerOption("Captain", "Pick one", playerID, ptr(now.Add(time.Hour)), now)
	require.NoError(t, err)

	require.ErrorIs(t, org.RemovePlayer(playerID, now), domain.ErrInvalidState)
	require.Len(t, org.Players(), 1)

	// an expired option no longer holds the player
	require.NoError(t, org.RemovePlayer(playerID, now.Add(time.Hour)))
	require.Empty(t, org.Players())

	kept, ok := org.PlayerOption(opt.ID())
	require.True(t, ok)
	require.Equal(t, playerID, kept.PlayerID())
}

func TestOrganization_Statistics(t *testing.T) {
	org := newOrganization(t)

	young := newPlayer(t, org.LeagueID(), now.AddDate(-20, 0, 0))
	prime := newPlayer(t, org.LeagueID(), now.AddDate(-27, 0, 0))
	veteran := newPlayer(t, org.LeagueID(), now.AddDate(-34, 0, 0))
	for _, p := range []*domain.Player{young, prime, veteran} {
		require.NoError(t, org.AddPlayer(p))
	}
	require.NoError(t, org.SetPlayerActive(veteran.ID(), false))

	require.Equal(t, 2, org.ActivePlayersCount())
	require.InDelta(t, 27.0, org.AveragePlayerAge(now), 1e-9)
	require.EqualValues(t, 12_000_000, org.TotalMarketValue(now))

	first, err := org.CreatePlayerOption("First", "d", young.ID(), ptr(now.Add(48*time.Hour)), now)
	require.NoError(t, err)
	second, err := org.CreatePlayerOption("Second", "d", prime.ID(), ptr(now.Add(48*time.Hour)), now)
	require.NoError(t, err)
	short, err := org.CreatePlayerOption("Short", "d", prime.ID(), ptr(now.Add(time.Hour)), now)
	require.NoError(t, err)

	state := org.State()
	votes := map[domain.PlayerOptionID]int64{first.ID(): 60, second.ID(): 60, short.ID(): 500}
	for i := range state.PlayerOptions {
		state.PlayerOptions[i].Votes = votes[state.PlayerOptions[i].ID]
	}
	org, err = domain.RestoreOrganization(state)
	require.NoError(t, err)

	later := now.Add(2 * time.Hour)
	require.Equal(t, 2, org.ActivePlayerOptionsCount(later))
	require.EqualValues(t, 620, org.TotalVotes(), "expired options still count")

	best, ok := org.MostPopularPlayerOption(later)
	require.True(t, ok)
	require.Equal(t, first.ID(), best.ID(), "ties go to the option created first")

	trending := org.TrendingPlayerOptions(later)
	require.Len(t, trending, 2)
	require.Equal(t, first.ID(), trending[0].ID())
	require.Equal(t, second.ID(), trending[1].ID())

	_, ok = newOrganization(t).MostPopularPlayerOption(now)
	require.False(t, ok)
	require.Zero(t, newOrganization(t).AveragePlayerAge(now))
}

func TestOrganization_DescriptiveUpdates(t *testing.T) {
	org := newOrganization(t)

	require.ErrorIs(t, org.Rename(""), domain.ErrValidation)
	require.NoError(t, org.Rename("Riverside United"))
	require.Equal(t, "Riverside United", org.Name())

	require.NoError(t, org.UpdateDescription("Founded by dock workers."))
	require.Equal(t, "Founded by dock workers.", org.Description())

	require.ErrorIs(t, org.ReplaceVenue(domain.Venue{}), domain.ErrValidation)
	venue, err := domain.NewVenue("New Ground", "Porto", 30000)
	require.NoError(t, err)
	require.NoError(t, org.ReplaceVenue(venue))
	require.Equal(t, "Porto", org.Venue().City())

	require.ErrorIs(t, org.ReplaceTeamColors(domain.TeamColors{}), domain.ErrValidation)
}

func TestRestoreOrganization_RoundTrip(t *testing.T) {
	org, playerID := newOrganizationWithPlayer(t)
	_, err := org.CreatePlayerOption("Captain", "Pick one", playerID, nil, now)
	require.NoError(t, err)
	require.NoError(t, org.Lock("season over", now))

	restored, err := domain.RestoreOrganization(org.State())
	require.NoError(t, err)
	require.Equal(t, org.State(), restored.State())

	state := org.State()
	state.PlayerOptions[0].OrganizationID = domain.NewOrganizationID()
	_, err = domain.RestoreOrganization(state)
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
}

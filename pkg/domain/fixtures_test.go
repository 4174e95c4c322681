package domain_test

import (
	"fanvote/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newOrganization(t *testing.T) *domain.Organization {
	t.Helper()

	venue, err := domain.NewVenue("Riverside Park", "Lisbon", 42000)
	require.NoError(t, err)
	media, err := domain.NewMediaAssets("https://cdn.example.com/logo.png", "", "")
	require.NoError(t, err)
	social, err := domain.NewSocialLinks(domain.SocialLinksParams{Website: "https://club.example.com"})
	require.NoError(t, err)
	colors, err := domain.NewTeamColors("#112233", "#ffffff")
	require.NoError(t, err)

	org, err := domain.NewOrganization(domain.OrganizationParams{
		LeagueID:      domain.NewLeagueID(),
		Name:          "Riverside FC",
		TeamShortName: "RFC",
		FormedYear:    1921,
		Sport:         "football",
		Venue:         &venue,
		MediaAssets:   &media,
		SocialLinks:   &social,
		TeamColors:    &colors,
	}, now)
	require.NoError(t, err)

	return org
}

func newPlayer(t *testing.T, leagueID domain.LeagueID, dob time.Time) *domain.Player {
	t.Helper()

	p, err := domain.NewPlayer(domain.PlayerParams{
		LeagueID:    leagueID,
		Name:        "Rui Costa",
		Position:    "Midfielder",
		DateOfBirth: dob,
	}, now)
	require.NoError(t, err)

	return p
}

// newOrganizationWithPlayer returns an organization holding one 25 year old
// player.
func newOrganizationWithPlayer(t *testing.T) (*domain.Organization, domain.PlayerID) {
	t.Helper()

	org := newOrganization(t)
	p := newPlayer(t, org.LeagueID(), now.AddDate(-25, 0, 0))
	require.NoError(t, org.AddPlayer(p))

	return org, p.ID()
}

// newOption builds an option with the given vote count, created at
// createdAt and expiring at expiresAt.
func newOption(t *testing.T, votes int64, createdAt, expiresAt time.Time) *domain.PlayerOption {
	t.Helper()

	opt, err := domain.RestorePlayerOption(domain.PlayerOptionState{
		ID:             domain.NewPlayerOptionID(),
		OrganizationID: domain.NewOrganizationID(),
		PlayerID:       domain.NewPlayerID(),
		Title:          "Captain for the derby",
		Description:    "Who should wear the armband?",
		Votes:          votes,
		CreatedAt:      createdAt,
		ExpiresAt:      expiresAt,
		Version:        1,
	})
	require.NoError(t, err)

	return opt
}

func newBudget(t *testing.T, userID domain.UserID, orgID domain.OrganizationID, votes int64) *domain.VoteBudget {
	t.Helper()

	b, err := domain.NewVoteBudget(userID, orgID, votes, now)
	require.NoError(t, err)

	return b
}

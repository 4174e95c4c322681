package domain_test

import (
	"fanvote/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCastVote_SingleVoteBudget(t *testing.T) {
	userID := domain.NewUserID()
	option := newOption(t, 0, now, now.Add(5*24*time.Hour))
	budget := newBudget(t, userID, option.OrganizationID(), 1)

	vote, err := domain.CastVote(userID, option, budget, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, option.Votes())
	require.Zero(t, budget.VotesRemaining())
	require.Equal(t, option.ID(), vote.PlayerOptionID())
	require.Equal(t, userID, vote.UserID())
	require.Equal(t, option.OrganizationID(), vote.OrganizationID())

	_, err = domain.CastVote(userID, option, budget, now)
	require.ErrorIs(t, err, domain.ErrInsufficientBudget)
	require.EqualValues(t, 1, option.Votes())
	require.Zero(t, budget.VotesRemaining())
}

func TestCastVote_ExpiredOptionLeavesStateUnchanged(t *testing.T) {
	userID := domain.NewUserID()
	option := newOption(t, 7, now.Add(-48*time.Hour), now.Add(-time.Hour))
	budget := newBudget(t, userID, option.OrganizationID(), 3)

	_, err := domain.CastVote(userID, option, budget, now)
	require.ErrorIs(t, err, domain.ErrExpiredOption)
	require.EqualValues(t, 7, option.Votes())
	require.EqualValues(t, 3, budget.VotesRemaining())
}

func TestCastVote_WithoutBudget(t *testing.T) {
	option := newOption(t, 0, now, now.Add(time.Hour))

	_, err := domain.CastVote(domain.NewUserID(), option, nil, now)
	require.ErrorIs(t, err, domain.ErrInsufficientBudget)
}

func TestCastVote_ForeignBudget(t *testing.T) {
	userID := domain.NewUserID()
	option := newOption(t, 0, now, now.Add(time.Hour))
	budget := newBudget(t, userID, domain.NewOrganizationID(), 3)

	_, err := domain.CastVote(userID, option, budget, now)
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
	require.EqualValues(t, 3, budget.VotesRemaining())
}

func TestCastThenRetractRoundTrip(t *testing.T) {
	userID := domain.NewUserID()
	option := newOption(t, 12, now.Add(-time.Hour), now.Add(time.Hour))
	budget := newBudget(t, userID, option.OrganizationID(), 4)

	vote, err := domain.CastVote(userID, option, budget, now)
	require.NoError(t, err)
	require.NoError(t, domain.RetractVote(vote, option, budget, now))

	require.EqualValues(t, 12, option.Votes())
	require.EqualValues(t, 4, budget.VotesRemaining())
}

func TestRetractVote_Mismatch(t *testing.T) {
	userID := domain.NewUserID()
	option := newOption(t, 1, now, now.Add(time.Hour))
	budget := newBudget(t, userID, option.OrganizationID(), 0)

	vote, err := domain.NewVote(userID, option.OrganizationID(), domain.NewPlayerOptionID(), now)
	require.NoError(t, err)
	require.ErrorIs(t, domain.RetractVote(vote, option, budget, now), domain.ErrInvariantViolation)

	vote, err = domain.NewVote(userID, option.OrganizationID(), option.ID(), now)
	require.NoError(t, err)
	require.ErrorIs(t, domain.RetractVote(vote, option, budget, now.Add(time.Hour)), domain.ErrExpiredOption)
	require.EqualValues(t, 1, option.Votes())
	require.Zero(t, budget.VotesRemaining())
}

func TestRedeemCode_CreditsExactlyOnce(t *testing.T) {
	userID := domain.NewUserID()
	orgID := domain.NewOrganizationID()
	code, err := domain.NewCode(orgID, "WELCOME50", 50, time.Time{}, now)
	require.NoError(t, err)

	budget, err := domain.RedeemCode(code, nil, userID, now)
	require.NoError(t, err)
	require.True(t, budget.IsNew(), "budget is created on first credit")
	require.EqualValues(t, 50, budget.VotesRemaining())
	require.Equal(t, orgID, budget.OrganizationID())
	require.True(t, code.IsRedeemed())
	require.Equal(t, userID, code.RedeemerID())
	require.Equal(t, now, code.RedeemedAt())

	_, err = domain.RedeemCode(code, budget, userID, now)
	require.ErrorIs(t, err, domain.ErrAlreadyRedeemed)
	require.EqualValues(t, 50, budget.VotesRemaining())
}

func TestRedeemCode_ExistingBudget(t *testing.T) {
	userID := domain.NewUserID()
	orgID := domain.NewOrganizationID()
	code, err := domain.NewCode(orgID, "BONUS0010", 10, time.Time{}, now)
	require.NoError(t, err)
	budget := newBudget(t, userID, orgID, 3)

	got, err := domain.RedeemCode(code, budget, userID, now)
	require.NoError(t, err)
	require.Same(t, budget, got)
	require.EqualValues(t, 13, budget.VotesRemaining())
}

func TestRedeemCode_Expired(t *testing.T) {
	code, err := domain.NewCode(domain.NewOrganizationID(), "LATECODE", 10, now.Add(time.Minute), now)
	require.NoError(t, err)

	_, err = domain.RedeemCode(code, nil, domain.NewUserID(), now.Add(time.Minute))
	require.ErrorIs(t, err, domain.ErrExpired)
	require.False(t, code.IsRedeemed())
}

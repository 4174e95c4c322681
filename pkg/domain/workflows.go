package domain

import (
	"fanvote/pkg/serrors"
	"time"
)

// CastVote spends one vote of budget on option and returns the new vote
// record. Option and budget are changed together or not at all; persisting
// the three results atomically is up to the caller. A nil budget means the
// user never received votes for the organization.
func CastVote(userID UserID, option *PlayerOption, budget *VoteBudget, now time.Time) (*Vote, error) {
	if option == nil {
		return nil, invalid("player option is required")
	}
	if !option.IsActive(now) {
		return nil, serrors.With(ErrExpiredOption, "player option %s is not active", option.id)
	}
	if budget == nil {
		return nil, serrors.With(ErrInsufficientBudget, "user %s has no votes for organization %s",
			userID, option.organizationID)
	}
	if budget.userID != userID || budget.organizationID != option.organizationID {
		return nil, violation("vote budget %s does not belong to user %s and organization %s",
			budget.id, userID, option.organizationID)
	}

	vote, err := NewVote(userID, option.organizationID, option.id, now)
	if err != nil {
		return nil, err
	}

	before := budget.updatedAt
	if err := budget.UseVote(now); err != nil {
		return nil, err
	}
	if err := option.AddVote(now); err != nil {
		budget.votesRemaining++
		budget.updatedAt = before

		return nil, err
	}

	return vote, nil
}

// RetractVote undoes a vote: the option loses one vote and the budget gets
// it back. The caller deletes the vote record in the same unit of work.
func RetractVote(vote *Vote, option *PlayerOption, budget *VoteBudget, now time.Time) error {
	switch {
	case vote == nil || option == nil || budget == nil:
		return invalid("vote, player option and budget are required")
	case vote.playerOptionID != option.id:
		return violation("vote %s is not for player option %s", vote.id, option.id)
	case budget.userID != vote.userID || budget.organizationID != vote.organizationID:
		return violation("vote budget %s does not match vote %s", budget.id, vote.id)
	}

	if err := option.RemoveVote(now); err != nil {
		return err
	}
	if err := budget.AddVotes(1, now); err != nil {
		option.votes++

		return err
	}

	return nil
}

// RedeemCode marks code as redeemed by redeemerID and credits its votes to
// budget, creating the budget when nil. The returned budget must be stored
// together with the code.
func RedeemCode(code *Code, budget *VoteBudget, redeemerID UserID, now time.Time) (*VoteBudget, error) {
	if code == nil {
		return nil, invalid("code is required")
	}
	if err := requireID("redeemer id", redeemerID); err != nil {
		return nil, err
	}
	if code.redeemed {
		return nil, serrors.With(ErrAlreadyRedeemed, "code %s was already redeemed", code.id)
	}
	if code.IsExpired(now) {
		return nil, serrors.With(ErrExpired, "code %s expired at %s", code.id, code.expiresAt.Format(time.RFC3339))
	}

	if budget == nil {
		var err error
		if budget, err = NewVoteBudget(redeemerID, code.organizationID, 0, now); err != nil {
			return nil, err
		}
	} else if budget.userID != redeemerID || budget.organizationID != code.organizationID {
		return nil, violation("vote budget %s does not belong to user %s and organization %s",
			budget.id, redeemerID, code.organizationID)
	}

	if err := budget.AddVotes(code.votesAwarded, now); err != nil {
		return nil, err
	}
	code.markRedeemed(redeemerID, now)

	return budget, nil
}

package voting

import (
	"context"
	"fanvote/pkg/domain"
	"fanvote/pkg/leaderboard"
)

// Service runs the vote workflows. Each call is one atomic unit of work:
// the option count, the budget balance and the vote record change together
// or not at all.
type Service interface {
	// CastVote spends one vote of the user's budget for the option's
	// organization on the option.
	CastVote(ctx context.Context, userID domain.UserID, optionID domain.PlayerOptionID) (*domain.Vote, error)
	// RemoveVote deletes a vote and gives its unit back to the budget.
	RemoveVote(ctx context.Context, voteID domain.VoteID) error
	// Standings returns the top n options of an organization from the
	// leaderboard.
	Standings(ctx context.Context, orgID domain.OrganizationID, n int) ([]leaderboard.Entry, error)
}

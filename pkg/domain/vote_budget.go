package domain

import (
	"fanvote/pkg/serrors"
	"time"
)

// VoteBudget is the number of votes one user may still cast for one
// organization. The balance can never go negative.
type VoteBudget struct {
	id             VoteBudgetID
	userID         UserID
	organizationID OrganizationID
	votesRemaining int64
	createdAt      time.Time
	updatedAt      time.Time
	version        int64
}

// NewVoteBudget opens a ledger for (userID, organizationID) holding initial
// votes.
func NewVoteBudget(userID UserID, organizationID OrganizationID, initial int64, now time.Time) (*VoteBudget, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	if err := requireID("organization id", organizationID); err != nil {
		return nil, err
	}
	if initial < 0 {
		return nil, invalid("initial votes must not be negative")
	}

	return &VoteBudget{
		id:             NewVoteBudgetID(),
		userID:         userID,
		organizationID: organizationID,
		votesRemaining: initial,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func (b *VoteBudget) ID() VoteBudgetID               { return b.id }
func (b *VoteBudget) UserID() UserID                 { return b.userID }
func (b *VoteBudget) OrganizationID() OrganizationID { return b.organizationID }
func (b *VoteBudget) VotesRemaining() int64          { return b.votesRemaining }
func (b *VoteBudget) CreatedAt() time.Time           { return b.createdAt }
func (b *VoteBudget) UpdatedAt() time.Time           { return b.updatedAt }
func (b *VoteBudget) Version() int64                 { return b.version }

// IsNew reports whether the budget has not been stored yet.
func (b *VoteBudget) IsNew() bool { return b.version == 0 }

// UseVote spends one vote.
func (b *VoteBudget) UseVote(now time.Time) error {
	if b.votesRemaining <= 0 {
		return serrors.With(ErrInsufficientBudget, "no votes left for organization %s", b.organizationID)
	}
	b.votesRemaining--
	b.updatedAt = now

	return nil
}

// AddVotes credits n votes. n must be positive.
func (b *VoteBudget) AddVotes(n int64, now time.Time) error {
	if n <= 0 {
		return invalid("votes to add must be positive, got %d", n)
	}
	b.votesRemaining += n
	b.updatedAt = now

	return nil
}

// VoteBudgetState is the persisted form of a VoteBudget.
type VoteBudgetState struct {
	ID             VoteBudgetID
	UserID         UserID
	OrganizationID OrganizationID
	VotesRemaining int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

func (b *VoteBudget) State() VoteBudgetState {
	return VoteBudgetState{
		ID:             b.id,
		UserID:         b.userID,
		OrganizationID: b.organizationID,
		VotesRemaining: b.votesRemaining,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.updatedAt,
		Version:        b.version,
	}
}

func RestoreVoteBudget(s VoteBudgetState) (*VoteBudget, error) {
	if err := requireID("vote budget id", s.ID); err != nil {
		return nil, err
	}
	if err := requireID("user id", s.UserID); err != nil {
		return nil, err
	}
	if err := requireID("organization id", s.OrganizationID); err != nil {
		return nil, err
	}
	if s.VotesRemaining < 0 {
		return nil, violation("vote budget %s has negative balance", s.ID)
	}

	return &VoteBudget{
		id:             s.ID,
		userID:         s.UserID,
		organizationID: s.OrganizationID,
		votesRemaining: s.VotesRemaining,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		version:        s.Version,
	}, nil
}

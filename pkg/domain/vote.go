package domain

import "time"

// Vote records one budget unit spent on one option. It is never mutated;
// removing it is a compensating action handled by RetractVote.
type Vote struct {
	id             VoteID
	userID         UserID
	organizationID OrganizationID
	playerOptionID PlayerOptionID
	createdAt      time.Time
}

// NewVote builds a vote record. Use CastVote to create votes that debit a
// budget.
func NewVote(userID UserID, organizationID OrganizationID, optionID PlayerOptionID, now time.Time) (*Vote, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	if err := requireID("organization id", organizationID); err != nil {
		return nil, err
	}
	if err := requireID("player option id", optionID); err != nil {
		return nil, err
	}

	return &Vote{
		id:             NewVoteID(),
		userID:         userID,
		organizationID: organizationID,
		playerOptionID: optionID,
		createdAt:      now,
	}, nil
}

func (v *Vote) ID() VoteID                     { return v.id }
func (v *Vote) UserID() UserID                 { return v.userID }
func (v *Vote) OrganizationID() OrganizationID { return v.organizationID }
func (v *Vote) PlayerOptionID() PlayerOptionID { return v.playerOptionID }
func (v *Vote) CreatedAt() time.Time           { return v.createdAt }

type VoteState struct {
	ID             VoteID
	UserID         UserID
	OrganizationID OrganizationID
	PlayerOptionID PlayerOptionID
	CreatedAt      time.Time
}

func (v *Vote) State() VoteState {
	return VoteState{
		ID:             v.id,
		UserID:         v.userID,
		OrganizationID: v.organizationID,
		PlayerOptionID: v.playerOptionID,
		CreatedAt:      v.createdAt,
	}
}

func RestoreVote(s VoteState) (*Vote, error) {
	if err := requireID("vote id", s.ID); err != nil {
		return nil, err
	}
	v, err := NewVote(s.UserID, s.OrganizationID, s.PlayerOptionID, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	v.id = s.ID

	return v, nil
}

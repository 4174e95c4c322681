package domain

import (
	"fanvote/pkg/serrors"

	"github.com/google/uuid"
)

// OrganizationID uniquely identifies an organization (a team).
type OrganizationID uuid.UUID

// LeagueID identifies the league an organization and its players belong to.
type LeagueID uuid.UUID

// PlayerID uniquely identifies a player.
type PlayerID uuid.UUID

// PlayerOptionID uniquely identifies a player option.
type PlayerOptionID uuid.UUID

// CodeID uniquely identifies a redeemable code.
type CodeID uuid.UUID

// UserID uniquely identifies a fan.
type UserID uuid.UUID

// VoteID uniquely identifies a vote record.
type VoteID uuid.UUID

// VoteBudgetID identifies the vote ledger of one user for one organization.
type VoteBudgetID uuid.UUID

func NewOrganizationID() OrganizationID { return OrganizationID(uuid.New()) }
func NewLeagueID() LeagueID             { return LeagueID(uuid.New()) }
func NewPlayerID() PlayerID             { return PlayerID(uuid.New()) }
func NewPlayerOptionID() PlayerOptionID { return PlayerOptionID(uuid.New()) }
func NewCodeID() CodeID                 { return CodeID(uuid.New()) }
func NewUserID() UserID                 { return UserID(uuid.New()) }
func NewVoteID() VoteID                 { return VoteID(uuid.New()) }
func NewVoteBudgetID() VoteBudgetID     { return VoteBudgetID(uuid.New()) }

func (id OrganizationID) String() string { return uuid.UUID(id).String() }
func (id LeagueID) String() string       { return uuid.UUID(id).String() }
func (id PlayerID) String() string       { return uuid.UUID(id).String() }
func (id PlayerOptionID) String() string { return uuid.UUID(id).String() }
func (id CodeID) String() string         { return uuid.UUID(id).String() }
func (id UserID) String() string         { return uuid.UUID(id).String() }
func (id VoteID) String() string         { return uuid.UUID(id).String() }
func (id VoteBudgetID) String() string   { return uuid.UUID(id).String() }

// ParseOrganizationID parses a textual UUID, rejecting the nil UUID.
func ParseOrganizationID(s string) (OrganizationID, error) {
	return parseID[OrganizationID]("organization id", s)
}

// ParseLeagueID parses a textual UUID, rejecting the nil UUID.
func ParseLeagueID(s string) (LeagueID, error) { return parseID[LeagueID]("league id", s) }

// ParsePlayerID parses a textual UUID, rejecting the nil UUID.
func ParsePlayerID(s string) (PlayerID, error) { return parseID[PlayerID]("player id", s) }

// ParsePlayerOptionID parses a textual UUID, rejecting the nil UUID.
func ParsePlayerOptionID(s string) (PlayerOptionID, error) {
	return parseID[PlayerOptionID]("player option id", s)
}

// ParseUserID parses a textual UUID, rejecting the nil UUID.
func ParseUserID(s string) (UserID, error) { return parseID[UserID]("user id", s) }

// ParseVoteID parses a textual UUID, rejecting the nil UUID.
func ParseVoteID(s string) (VoteID, error) { return parseID[VoteID]("vote id", s) }

func parseID[T ~[16]byte](name, s string) (T, error) {
	var zero T
	u, err := uuid.Parse(s)
	if err != nil {
		return zero, serrors.Wrap(ErrValidation, err, "invalid %s", name)
	}
	if u == uuid.Nil {
		return zero, invalid("%s must not be empty", name)
	}

	return T(u), nil
}

// requireID fails when id is the zero identifier.
func requireID[T ~[16]byte](name string, id T) error {
	var zero T
	if id == zero {
		return invalid("%s must not be empty", name)
	}

	return nil
}

package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxPlayerNameLength     = 100
	maxPlayerPositionLength = 50
)

// Player is a member of an organization's squad. Players are owned by their
// organization and only change through it.
type Player struct {
	id          PlayerID
	leagueID    LeagueID
	name        string
	position    string
	dateOfBirth time.Time
	active      bool
	createdAt   time.Time
}

// PlayerParams carries the input of NewPlayer.
type PlayerParams struct {
	LeagueID    LeagueID
	Name        string
	Position    string
	DateOfBirth time.Time
}

// NewPlayer validates params and returns an active player.
func NewPlayer(p PlayerParams, now time.Time) (*Player, error) {
	name := strings.TrimSpace(p.Name)
	position := strings.TrimSpace(p.Position)

	if err := requireID("league id", p.LeagueID); err != nil {
		return nil, err
	}
	switch {
	case name == "":
		return nil, invalid("player name is required")
	case utf8.RuneCountInString(name) > maxPlayerNameLength:
		return nil, invalid("player name must be at most %d characters", maxPlayerNameLength)
	case utf8.RuneCountInString(position) > maxPlayerPositionLength:
		return nil, invalid("player position must be at most %d characters", maxPlayerPositionLength)
	case p.DateOfBirth.IsZero() || !p.DateOfBirth.Before(now):
		return nil, invalid("player date of birth must be in the past")
	}

	return &Player{
		id:          NewPlayerID(),
		leagueID:    p.LeagueID,
		name:        name,
		position:    position,
		dateOfBirth: p.DateOfBirth,
		active:      true,
		createdAt:   now,
	}, nil
}

func (p *Player) ID() PlayerID           { return p.id }
func (p *Player) LeagueID() LeagueID     { return p.leagueID }
func (p *Player) Name() string           { return p.name }
func (p *Player) Position() string       { return p.position }
func (p *Player) DateOfBirth() time.Time { return p.dateOfBirth }
func (p *Player) IsActive() bool         { return p.active }
func (p *Player) CreatedAt() time.Time   { return p.createdAt }

// AgeAt returns the age in whole years at now.
func (p *Player) AgeAt(now time.Time) int {
	dob := p.dateOfBirth.In(now.Location())
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}

	return age
}

// MarketValueAt estimates the player's transfer value from their age:
//
//	under 21   2,000,000
//	21 to 24   5,000,000
//	25 to 29  10,000,000
//	30 to 33   4,000,000
//	34 and up  1,000,000
func (p *Player) MarketValueAt(now time.Time) int64 {
	switch age := p.AgeAt(now); {
	case age < 21:
		return 2_000_000
	case age < 25:
		return 5_000_000
	case age < 30:
		return 10_000_000
	case age < 34:
		return 4_000_000
	default:
		return 1_000_000
	}
}

// PlayerState is the persisted form of a Player.
type PlayerState struct {
	ID          PlayerID
	LeagueID    LeagueID
	Name        string
	Position    string
	DateOfBirth time.Time
	Active      bool
	CreatedAt   time.Time
}

// State returns the persisted form of p.
func (p *Player) State() PlayerState {
	return PlayerState{
		ID:          p.id,
		LeagueID:    p.leagueID,
		Name:        p.name,
		Position:    p.position,
		DateOfBirth: p.dateOfBirth,
		Active:      p.active,
		CreatedAt:   p.createdAt,
	}
}

// RestorePlayer rebuilds a player from storage.
func RestorePlayer(s PlayerState) (*Player, error) {
	if err := requireID("player id", s.ID); err != nil {
		return nil, err
	}
	if err := requireID("league id", s.LeagueID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Name) == "" {
		return nil, invalid("player name is required")
	}

	return &Player{
		id:          s.ID,
		leagueID:    s.LeagueID,
		name:        s.Name,
		position:    s.Position,
		dateOfBirth: s.DateOfBirth,
		active:      s.Active,
		createdAt:   s.CreatedAt,
	}, nil
}

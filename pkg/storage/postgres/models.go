package postgres

import (
	"database/sql"
	"encoding/json"
	"fanvote/pkg/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgOrganization struct {
	ID            uuid.UUID      `db:"id"`
	LeagueID      uuid.UUID      `db:"league_id"`
	Name          string         `db:"name"`
	TeamID        sql.NullString `db:"team_id"`
	TeamName      sql.NullString `db:"team_name"`
	TeamShortName sql.NullString `db:"team_short_name"`
	FormedYear    sql.NullInt32  `db:"formed_year"`
	Sport         sql.NullString `db:"sport"`
	Description   string         `db:"description"`

	Venue       json.RawMessage `db:"venue"`
	MediaAssets json.RawMessage `db:"media_assets"`
	SocialLinks json.RawMessage `db:"social_links"`
	TeamColors  json.RawMessage `db:"team_colors"`

	Locked     bool           `db:"locked"`
	LockReason sql.NullString `db:"lock_reason"`
	LockedAt   sql.NullTime   `db:"locked_at"`

	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	Version   int64        `db:"version"`
}

type pgVenue struct {
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Capacity int    `json:"capacity"`
}

type pgMediaAssets struct {
	LogoURL   string `json:"logoUrl,omitempty"`
	BannerURL string `json:"bannerUrl,omitempty"`
	BadgeURL  string `json:"badgeUrl,omitempty"`
}

type pgSocialLinks struct {
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

type pgTeamColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

func nullString(s string) sql.NullString { return sql.NullString{String: s, Valid: s != ""} }
func nullTime(t time.Time) sql.NullTime  { return sql.NullTime{Time: t, Valid: !t.IsZero()} }

func (p *PgOrganization) ToDomain(options []PgPlayerOption, players []PgPlayer) (*domain.Organization, error) {
	var (
		venue  pgVenue
		media  pgMediaAssets
		social pgSocialLinks
		colors pgTeamColors
	)
	for _, v := range []struct {
		raw json.RawMessage
		dst any
	}{{p.Venue, &venue}, {p.MediaAssets, &media}, {p.SocialLinks, &social}, {p.TeamColors, &colors}} {
		if err := json.Unmarshal(v.raw, v.dst); err != nil {
			return nil, fmt.Errorf("could not unmarshal organization %s: %w", p.ID, err)
		}
	}

	state := domain.OrganizationState{
		ID:            domain.OrganizationID(p.ID),
		LeagueID:      domain.LeagueID(p.LeagueID),
		Name:          p.Name,
		TeamID:        p.TeamID.String,
		TeamName:      p.TeamName.String,
		TeamShortName: p.TeamShortName.String,
		FormedYear:    int(p.FormedYear.Int32),
		Sport:         p.Sport.String,
		Description:   p.Description,
		Locked:        p.Locked,
		LockReason:    p.LockReason.String,
		LockedAt:      p.LockedAt.Time,
		CreatedAt:     p.CreatedAt,
		Version:       p.Version,
		PlayerOptions: make([]domain.PlayerOptionState, len(options)),
		Players:       make([]domain.PlayerState, len(players)),
	}

	var err error
	if state.Venue, err = domain.NewVenue(venue.Name, venue.City, venue.Capacity); err != nil {
		return nil, fmt.Errorf("could not restore venue of organization %s: %w", p.ID, err)
	}
	if state.MediaAssets, err = domain.NewMediaAssets(media.LogoURL, media.BannerURL, media.BadgeURL); err != nil {
		return nil, fmt.Errorf("could not restore media assets of organization %s: %w", p.ID, err)
	}
	if state.SocialLinks, err = domain.NewSocialLinks(domain.SocialLinksParams(social)); err != nil {
		return nil, fmt.Errorf("could not restore social links of organization %s: %w", p.ID, err)
	}
	if state.TeamColors, err = domain.NewTeamColors(colors.Primary, colors.Secondary); err != nil {
		return nil, fmt.Errorf("could not restore team colors of organization %s: %w", p.ID, err)
	}

	for i := range options {
		state.PlayerOptions[i] = options[i].state()
	}
	for i := range players {
		state.Players[i] = players[i].state()
	}

	return domain.RestoreOrganization(state)
}

func (p *PgOrganization) FromDomain(org *domain.Organization) error {
	s := org.State()

	venue, err := json.Marshal(pgVenue{Name: s.Venue.Name(), City: s.Venue.City(), Capacity: s.Venue.Capacity()})
	if err != nil {
		return fmt.Errorf("could not marshal venue: %w", err)
	}
	media, err := json.Marshal(pgMediaAssets{
		LogoURL:   s.MediaAssets.LogoURL(),
		BannerURL: s.MediaAssets.BannerURL(),
		BadgeURL:  s.MediaAssets.BadgeURL(),
	})
	if err != nil {
		return fmt.Errorf("could not marshal media assets: %w", err)
	}
	social, err := json.Marshal(pgSocialLinks(s.SocialLinks.Params()))
	if err != nil {
		return fmt.Errorf("could not marshal social links: %w", err)
	}
	colors, err := json.Marshal(pgTeamColors{Primary: s.TeamColors.Primary(), Secondary: s.TeamColors.Secondary()})
	if err != nil {
		return fmt.Errorf("could not marshal team colors: %w", err)
	}

	*p = PgOrganization{
		ID:            uuid.UUID(s.ID),
		LeagueID:      uuid.UUID(s.LeagueID),
		Name:          s.Name,
		TeamID:        nullString(s.TeamID),
		TeamName:      nullString(s.TeamName),
		TeamShortName: nullString(s.TeamShortName),
		FormedYear:    sql.NullInt32{Int32: int32(s.FormedYear), Valid: s.FormedYear != 0}, //nolint: gosec
		Sport:         nullString(s.Sport),
		Description:   s.Description,
		Venue:         venue,
		MediaAssets:   media,
		SocialLinks:   social,
		TeamColors:    colors,
		Locked:        s.Locked,
		LockReason:    nullString(s.LockReason),
		LockedAt:      nullTime(s.LockedAt),
		CreatedAt:     s.CreatedAt,
		Version:       s.Version,
	}

	return nil
}

type PgPlayer struct {
	Seq            int64     `db:"seq"             goqu:"skipinsert,skipupdate"`
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	LeagueID       uuid.UUID `db:"league_id"`
	Name           string    `db:"name"`
	Position       string    `db:"position"`
	DateOfBirth    time.Time `db:"date_of_birth"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
}

func (p *PgPlayer) state() domain.PlayerState {
	return domain.PlayerState{
		ID:          domain.PlayerID(p.ID),
		LeagueID:    domain.LeagueID(p.LeagueID),
		Name:        p.Name,
		Position:    p.Position,
		DateOfBirth: p.DateOfBirth,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func pgPlayersFromDomain(orgID domain.OrganizationID, players []domain.PlayerState) []PgPlayer {
	out := make([]PgPlayer, len(players))
	for i, s := range players {
		out[i] = PgPlayer{
			ID:             uuid.UUID(s.ID),
			OrganizationID: uuid.UUID(orgID),
			LeagueID:       uuid.UUID(s.LeagueID),
			Name:           s.Name,
			Position:       s.Position,
			DateOfBirth:    s.DateOfBirth,
			Active:         s.Active,
			CreatedAt:      s.CreatedAt,
		}
	}

	return out
}

type PgPlayerOption struct {
	Seq            int64        `db:"seq"             goqu:"skipinsert,skipupdate"`
	ID             uuid.UUID    `db:"id"`
	OrganizationID uuid.UUID    `db:"organization_id"`
	PlayerID       uuid.UUID    `db:"player_id"`
	Title          string       `db:"title"`
	Description    string       `db:"description"`
	Votes          int64        `db:"votes"`
	CreatedAt      time.Time    `db:"created_at"`
	ExpiresAt      time.Time    `db:"expires_at"`
	UpdatedAt      sql.NullTime `db:"updated_at"      goqu:"skipinsert"`
	Version        int64        `db:"version"`
}

func (p *PgPlayerOption) state() domain.PlayerOptionState {
	return domain.PlayerOptionState{
		ID:             domain.PlayerOptionID(p.ID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		PlayerID:       domain.PlayerID(p.PlayerID),
		Title:          p.Title,
		Description:    p.Description,
		Votes:          p.Votes,
		CreatedAt:      p.CreatedAt,
		ExpiresAt:      p.ExpiresAt,
		Version:        p.Version,
	}
}

func (p *PgPlayerOption) ToDomain() (*domain.PlayerOption, error) {
	return domain.RestorePlayerOption(p.state())
}

func (p *PgPlayerOption) FromDomain(s domain.PlayerOptionState) {
	*p = PgPlayerOption{
		ID:             uuid.UUID(s.ID),
		OrganizationID: uuid.UUID(s.OrganizationID),
		PlayerID:       uuid.UUID(s.PlayerID),
		Title:          s.Title,
		Description:    s.Description,
		Votes:          s.Votes,
		CreatedAt:      s.CreatedAt,
		ExpiresAt:      s.ExpiresAt,
		Version:        s.Version,
	}
}

type PgVoteBudget struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	VotesRemaining int64     `db:"votes_remaining"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	Version        int64     `db:"version"`
}

func (p *PgVoteBudget) ToDomain() (*domain.VoteBudget, error) {
	return domain.RestoreVoteBudget(domain.VoteBudgetState{
		ID:             domain.VoteBudgetID(p.ID),
		UserID:         domain.UserID(p.UserID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		VotesRemaining: p.VotesRemaining,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Version:        p.Version,
	})
}

func (p *PgVoteBudget) FromDomain(b *domain.VoteBudget) {
	s := b.State()
	*p = PgVoteBudget{
		ID:             uuid.UUID(s.ID),
		UserID:         uuid.UUID(s.UserID),
		OrganizationID: uuid.UUID(s.OrganizationID),
		VotesRemaining: s.VotesRemaining,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Version:        s.Version,
	}
}

type PgVote struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	PlayerOptionID uuid.UUID `db:"player_option_id"`
	CreatedAt      time.Time `db:"created_at"`
}

func (p *PgVote) ToDomain() (*domain.Vote, error) {
	return domain.RestoreVote(domain.VoteState{
		ID:             domain.VoteID(p.ID),
		UserID:         domain.UserID(p.UserID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		PlayerOptionID: domain.PlayerOptionID(p.PlayerOptionID),
		CreatedAt:      p.CreatedAt,
	})
}

func (p *PgVote) FromDomain(v *domain.Vote) {
	s := v.State()
	*p = PgVote{
		ID:             uuid.UUID(s.ID),
		UserID:         uuid.UUID(s.UserID),
		OrganizationID: uuid.UUID(s.OrganizationID),
		PlayerOptionID: uuid.UUID(s.PlayerOptionID),
		CreatedAt:      s.CreatedAt,
	}
}

type PgCode struct {
	ID             uuid.UUID     `db:"id"`
	OrganizationID uuid.UUID     `db:"organization_id"`
	Value          string        `db:"value"`
	VotesAwarded   int64         `db:"votes_awarded"`
	Redeemed       bool          `db:"redeemed"`
	RedeemedAt     sql.NullTime  `db:"redeemed_at"`
	RedeemerID     uuid.NullUUID `db:"redeemer_id"`
	ExpiresAt      sql.NullTime  `db:"expires_at"`
	CreatedAt      time.Time     `db:"created_at"`
	Version        int64         `db:"version"`
}

func (p *PgCode) ToDomain() (*domain.Code, error) {
	return domain.RestoreCode(domain.CodeState{
		ID:             domain.CodeID(p.ID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		Value:          p.Value,
		VotesAwarded:   p.VotesAwarded,
		Redeemed:       p.Redeemed,
		RedeemedAt:     p.RedeemedAt.Time,
		RedeemerID:     domain.UserID(p.RedeemerID.UUID),
		ExpiresAt:      p.ExpiresAt.Time,
		CreatedAt:      p.CreatedAt,
		Version:        p.Version,
	})
}

func (p *PgCode) FromDomain(c *domain.Code) {
	s := c.State()
	*p = PgCode{
		ID:             uuid.UUID(s.ID),
		OrganizationID: uuid.UUID(s.OrganizationID),
		Value:          s.Value,
		VotesAwarded:   s.VotesAwarded,
		Redeemed:       s.Redeemed,
		RedeemedAt:     nullTime(s.RedeemedAt),
		RedeemerID:     uuid.NullUUID{UUID: uuid.UUID(s.RedeemerID), Valid: s.RedeemerID != domain.UserID{}},
		ExpiresAt:      nullTime(s.ExpiresAt),
		CreatedAt:      s.CreatedAt,
		Version:        s.Version,
	}
}

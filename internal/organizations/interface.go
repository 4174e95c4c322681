package organizations

import (
	"context"
	"fanvote/pkg/domain"
	"time"
)

// CreateOptionRequest describes a new player option.
type CreateOptionRequest struct {
	PlayerID    domain.PlayerID
	Title       string
	Description string
	// ExpiresAt defaults to one month after creation when nil.
	ExpiresAt *time.Time
}

// Statistics summarizes an organization at one point in time.
type Statistics struct {
	ActivePlayerOptions int
	TotalVotes          int64
	// MostPopular is nil when no option is active.
	MostPopular      *domain.PlayerOption
	Trending         []domain.PlayerOption
	AveragePlayerAge float64
	ActivePlayers    int
	TotalMarketValue int64
}

// Service runs the commands of the Organization aggregate. Every mutating
// call loads the aggregate, applies one domain operation and writes it back
// in one transaction; a concurrent change to the same organization makes
// the call start over.
type Service interface {
	Create(ctx context.Context, params domain.OrganizationParams) (*domain.Organization, error)
	// Get returns serrors.ErrNotFound for unknown ids.
	Get(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error)
	Statistics(ctx context.Context, id domain.OrganizationID) (*Statistics, error)

	Lock(ctx context.Context, id domain.OrganizationID, reason string) (*domain.Organization, error)
	Unlock(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error)
	Rename(ctx context.Context, id domain.OrganizationID, name string) (*domain.Organization, error)
	UpdateDescription(ctx context.Context, id domain.OrganizationID, description string) (*domain.Organization, error)
	ReplaceVenue(ctx context.Context, id domain.OrganizationID, venue domain.Venue) (*domain.Organization, error)
	ReplaceMediaAssets(ctx context.Context, id domain.OrganizationID, media domain.MediaAssets) (*domain.Organization, error)
	ReplaceSocialLinks(ctx context.Context, id domain.OrganizationID, links domain.SocialLinks) (*domain.Organization, error)
	ReplaceTeamColors(ctx context.Context, id domain.OrganizationID, colors domain.TeamColors) (*domain.Organization, error)

	AddPlayer(ctx context.Context, id domain.OrganizationID, params domain.PlayerParams) (domain.Player, error)
	RemovePlayer(ctx context.Context, id domain.OrganizationID, playerID domain.PlayerID) error
	SetPlayerActive(ctx context.Context, id domain.OrganizationID, playerID domain.PlayerID, active bool) error

	CreatePlayerOption(ctx context.Context, id domain.OrganizationID, req CreateOptionRequest) (domain.PlayerOption, error)
	// RemovePlayerOption deletes an expired option together with its votes.
	// Budgets are not refunded.
	RemovePlayerOption(ctx context.Context, id domain.OrganizationID, optionID domain.PlayerOptionID) error
	UpdatePlayerOptionDetails(
		ctx context.Context,
		id domain.OrganizationID,
		optionID domain.PlayerOptionID,
		title, description string) (domain.PlayerOption, error)
	ExtendPlayerOptionExpiry(
		ctx context.Context,
		id domain.OrganizationID,
		optionID domain.PlayerOptionID,
		expiresAt time.Time) (domain.PlayerOption, error)
	ExpirePlayerOption(ctx context.Context, id domain.OrganizationID, optionID domain.PlayerOptionID) error
}

package domain

import (
	"fanvote/pkg/serrors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the longest accepted option title, in characters.
	MaxTitleLength = 200
	// MaxDescriptionLength is the longest accepted option description, in characters.
	MaxDescriptionLength = 1000

	// PopularVotes is the vote count from which an option is popular.
	PopularVotes = 100
	// TrendingVotes is the vote count from which an active option is trending.
	TrendingVotes = 50
	// PromotionScore is the engagement score a trending option must exceed
	// to be promoted.
	PromotionScore = 5.0
)

// PopularityLevel is a vote-count tier.
type PopularityLevel string

const (
	PopularityNew         PopularityLevel = "New"
	PopularityActive      PopularityLevel = "Active"
	PopularityTrending    PopularityLevel = "Trending"
	PopularityPopular     PopularityLevel = "Popular"
	PopularityVeryPopular PopularityLevel = "VeryPopular"
	PopularityViral       PopularityLevel = "Viral"
)

// PopularityFor maps a vote count to its tier.
func PopularityFor(votes int64) PopularityLevel {
	switch {
	case votes < 10:
		return PopularityNew
	case votes < 50:
		return PopularityActive
	case votes < 100:
		return PopularityTrending
	case votes < 500:
		return PopularityPopular
	case votes < 1000:
		return PopularityVeryPopular
	default:
		return PopularityViral
	}
}

// maxExpiry is the furthest allowed expiry for an option created or
// extended at now.
func maxExpiry(now time.Time) time.Time { return now.AddDate(1, 0, 0) }

// defaultExpiry is used when an option is created without an expiry.
func defaultExpiry(now time.Time) time.Time { return now.AddDate(0, 1, 0) }

// PlayerOption is a time-boxed decision about one player that fans vote on.
// It moves from active to expired exactly once, either when now passes
// ExpiresAt or through ExpireNow. Votes only change while active.
type PlayerOption struct {
	id             PlayerOptionID
	organizationID OrganizationID
	playerID       PlayerID
	title          string
	description    string
	votes          int64
	createdAt      time.Time
	expiresAt      time.Time
	version        int64
}

// NewPlayerOption validates the input and returns an active option with no
// votes. A nil expiresAt defaults to one month from now; otherwise it must
// be after now and no more than a year away.
func NewPlayerOption(
	title, description string,
	playerID PlayerID,
	organizationID OrganizationID,
	expiresAt *time.Time,
	now time.Time,
) (*PlayerOption, error) {
	if err := requireID("player id", playerID); err != nil {
		return nil, err
	}
	if err := requireID("organization id", organizationID); err != nil {
		return nil, err
	}

	title, description, err := validateDetails(title, description)
	if err != nil {
		return nil, err
	}

	expiry := defaultExpiry(now)
	if expiresAt != nil {
		if !expiresAt.After(now) {
			return nil, invalid("expiry must be in the future")
		}
		if expiresAt.After(maxExpiry(now)) {
			return nil, invalid("expiry must be within one year")
		}
		expiry = *expiresAt
	}

	return &PlayerOption{
		id:             NewPlayerOptionID(),
		organizationID: organizationID,
		playerID:       playerID,
		title:          title,
		description:    description,
		createdAt:      now,
		expiresAt:      expiry,
	}, nil
}

func validateDetails(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	switch {
	case title == "":
		return "", "", invalid("title is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return "", "", invalid("title must be at most %d characters", MaxTitleLength)
	case description == "":
		return "", "", invalid("description is required")
	case utf8.RuneCountInString(description) > MaxDescriptionLength:
		return "", "", invalid("description must be at most %d characters", MaxDescriptionLength)
	}

	return title, description, nil
}

func (o *PlayerOption) ID() PlayerOptionID             { return o.id }
func (o *PlayerOption) OrganizationID() OrganizationID { return o.organizationID }
func (o *PlayerOption) PlayerID() PlayerID             { return o.playerID }
func (o *PlayerOption) Title() string                  { return o.title }
func (o *PlayerOption) Description() string            { return o.description }
func (o *PlayerOption) Votes() int64                   { return o.votes }
func (o *PlayerOption) CreatedAt() time.Time           { return o.createdAt }
func (o *PlayerOption) ExpiresAt() time.Time           { return o.expiresAt }

// Version is the optimistic concurrency token loaded from storage. New
// options have version 0.
func (o *PlayerOption) Version() int64 { return o.version }

// IsActive reports whether the option accepts votes at now.
func (o *PlayerOption) IsActive(now time.Time) bool { return now.Before(o.expiresAt) }

// IsExpired is the negation of IsActive.
func (o *PlayerOption) IsExpired(now time.Time) bool { return !o.IsActive(now) }

// IsPopular reports whether the option reached PopularVotes, active or not.
func (o *PlayerOption) IsPopular() bool { return o.votes >= PopularVotes }

// IsTrending reports whether the option is active with at least TrendingVotes.
func (o *PlayerOption) IsTrending(now time.Time) bool {
	return o.IsActive(now) && o.votes >= TrendingVotes
}

// PopularityLevel returns the tier of the current vote count.
func (o *PlayerOption) PopularityLevel() PopularityLevel { return PopularityFor(o.votes) }

// EngagementScore is votes per day since creation, with days floored at
// one. Expired options score zero.
func (o *PlayerOption) EngagementScore(now time.Time) float64 {
	if !o.IsActive(now) {
		return 0
	}

	days := now.Sub(o.createdAt).Hours() / 24
	if days < 1 {
		days = 1
	}

	return float64(o.votes) / days
}

// ShouldPromote reports whether the option is trending with an engagement
// score above PromotionScore.
func (o *PlayerOption) ShouldPromote(now time.Time) bool {
	return o.IsTrending(now) && o.EngagementScore(now) > PromotionScore
}

// AddVote counts one more vote.
func (o *PlayerOption) AddVote(now time.Time) error {
	if !o.IsActive(now) {
		return serrors.With(ErrExpiredOption, "player option %s is not active", o.id)
	}
	o.votes++

	return nil
}

// RemoveVote takes back one vote. It never clamps: removing from a zero
// count is an invariant violation.
func (o *PlayerOption) RemoveVote(now time.Time) error {
	if !o.IsActive(now) {
		return serrors.With(ErrExpiredOption, "player option %s is not active", o.id)
	}
	if o.votes == 0 {
		return violation("player option %s has no votes to remove", o.id)
	}
	o.votes--

	return nil
}

// ExtendExpiry moves the expiry later. The new expiry must be after the
// current one, in the future and within one year of now. An expired option
// cannot be revived.
func (o *PlayerOption) ExtendExpiry(newExpiresAt, now time.Time) error {
	switch {
	case !newExpiresAt.After(o.expiresAt):
		return invalid("new expiry must be later than the current expiry")
	case !newExpiresAt.After(now):
		return invalid("new expiry must be in the future")
	case newExpiresAt.After(maxExpiry(now)):
		return invalid("new expiry must be within one year")
	case !o.IsActive(now):
		return invalidState("player option %s has expired", o.id)
	}
	o.expiresAt = newExpiresAt

	return nil
}

// ExpireNow ends voting immediately. Expiring an already expired option is
// an error, not a no-op.
func (o *PlayerOption) ExpireNow(now time.Time) error {
	if !o.IsActive(now) {
		return invalidState("player option %s has already expired", o.id)
	}
	o.expiresAt = now

	return nil
}

// UpdateDetails replaces title and description with the same validation as
// NewPlayerOption.
func (o *PlayerOption) UpdateDetails(title, description string, now time.Time) error {
	if !o.IsActive(now) {
		return invalidState("player option %s has expired", o.id)
	}

	title, description, err := validateDetails(title, description)
	if err != nil {
		return err
	}
	o.title, o.description = title, description

	return nil
}

// PlayerOptionState is the persisted form of a PlayerOption.
type PlayerOptionState struct {
	ID             PlayerOptionID
	OrganizationID OrganizationID
	PlayerID       PlayerID
	Title          string
	Description    string
	Votes          int64
	CreatedAt      time.Time
	ExpiresAt      time.Time
	Version        int64
}

// State returns the persisted form of o.
func (o *PlayerOption) State() PlayerOptionState {
	return PlayerOptionState{
		ID:             o.id,
		OrganizationID: o.organizationID,
		PlayerID:       o.playerID,
		Title:          o.title,
		Description:    o.description,
		Votes:          o.votes,
		CreatedAt:      o.createdAt,
		ExpiresAt:      o.expiresAt,
		Version:        o.version,
	}
}

// RestorePlayerOption rebuilds an option from storage. Time based rules are
// not re-checked; structural invariants are.
func RestorePlayerOption(s PlayerOptionState) (*PlayerOption, error) {
	if err := requireID("player option id", s.ID); err != nil {
		return nil, err
	}
	if err := requireID("organization id", s.OrganizationID); err != nil {
		return nil, err
	}
	if err := requireID("player id", s.PlayerID); err != nil {
		return nil, err
	}
	if s.Votes < 0 {
		return nil, violation("player option %s has negative votes", s.ID)
	}

	return &PlayerOption{
		id:             s.ID,
		organizationID: s.OrganizationID,
		playerID:       s.PlayerID,
		title:          s.Title,
		description:    s.Description,
		votes:          s.Votes,
		createdAt:      s.CreatedAt,
		expiresAt:      s.ExpiresAt,
		version:        s.Version,
	}, nil
}

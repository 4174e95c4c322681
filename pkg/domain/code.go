package domain

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"time"
)

const (
	// DefaultCodeLength is the number of characters of generated code values.
	DefaultCodeLength = 12
	minCodeLength     = 6
	maxCodeLength     = 64
)

var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Code is a one-time token that grants votes for one organization. Once
// redeemed it stays redeemed; the only transition is made by RedeemCode
// together with the budget credit.
type Code struct {
	id             CodeID
	organizationID OrganizationID
	value          string
	votesAwarded   int64
	redeemed       bool
	redeemedAt     time.Time
	redeemerID     UserID
	expiresAt      time.Time
	createdAt      time.Time
	version        int64
}

// NewCode builds an unredeemed code. A zero expiresAt means the code never
// expires.
func NewCode(organizationID OrganizationID, value string, votesAwarded int64, expiresAt, now time.Time) (*Code, error) {
	if err := requireID("organization id", organizationID); err != nil {
		return nil, err
	}
	value = NormalizeCodeValue(value)
	switch {
	case len(value) < minCodeLength || len(value) > maxCodeLength:
		return nil, invalid("code value must be between %d and %d characters", minCodeLength, maxCodeLength)
	case votesAwarded <= 0:
		return nil, invalid("votes awarded must be positive, got %d", votesAwarded)
	case !expiresAt.IsZero() && !expiresAt.After(now):
		return nil, invalid("code expiry must be in the future")
	}

	return &Code{
		id:             NewCodeID(),
		organizationID: organizationID,
		value:          value,
		votesAwarded:   votesAwarded,
		expiresAt:      expiresAt,
		createdAt:      now,
	}, nil
}

// GenerateCodeValue returns a random upper case base32 value of the given
// length.
func GenerateCodeValue(length int) (string, error) {
	if length < minCodeLength || length > maxCodeLength {
		return "", invalid("code length must be between %d and %d", minCodeLength, maxCodeLength)
	}

	buf := make([]byte, codeEncoding.DecodedLen(length)+1)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return codeEncoding.EncodeToString(buf)[:length], nil
}

// NormalizeCodeValue trims and upper-cases a code typed in by a user.
func NormalizeCodeValue(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func (c *Code) ID() CodeID                     { return c.id }
func (c *Code) OrganizationID() OrganizationID { return c.organizationID }
func (c *Code) Value() string                  { return c.value }
func (c *Code) VotesAwarded() int64            { return c.votesAwarded }
func (c *Code) IsRedeemed() bool               { return c.redeemed }
func (c *Code) RedeemedAt() time.Time          { return c.redeemedAt }
func (c *Code) RedeemerID() UserID             { return c.redeemerID }
func (c *Code) ExpiresAt() time.Time           { return c.expiresAt }
func (c *Code) CreatedAt() time.Time           { return c.createdAt }
func (c *Code) Version() int64                 { return c.version }

// IsExpired reports whether the code can no longer be redeemed at now.
func (c *Code) IsExpired(now time.Time) bool {
	return !c.expiresAt.IsZero() && !now.Before(c.expiresAt)
}

func (c *Code) markRedeemed(redeemerID UserID, now time.Time) {
	c.redeemed = true
	c.redeemedAt = now
	c.redeemerID = redeemerID
}

// CodeState is the persisted form of a Code.
type CodeState struct {
	ID             CodeID
	OrganizationID OrganizationID
	Value          string
	VotesAwarded   int64
	Redeemed       bool
	RedeemedAt     time.Time
	RedeemerID     UserID
	ExpiresAt      time.Time
	CreatedAt      time.Time
	Version        int64
}

func (c *Code) State() CodeState {
	return CodeState{
		ID:             c.id,
		OrganizationID: c.organizationID,
		Value:          c.value,
		VotesAwarded:   c.votesAwarded,
		Redeemed:       c.redeemed,
		RedeemedAt:     c.redeemedAt,
		RedeemerID:     c.redeemerID,
		ExpiresAt:      c.expiresAt,
		CreatedAt:      c.createdAt,
		Version:        c.version,
	}
}

// RestoreCode rebuilds a code from storage. A redeemed code must carry its
// redeemer and redemption time.
func RestoreCode(s CodeState) (*Code, error) {
	if err := requireID("code id", s.ID); err != nil {
		return nil, err
	}
	if err := requireID("organization id", s.OrganizationID); err != nil {
		return nil, err
	}
	if s.VotesAwarded <= 0 {
		return nil, violation("code %s awards %d votes", s.ID, s.VotesAwarded)
	}
	if s.Redeemed && (s.RedeemedAt.IsZero() || s.RedeemerID == (UserID{})) {
		return nil, violation("redeemed code %s has no redeemer", s.ID)
	}

	return &Code{
		id:             s.ID,
		organizationID: s.OrganizationID,
		value:          s.Value,
		votesAwarded:   s.VotesAwarded,
		redeemed:       s.Redeemed,
		redeemedAt:     s.RedeemedAt,
		redeemerID:     s.RedeemerID,
		expiresAt:      s.ExpiresAt,
		createdAt:      s.CreatedAt,
		version:        s.Version,
	}, nil
}

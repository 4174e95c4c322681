package redemption

import (
	"context"
	"fanvote/pkg/domain"
	"time"
)

// GenerateRequest describes a batch of codes.
type GenerateRequest struct {
	OrganizationID domain.OrganizationID
	// Count is the number of codes, between 1 and MaxBatchSize.
	Count int
	// VotesAwarded is credited to the redeemer of each code.
	VotesAwarded int64
	// TTL is how long the codes stay redeemable. Zero selects the
	// configured default.
	TTL time.Duration
	// NoExpiry makes the codes redeemable forever and overrides TTL.
	NoExpiry bool
}

// Service redeems and issues vote codes.
type Service interface {
	// Redeem marks the code with the given value as redeemed by userID and
	// credits its votes to the user's budget for the code's organization,
	// creating the budget when needed. It returns the credited budget.
	Redeem(ctx context.Context, userID domain.UserID, value string) (*domain.VoteBudget, error)
	// Generate creates a batch of unredeemed codes in one transaction.
	Generate(ctx context.Context, req GenerateRequest) ([]*domain.Code, error)
}

// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
// Lookups return (nil, nil) when the entity does not exist; callers decide
// which error that is. Writes of versioned entities fail with
// ErrVersionConflict when the stored version moved since it was read.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"fanvote/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	OrganizationStorage
	PlayerOptionStorage
	BudgetStorage
	VoteStorage
	CodeStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// OrganizationStorage persists the Organization aggregate together with its
// players and player options.
type OrganizationStorage interface {
	// StoreOrganization inserts a new organization and all of its children.
	StoreOrganization(ctx context.Context, org *domain.Organization) error
	// UpdateOrganization writes the aggregate back. The organization row is
	// version checked. Children missing from org are deleted, new ones are
	// inserted and existing ones updated. Option vote counts are never
	// written here; they belong to the vote workflows.
	UpdateOrganization(ctx context.Context, org *domain.Organization) error
	// OrganizationByID loads the aggregate with its children in creation order.
	OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error)
	// OrganizationExists reports whether an organization with id is stored.
	OrganizationExists(ctx context.Context, id domain.OrganizationID) (bool, error)
}

// PlayerOptionStorage gives the vote workflows row level access to a single
// option without loading its organization.
type PlayerOptionStorage interface {
	// PlayerOptionByID reads an option without locking it.
	PlayerOptionByID(ctx context.Context, id domain.PlayerOptionID) (*domain.PlayerOption, error)
	// PlayerOptionByIDForUpdate reads an option and locks its row until the
	// surrounding transaction ends.
	PlayerOptionByIDForUpdate(ctx context.Context, id domain.PlayerOptionID) (*domain.PlayerOption, error)
	// UpdatePlayerOptionVotes writes the vote count of opt and bumps its version.
	UpdatePlayerOptionVotes(ctx context.Context, opt *domain.PlayerOption) error
}

// BudgetStorage persists vote budgets, one per user and organization.
type BudgetStorage interface {
	// Budget reads a budget without locking it.
	Budget(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID) (*domain.VoteBudget, error)
	// BudgetForUpdate reads a budget and locks its row until the surrounding
	// transaction ends.
	BudgetForUpdate(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID) (*domain.VoteBudget, error)
	// SaveBudget inserts a new budget or updates a stored one.
	SaveBudget(ctx context.Context, b *domain.VoteBudget) error
}

// VoteStorage persists vote records.
type VoteStorage interface {
	StoreVote(ctx context.Context, v *domain.Vote) error
	// VoteByIDForUpdate reads a vote and locks its row.
	VoteByIDForUpdate(ctx context.Context, id domain.VoteID) (*domain.Vote, error)
	// DeleteVote removes a vote and reports whether it existed.
	DeleteVote(ctx context.Context, id domain.VoteID) (bool, error)
}

// CodeStorage persists redeemable codes.
type CodeStorage interface {
	// StoreCodes inserts codes. A clash on the code value fails with
	// ErrVersionConflict.
	StoreCodes(ctx context.Context, codes ...*domain.Code) error
	// CodeByValueForUpdate reads a code by its value and locks its row.
	CodeByValueForUpdate(ctx context.Context, value string) (*domain.Code, error)
	// UpdateCode writes the redemption state of c.
	UpdateCode(ctx context.Context, c *domain.Code) error
}

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. Inside a transaction the job only becomes visible once the
// transaction commits.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the job was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

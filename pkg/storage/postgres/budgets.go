package postgres

import (
	"context"
	"fanvote/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const voteBudgetsTable = "vote_budgets"

func (p *PgSQL) Budget(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID) (*domain.VoteBudget, error) {
	return p.budget(ctx, userID, orgID, false)
}

func (p *PgSQL) BudgetForUpdate(
	ctx context.Context,
	userID domain.UserID,
	orgID domain.OrganizationID,
) (*domain.VoteBudget, error) {
	return p.budget(ctx, userID, orgID, true)
}

func (p *PgSQL) budget(ctx context.Context, userID domain.UserID, orgID domain.OrganizationID, lock bool) (*domain.VoteBudget, error) {
	ds := p.Builder.From(voteBudgetsTable).Where(
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("organization_id").Eq(uuid.UUID(orgID)),
	)
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgVoteBudget
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch vote budget: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SaveBudget inserts b when it was never stored, otherwise updates it if the
// row still has the version b was read with. Two concurrent first inserts for
// the same user and organization end in a conflict for one of them.
func (p *PgSQL) SaveBudget(ctx context.Context, b *domain.VoteBudget) error {
	var row PgVoteBudget
	row.FromDomain(b)

	if b.IsNew() {
		row.Version = 1
		if _, err := p.Builder.Insert(voteBudgetsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
			return conflictOrErr(err, "could not store vote budget into pg")
		}

		return nil
	}

	res, err := p.Builder.Update(voteBudgetsTable).
		Set(goqu.Record{
			"votes_remaining": row.VotesRemaining,
			"updated_at":      row.UpdatedAt,
			"version":         goqu.L("version + 1"),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("version").Eq(row.Version),
		).Executor().ExecContext(ctx)
	if err != nil {
		return conflictOrErr(err, "could not update vote budget in pg")
	}

	return checkVersioned(res, "vote budget "+row.ID.String())
}

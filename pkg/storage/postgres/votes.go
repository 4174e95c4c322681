package postgres

import (
	"context"
	"fanvote/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const votesTable = "votes"

func (p *PgSQL) StoreVote(ctx context.Context, v *domain.Vote) error {
	var row PgVote
	row.FromDomain(v)

	if _, err := p.Builder.Insert(votesTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return conflictOrErr(err, "could not store vote into pg")
	}

	return nil
}

func (p *PgSQL) VoteByIDForUpdate(ctx context.Context, id domain.VoteID) (*domain.Vote, error) {
	var row PgVote
	found, err := p.Builder.From(votesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch vote by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteVote(ctx context.Context, id domain.VoteID) (bool, error) {
	res, err := p.Builder.Delete(votesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete vote in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows of vote delete: %w", err)
	}

	return n > 0, nil
}

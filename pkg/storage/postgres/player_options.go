package postgres

import (
	"context"
	"fanvote/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

func (p *PgSQL) PlayerOptionByID(ctx context.Context, id domain.PlayerOptionID) (*domain.PlayerOption, error) {
	return p.playerOptionByID(ctx, id, false)
}

func (p *PgSQL) PlayerOptionByIDForUpdate(ctx context.Context, id domain.PlayerOptionID) (*domain.PlayerOption, error) {
	return p.playerOptionByID(ctx, id, true)
}

func (p *PgSQL) playerOptionByID(ctx context.Context, id domain.PlayerOptionID, lock bool) (*domain.PlayerOption, error) {
	ds := p.Builder.From(playerOptionsTable).Where(goqu.I("id").Eq(uuid.UUID(id)))
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgPlayerOption
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch player option by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdatePlayerOptionVotes stores the vote count of opt if the row still has
// the version opt was read with.
func (p *PgSQL) UpdatePlayerOptionVotes(ctx context.Context, opt *domain.PlayerOption) error {
	res, err := p.Builder.Update(playerOptionsTable).
		Set(goqu.Record{
			"votes":      opt.Votes(),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			"version":    goqu.L("version + 1"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(opt.ID())),
			goqu.I("version").Eq(opt.Version()),
		).Executor().ExecContext(ctx)
	if err != nil {
		return conflictOrErr(err, "could not update player option votes in pg")
	}

	return checkVersioned(res, "player option "+opt.ID().String())
}

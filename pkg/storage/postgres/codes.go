package postgres

import (
	"context"
	"fanvote/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const codesTable = "codes"

func (p *PgSQL) StoreCodes(ctx context.Context, codes ...*domain.Code) error {
	if len(codes) == 0 {
		return nil
	}

	rows := make([]PgCode, len(codes))
	for i, c := range codes {
		rows[i].FromDomain(c)
		rows[i].Version = 1
	}

	if _, err := p.Builder.Insert(codesTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return conflictOrErr(err, "could not store codes into pg")
	}

	return nil
}

func (p *PgSQL) CodeByValueForUpdate(ctx context.Context, value string) (*domain.Code, error) {
	var row PgCode
	found, err := p.Builder.From(codesTable).
		Where(goqu.I("value").Eq(value)).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch code by value: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateCode stores the redemption state of c if the row still has the
// version c was read with.
func (p *PgSQL) UpdateCode(ctx context.Context, c *domain.Code) error {
	var row PgCode
	row.FromDomain(c)

	res, err := p.Builder.Update(codesTable).
		Set(goqu.Record{
			"redeemed":    row.Redeemed,
			"redeemed_at": row.RedeemedAt,
			"redeemer_id": row.RedeemerID,
			"version":     goqu.L("version + 1"),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("version").Eq(row.Version),
		).Executor().ExecContext(ctx)
	if err != nil {
		return conflictOrErr(err, "could not update code in pg")
	}

	return checkVersioned(res, "code "+row.ID.String())
}

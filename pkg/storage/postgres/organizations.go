package postgres

import (
	"context"
	"fanvote/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	organizationsTable = "organizations"
	playersTable       = "players"
	playerOptionsTable = "player_options"
)

func (p *PgSQL) StoreOrganization(ctx context.Context, org *domain.Organization) error {
	var row PgOrganization
	if err := row.FromDomain(org); err != nil {
		return err
	}
	row.Version = 1

	if _, err := p.Builder.Insert(organizationsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return conflictOrErr(err, "could not store organization into pg")
	}

	state := org.State()
	if err := p.insertPlayers(ctx, state.ID, state.Players); err != nil {
		return err
	}

	return p.insertPlayerOptions(ctx, state.PlayerOptions)
}

// UpdateOrganization writes org back. Only option rows whose details changed
// are written, so an organization command does not take the row locks of
// options that votes are being cast on.
func (p *PgSQL) UpdateOrganization(ctx context.Context, org *domain.Organization) error {
	var row PgOrganization
	if err := row.FromDomain(org); err != nil {
		return err
	}

	res, err := p.Builder.Update(organizationsTable).
		Set(goqu.Record{
			"name":            row.Name,
			"team_id":         row.TeamID,
			"team_name":       row.TeamName,
			"team_short_name": row.TeamShortName,
			"formed_year":     row.FormedYear,
			"sport":           row.Sport,
			"description":     row.Description,
			"venue":           row.Venue,
			"media_assets":    row.MediaAssets,
			"social_links":    row.SocialLinks,
			"team_colors":     row.TeamColors,
			"locked":          row.Locked,
			"lock_reason":     row.LockReason,
			"locked_at":       row.LockedAt,
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
			"version":         goqu.L("version + 1"),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("version").Eq(row.Version),
		).Executor().ExecContext(ctx)
	if err != nil {
		return conflictOrErr(err, "could not update organization in pg")
	}
	if err := checkVersioned(res, "organization "+row.ID.String()); err != nil {
		return err
	}

	state := org.State()
	if err := p.syncPlayers(ctx, state); err != nil {
		return err
	}

	return p.syncPlayerOptions(ctx, state)
}

func (p *PgSQL) syncPlayers(ctx context.Context, state domain.OrganizationState) error {
	keep := make([]any, len(state.Players))
	for i, pl := range state.Players {
		keep[i] = uuid.UUID(pl.ID)
	}
	if err := p.deleteChildren(ctx, playersTable, state.ID, keep); err != nil {
		return err
	}
	if len(state.Players) == 0 {
		return nil
	}

	_, err := p.Builder.Insert(playersTable).
		Rows(pgPlayersFromDomain(state.ID, state.Players)).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":          goqu.I("excluded.name"),
			"position":      goqu.I("excluded.position"),
			"date_of_birth": goqu.I("excluded.date_of_birth"),
			"active":        goqu.I("excluded.active"),
		})).Executor().ExecContext(ctx)
	if err != nil {
		return conflictOrErr(err, "could not upsert players in pg")
	}

	return nil
}

func (p *PgSQL) syncPlayerOptions(ctx context.Context, state domain.OrganizationState) error {
	keep := make([]any, len(state.PlayerOptions))
	var created []domain.PlayerOptionState
	for i, opt := range state.PlayerOptions {
		keep[i] = uuid.UUID(opt.ID)
		if opt.Version == 0 {
			created = append(created, opt)
		}
	}
	if err := p.deleteChildren(ctx, playerOptionsTable, state.ID, keep); err != nil {
		return err
	}

	changed, err := p.changedPlayerOptions(ctx, state)
	if err != nil {
		return err
	}
	for _, opt := range changed {
		_, err := p.Builder.Update(playerOptionsTable).
			Set(goqu.Record{
				"title":       opt.Title,
				"description": opt.Description,
				"expires_at":  opt.ExpiresAt,
				"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
				"version":     goqu.L("version + 1"),
			}).
			Where(
				goqu.I("id").Eq(uuid.UUID(opt.ID)),
				goqu.I("organization_id").Eq(uuid.UUID(state.ID)),
			).Executor().ExecContext(ctx)
		if err != nil {
			return conflictOrErr(err, "could not update player option in pg")
		}
	}

	return p.insertPlayerOptions(ctx, created)
}

// changedPlayerOptions returns the stored options of state whose title,
// description or expiry differ from the rows. Votes are owned by the vote
// workflows and never compared.
func (p *PgSQL) changedPlayerOptions(
	ctx context.Context,
	state domain.OrganizationState) ([]domain.PlayerOptionState, error) {
	var rows []PgPlayerOption
	err := p.Builder.From(playerOptionsTable).
		Select("id", "title", "description", "expires_at").
		Where(goqu.I("organization_id").Eq(uuid.UUID(state.ID))).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch player options of organization: %w", err)
	}

	stored := make(map[uuid.UUID]PgPlayerOption, len(rows))
	for _, row := range rows {
		stored[row.ID] = row
	}

	var changed []domain.PlayerOptionState
	for _, opt := range state.PlayerOptions {
		row, ok := stored[uuid.UUID(opt.ID)]
		if opt.Version == 0 || !ok {
			continue
		}
		if row.Title != opt.Title || row.Description != opt.Description || !row.ExpiresAt.Equal(opt.ExpiresAt) {
			changed = append(changed, opt)
		}
	}

	return changed, nil
}

// deleteChildren removes the rows of table owned by orgID whose id is not in keep.
func (p *PgSQL) deleteChildren(ctx context.Context, table string, orgID domain.OrganizationID, keep []any) error {
	where := []goqu.Expression{goqu.I("organization_id").Eq(uuid.UUID(orgID))}
	if len(keep) > 0 {
		where = append(where, goqu.I("id").NotIn(keep...))
	}

	if _, err := p.Builder.Delete(table).Where(where...).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete removed rows from %s: %w", table, err)
	}

	return nil
}

func (p *PgSQL) insertPlayers(ctx context.Context, orgID domain.OrganizationID, players []domain.PlayerState) error {
	if len(players) == 0 {
		return nil
	}

	_, err := p.Builder.Insert(playersTable).
		Rows(pgPlayersFromDomain(orgID, players)).
		Executor().ExecContext(ctx)
	if err != nil {
		return conflictOrErr(err, "could not store players into pg")
	}

	return nil
}

func (p *PgSQL) insertPlayerOptions(ctx context.Context, options []domain.PlayerOptionState) error {
	if len(options) == 0 {
		return nil
	}

	rows := make([]PgPlayerOption, len(options))
	for i, opt := range options {
		rows[i].FromDomain(opt)
		rows[i].Version = 1
	}

	if _, err := p.Builder.Insert(playerOptionsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return conflictOrErr(err, "could not store player options into pg")
	}

	return nil
}

func (p *PgSQL) OrganizationByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	var row PgOrganization
	found, err := p.Builder.From(organizationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	var players []PgPlayer
	if err := p.Builder.From(playersTable).
		Where(goqu.I("organization_id").Eq(row.ID)).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &players); err != nil {
		return nil, fmt.Errorf("could not fetch players of organization: %w", err)
	}

	var options []PgPlayerOption
	if err := p.Builder.From(playerOptionsTable).
		Where(goqu.I("organization_id").Eq(row.ID)).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &options); err != nil {
		return nil, fmt.Errorf("could not fetch player options of organization: %w", err)
	}

	return row.ToDomain(options, players)
}

func (p *PgSQL) OrganizationExists(ctx context.Context, id domain.OrganizationID) (bool, error) {
	n, err := p.Builder.From(organizationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count organizations: %w", err)
	}

	return n > 0, nil
}

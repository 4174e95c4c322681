package main

import (
	"fanvote/internal/config"
	"fanvote/internal/organizations"
	"fanvote/pkg/domain"
	"fanvote/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// organizationsCommand groups the organization administration subcommands.
func organizationsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organizations",
		Short: "Manages organizations",
	}
	cmd.AddCommand(
		createOrganizationCommand(cfg),
		lockOrganizationCommand(cfg),
		unlockOrganizationCommand(cfg),
	)

	return cmd
}

// organizationParams builds the creation parameters from the create flags.
// Media assets and social links start empty.
func organizationParams(cmd *cobra.Command) (domain.OrganizationParams, error) {
	flags := cmd.Flags()
	rawLeague, _ := flags.GetString("league")
	name, _ := flags.GetString("name")
	description, _ := flags.GetString("description")
	sport, _ := flags.GetString("sport")
	formed, _ := flags.GetInt("formed")
	venueName, _ := flags.GetString("venue")
	city, _ := flags.GetString("city")
	capacity, _ := flags.GetInt("capacity")
	primary, _ := flags.GetString("primary-color")
	secondary, _ := flags.GetString("secondary-color")

	leagueID, err := domain.ParseLeagueID(rawLeague)
	if err != nil {
		return domain.OrganizationParams{}, err
	}
	venue, err := domain.NewVenue(venueName, city, capacity)
	if err != nil {
		return domain.OrganizationParams{}, err
	}
	colors, err := domain.NewTeamColors(primary, secondary)
	if err != nil {
		return domain.OrganizationParams{}, err
	}
	media, err := domain.NewMediaAssets("", "", "")
	if err != nil {
		return domain.OrganizationParams{}, err
	}
	social, err := domain.NewSocialLinks(domain.SocialLinksParams{})
	if err != nil {
		return domain.OrganizationParams{}, err
	}

	return domain.OrganizationParams{
		LeagueID:    leagueID,
		Name:        name,
		FormedYear:  formed,
		Sport:       sport,
		Description: description,
		Venue:       &venue,
		MediaAssets: &media,
		SocialLinks: &social,
		TeamColors:  &colors,
	}, nil
}

func createOrganizationCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates an organization and prints its ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			params, err := organizationParams(cmd)
			if err != nil {
				logger.Fatal(ctx, "invalid organization", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			org, err := organizations.New(strg, organizations.NewOptions(cfg)).Create(ctx, params)
			if err != nil {
				logger.Fatal(ctx, "could not create organization", zap.Error(err))
			}

			fmt.Println(org.ID()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("league", "", "League ID")
	cmd.Flags().String("name", "", "Organization name")
	cmd.Flags().String("description", "", "Organization description")
	cmd.Flags().String("sport", "", "Sport")
	cmd.Flags().Int("formed", 0, "Year the team was formed")
	cmd.Flags().String("venue", "", "Venue name")
	cmd.Flags().String("city", "", "Venue city")
	cmd.Flags().Int("capacity", 0, "Venue capacity")
	cmd.Flags().String("primary-color", "", "Primary team color as #RRGGBB")
	cmd.Flags().String("secondary-color", "", "Secondary team color as #RRGGBB")
	for _, name := range []string{"league", "name", "venue", "primary-color"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func organizationID(cmd *cobra.Command) domain.OrganizationID {
	raw, _ := cmd.Flags().GetString("organization")
	id, err := domain.ParseOrganizationID(raw)
	if err != nil {
		logger.Fatal(cmd.Context(), "invalid organization id", zap.Error(err))
	}

	return id
}

func lockOrganizationCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Locks an organization against structural changes",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id := organizationID(cmd)
			reason, _ := cmd.Flags().GetString("reason")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			org, err := organizations.New(strg, organizations.NewOptions(cfg)).Lock(ctx, id, reason)
			if err != nil {
				logger.Fatal(ctx, "could not lock organization", zap.Error(err))
			}

			logger.Info(ctx, "organization locked",
				zap.Stringer("organizationID", org.ID()),
				zap.Time("lockedAt", org.LockedAt()))
		},
	}

	cmd.Flags().String("organization", "", "Organization ID")
	cmd.Flags().String("reason", "", "Why the organization is locked")
	_ = cmd.MarkFlagRequired("organization")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func unlockOrganizationCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlocks an organization",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id := organizationID(cmd)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if _, err := organizations.New(strg, organizations.NewOptions(cfg)).Unlock(ctx, id); err != nil {
				logger.Fatal(ctx, "could not unlock organization", zap.Error(err))
			}

			logger.Info(ctx, "organization unlocked", zap.Stringer("organizationID", id))
		},
	}

	cmd.Flags().String("organization", "", "Organization ID")
	_ = cmd.MarkFlagRequired("organization")

	return cmd
}

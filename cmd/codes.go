package main

import (
	"fanvote/internal/config"
	"fanvote/internal/redemption"
	"fanvote/pkg/domain"
	"fanvote/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// codesCommand groups the code administration subcommands.
func codesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Manages redeemable vote codes",
	}
	cmd.AddCommand(generateCodesCommand(cfg))

	return cmd
}

// generateCodesCommand creates a batch of codes for an organization and
// prints one value per line.
func generateCodesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a batch of codes for an organization",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			rawOrg, _ := cmd.Flags().GetString("organization")
			count, _ := cmd.Flags().GetInt("count")
			votes, _ := cmd.Flags().GetInt64("votes")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			noExpiry, _ := cmd.Flags().GetBool("no-expiry")

			orgID, err := domain.ParseOrganizationID(rawOrg)
			if err != nil {
				logger.Fatal(ctx, "invalid organization id", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			codes, err := redemption.New(strg, redemption.NewOptions(cfg)).Generate(ctx, redemption.GenerateRequest{
				OrganizationID: orgID,
				Count:          count,
				VotesAwarded:   votes,
				TTL:            ttl,
				NoExpiry:       noExpiry,
			})
			if err != nil {
				logger.Fatal(ctx, "could not generate codes", zap.Error(err))
			}

			for _, code := range codes {
				fmt.Println(code.Value()) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("organization", "", "Organization ID")
	cmd.Flags().Int("count", 1, "Number of codes")
	cmd.Flags().Int64("votes", 1, "Votes awarded by each code")
	cmd.Flags().Duration("ttl", 0, "Validity of the codes, the configured default when zero")
	cmd.Flags().Bool("no-expiry", false, "Codes never expire")
	_ = cmd.MarkFlagRequired("organization")

	return cmd
}


package main

import (
	"fanvote/internal/budgets"
	"fanvote/internal/config"
	"fanvote/pkg/domain"
	"fanvote/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// budgetCommand groups the vote budget administration subcommands.
func budgetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manages vote budgets",
	}
	cmd.AddCommand(grantCommand(cfg), balanceCommand(cfg))

	return cmd
}

func parseBudgetFlags(cmd *cobra.Command) (domain.UserID, domain.OrganizationID) {
	ctx := cmd.Context()

	rawUser, _ := cmd.Flags().GetString("user")
	rawOrg, _ := cmd.Flags().GetString("organization")

	userID, err := domain.ParseUserID(rawUser)
	if err != nil {
		logger.Fatal(ctx, "invalid user id", zap.Error(err))
	}
	orgID, err := domain.ParseOrganizationID(rawOrg)
	if err != nil {
		logger.Fatal(ctx, "invalid organization id", zap.Error(err))
	}

	return userID, orgID
}

func budgetFlags(cmd *cobra.Command) {
	cmd.Flags().String("user", "", "User ID")
	cmd.Flags().String("organization", "", "Organization ID")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("organization")
}

func grantCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Credits votes to a user's budget",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			userID, orgID := parseBudgetFlags(cmd)
			votes, _ := cmd.Flags().GetInt64("votes")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			budget, err := budgets.New(strg, budgets.NewOptions(cfg)).Grant(ctx, userID, orgID, votes)
			if err != nil {
				logger.Fatal(ctx, "could not grant votes", zap.Error(err))
			}

			fmt.Println(budget.VotesRemaining()) //nolint: forbidigo
		},
	}

	budgetFlags(cmd)
	cmd.Flags().Int64("votes", 0, "Votes to credit")
	_ = cmd.MarkFlagRequired("votes")

	return cmd
}

func balanceCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Prints the votes a user has left",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			userID, orgID := parseBudgetFlags(cmd)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			balance, err := budgets.New(strg, budgets.NewOptions(cfg)).Balance(ctx, userID, orgID)
			if err != nil {
				logger.Fatal(ctx, "could not read balance", zap.Error(err))
			}

			fmt.Println(balance) //nolint: forbidigo
		},
	}

	budgetFlags(cmd)

	return cmd
}

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/stockvote/internal/app"
	"github.com/GlebRadaev/stockvote/internal/config"
	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/settlement"
	"github.com/GlebRadaev/stockvote/pkg/logger"
)

// wireFunc is swapped in tests.
var wireFunc = app.Wire

var migrateFunc = app.Migrate

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stockvotectl",
		Short:         "Operations tool for the stockvote service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCmd(), sweepCmd(), settleCmd(), rankingsCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("can't load config: %w", err)
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("can't init logger: %w", err)
	}
	return cfg, nil
}

func printReport(cmd *cobra.Command, r settlement.Report) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"ended=%d settled=%d deferred=%d skipped=%d credited=%d failed=%d\n",
		r.Ended, r.Settled, r.Deferred, r.Skipped, r.Credited, r.Failed)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := migrateFunc(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Close expired votes and settle every due vote once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := wireFunc(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.Engine.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func settleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <voteID>",
		Short: "Settle a single vote now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voteID, err := strconv.Atoi(args[0])
			if err != nil || voteID <= 0 {
				return fmt.Errorf("invalid vote id %q", args[0])
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := wireFunc(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.Engine.Settle(cmd.Context(), voteID)
			switch {
			case errors.Is(err, domain.ErrVoteNotFound):
				return fmt.Errorf("vote %d not found", voteID)
			case errors.Is(err, settlement.ErrNotDue):
				return fmt.Errorf("vote %d is not due for settlement", voteID)
			case err != nil:
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func rankingsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Recompute user ranks and print the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := wireFunc(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Services.Ranker.Recompute(cmd.Context()); err != nil {
				return err
			}
			users, total, err := c.Services.RankingService.GetRanking(cmd.Context(), domain.Page{Number: 1, Limit: limit})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, u := range users {
				fmt.Fprintf(out, "%4d  %-24s %8d pts  %3d%%\n", u.Rank, u.Login, u.Points, u.Accuracy())
			}
			fmt.Fprintf(out, "ranked users: %d\n", total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of users to print")
	return cmd
}

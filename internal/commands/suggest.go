package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/roboadvisor-dev/roboadvisor/internal/advisor"
	"github.com/roboadvisor-dev/roboadvisor/internal/config"
)

func newSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <run-file>",
		Short: "Print rebalancing suggestions for a run file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			return runSuggest(cmd, cfg)
		},
	}
}

func runSuggest(cmd *cobra.Command, cfg *config.Config) error {
	p, err := cfg.BuildPortfolio()
	if err != nil {
		return fmt.Errorf("replaying activity: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"advisor":  cfg.Advisor,
		"accounts": len(p.AccountIDs()),
		"entries":  len(p.Ledger().Entries()),
	}).Debug("portfolio replayed")

	adv, err := cfg.BuildAdvisor(p)
	if err != nil {
		return fmt.Errorf("configuring advisor: %w", err)
	}

	suggestions, err := advisor.Suggestions(p, adv)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, accountID := range p.AccountIDs() {
		fmt.Fprintf(out, "%s:\n", accountID)
		for _, s := range suggestions[accountID] {
			fmt.Fprintf(out, "  %s %s %s\n", s.Kind, s.Asset, s.Amount)
		}
	}
	return nil
}

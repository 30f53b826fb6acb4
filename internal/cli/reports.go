package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting"
)

func newSpendCommand(flags *GlobalFlags, factory ReporterFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "spend",
		Short: "Account spend for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporter, token, err := factory(flags)
			if err != nil {
				return err
			}

			spend, err := reporter.GetSpendToday(cmd.Context(), token)
			if err != nil {
				return reportExit(err)
			}

			return writeOutput(cmd.OutOrStdout(), flags.Output, spend)
		},
	}
}

func newCampaignsCommand(flags *GlobalFlags, factory ReporterFactory) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Campaign metrics for the last N days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporter, token, err := factory(flags)
			if err != nil {
				return err
			}

			report, err := reporter.GetCampaignInsights(cmd.Context(), token, days)
			if err != nil {
				return reportExit(err)
			}

			return writeOutput(cmd.OutOrStdout(), flags.Output, report)
		},
	}

	cmd.Flags().IntVar(&days, "days", insighting.DefaultDays, "Number of days ending today (1-60)")
	return cmd
}

func newAdsCommand(flags *GlobalFlags, factory ReporterFactory) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Ad metrics for the last N days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporter, token, err := factory(flags)
			if err != nil {
				return err
			}

			report, err := reporter.GetAdInsights(cmd.Context(), token, days)
			if err != nil {
				return reportExit(err)
			}

			return writeOutput(cmd.OutOrStdout(), flags.Output, report)
		},
	}

	cmd.Flags().IntVar(&days, "days", insighting.DefaultDays, "Number of days ending today (1-60)")
	return cmd
}

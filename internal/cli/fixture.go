package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

func newFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixture",
		Short: "Print the published match schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rounds []domain.FixtureRound
			if err := client.Get("/api/fixture", &rounds); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rounds) == 0 {
				fmt.Fprintln(out, "no published rounds")
				return nil
			}
			for _, round := range rounds {
				fmt.Fprintf(out, "Fecha %d: %s", round.Number, round.Title)
				if round.DateHeader != "" {
					fmt.Fprintf(out, " (%s)", round.DateHeader)
				}
				fmt.Fprintln(out)
				for _, m := range round.Matches {
					fmt.Fprintf(out, "  %s vs %s", m.HomeTeam, m.AwayTeam)
					if m.KickOff != "" {
						fmt.Fprintf(out, " - %s", m.KickOff)
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}

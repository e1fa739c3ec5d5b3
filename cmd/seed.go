package cmd

import (
	"fmt"

	"booking-app/internal/bootstrap"
	"booking-app/internal/repo"
	"booking-app/internal/seed"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample venues, artists and shows",
	Long:  "Load the sample venues, artists and shows. Records that already exist are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inj := bootstrap.BuildContainer()
		log, err := do.Invoke[*zap.Logger](inj)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		venues, err := do.Invoke[repo.VenueRepo](inj)
		if err != nil {
			return err
		}
		res, err := seed.Run(cmd.Context(), venues,
			do.MustInvoke[repo.ArtistRepo](inj),
			do.MustInvoke[repo.ShowRepo](inj),
			log,
		)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d venues, %d artists, %d shows\n", res.Venues, res.Artists, res.Shows)
		return nil
	},
}

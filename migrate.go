package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dbo, err := setup()
			if err != nil {
				return err
			}
			defer dbo.Close()

			log.Info("migrations applied.")
			return nil
		},
	}
}

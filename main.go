package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"founderreach/internal/config"
	"founderreach/internal/database"
)

var opts config.Options

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "founderreach",
		Short:         "Outreach tracker for tool founders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	flags.StringVar(&opts.EnvFile, "env-file", "", "dotenv file (default .env when present)")
	flags.StringVar(&opts.ParamPath, "conf", "", "AWS parameter store key holding the repository settings")
	flags.StringVar(&opts.Region, "region", "ap-northeast-2", "AWS region of the parameter store")

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

// setup loads the configuration, configures logrus, connects and migrates.
func setup() (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ConfigureLogging(); err != nil {
		return nil, nil, err
	}

	dbo, err := database.CreateConnection(cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("repository connection failed: %w", err)
	}
	log.Infof("Successfully connected to the database (%s).", cfg.DB.Driver)

	if err := database.Migrate(dbo); err != nil {
		_ = dbo.Close()
		return nil, nil, err
	}
	return cfg, dbo, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("founderreach: %v", err)
		os.Exit(1)
	}
}

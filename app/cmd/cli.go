package cmd

import (
	"context"
	"os"

	"github.com/gomartghana/gomart-api/app/configs"
	"github.com/gomartghana/gomart-api/app/db/seeders"
	"github.com/gomartghana/gomart-api/app/models/migrations"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func RunCli(env configs.ENV, logger zerolog.Logger) {
	cmd := &cli.Command{
		Name:  "gomart",
		Usage: "GoMart API management commands",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logger.Info().Msg("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with the default product categories",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					logger.Info().Msg("seeding complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

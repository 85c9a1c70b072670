// Package migrate exposes the embedded goose migrations as a cobra command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"likenovel/internal/infrastructure/config"
	"likenovel/internal/infrastructure/database"
	"likenovel/internal/infrastructure/migration"
	"likenovel/internal/shared/logger"
)

type session struct {
	db    *gorm.DB
	goose *migration.GooseStrategy
	log   logger.Interface
}

// NewCommand returns "migrate" with up, down and status subcommands.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back and inspect database migrations",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "configuration environment")

	// withSession opens the database for one subcommand and closes it afterwards.
	withSession := func(run func(s *session, args []string) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(env)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := logger.Init(&cfg.Logger, false); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			db, err := database.Open(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}()

			log := logger.NewLogger().Named("migrate").With("env", env)
			return run(&session{db: db, goose: migration.NewGooseStrategy(log), log: log}, args)
		}
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migrations",
		RunE: withSession(func(s *session, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			s.log.Infow("rolling back migrations", "steps", steps)
			return s.goose.MigrateDown(s.db, steps)
		}),
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			RunE: withSession(func(s *session, _ []string) error {
				return s.goose.Migrate(s.db)
			}),
		},
		down,
		&cobra.Command{
			Use:   "status",
			Short: "Print the schema version and the state of each migration",
			RunE: withSession(func(s *session, _ []string) error {
				version, err := s.goose.GetVersion(s.db)
				if err != nil {
					return err
				}
				fmt.Printf("schema version: %d\n", version)
				return s.goose.Status(s.db)
			}),
		},
	)
	return cmd
}

package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationDir = "migrations"

func newMigrate(rootDir string, dsn string) *migrate.Migrate {
	m, err := migrate.New("file://"+path.Join(rootDir, migrationDir), "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the migrate cobra command with up, down and force sub commands
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(".", dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down [N]",
			Short: "revert N migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return ignoreNoChange(newMigrate(".", dsn).Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force [VERSION]",
			Short: "set version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return newMigrate(".", dsn).Force(v)
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting drops everything then applies all migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate(rootDir, dsn)
	err := m.Drop()
	if err != nil {
		panic(err)
	}

	m = newMigrate(rootDir, dsn)
	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(fmt.Sprintf("migrate up: %v", err))
	}
}

package seed

import (
	"context"
	"fmt"

	"github.com/CagilDisbudak/MoviePage/internal/config"
	"github.com/CagilDisbudak/MoviePage/internal/db"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/CagilDisbudak/MoviePage/internal/seed"
	"github.com/spf13/cobra"
)

// InitSeed registers the dataset import command on the root command.
// Unlike the other commands it talks to the database directly, using the
// same environment configuration as the API server.
func InitSeed(rootCmd *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a db.json movie dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			database, err := db.Connect(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer database.Close()

			if err := db.Run(db.URL(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			n, err := seed.LoadFile(context.Background(), file, repo.NewMovieRepo(database))
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d movies from %s.\n", n, file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "db.json", "Path to the db.json dataset")

	rootCmd.AddCommand(cmd)
}

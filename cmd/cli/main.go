package main

import (
	"fmt"
	"os"

	"github.com/CagilDisbudak/MoviePage/cmd/cli/auth"
	"github.com/CagilDisbudak/MoviePage/cmd/cli/movies"
	"github.com/CagilDisbudak/MoviePage/cmd/cli/root"
	"github.com/CagilDisbudak/MoviePage/cmd/cli/seed"
	"github.com/CagilDisbudak/MoviePage/cmd/cli/users"
)

func main() {
	rootCmd := root.GetRoot()
	auth.InitAuth(rootCmd)
	movies.InitMovies(rootCmd)
	users.InitUsers(rootCmd)
	seed.InitSeed(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

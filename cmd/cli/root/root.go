package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "moviepage",
	Short: "MoviePage catalog CLI",
	Long:  "Command line interface for interacting with the MoviePage movie catalog API",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}

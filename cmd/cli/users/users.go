package users

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/CagilDisbudak/MoviePage/cmd/cli/config"
	"github.com/CagilDisbudak/MoviePage/cmd/cli/output"
	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/spf13/cobra"
)

// InitUsers registers user-related CLI commands on the root command.
// All of them require an admin token.
func InitUsers(rootCmd *cobra.Command) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect user accounts (admin only)",
	}
	usersCmd.AddCommand(listCmd())
	usersCmd.AddCommand(getCmd())
	rootCmd.AddCommand(usersCmd)
}

func listCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var page struct {
				Items []models.User `json:"items"`
				Total int           `json:"total"`
			}
			path := fmt.Sprintf("/users?limit=%d&offset=%d", limit, offset)
			if err := apiGet(path, &page); err != nil {
				return err
			}

			rows := make([][]interface{}, 0, len(page.Items))
			for _, u := range page.Items {
				rows = append(rows, []interface{}{u.ID, u.Username, u.Role})
			}
			output.RenderTable([]string{"ID", "Username", "Role"}, rows)
			fmt.Printf("%d of %d users\n", len(page.Items), page.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of users to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of users to skip")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user models.User
			if err := apiGet("/users/"+args[0], &user); err != nil {
				return err
			}
			output.RenderTable([]string{"ID", "Username", "Role"},
				[][]interface{}{{user.ID, user.Username, user.Role}})
			return nil
		},
	}
}

func apiGet(path string, out interface{}) error {
	req, err := http.NewRequest("GET", config.APIURL()+path, nil)
	if err != nil {
		return err
	}
	if token := config.LoadToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

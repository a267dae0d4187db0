package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/CagilDisbudak/MoviePage/cmd/cli/config"
	"github.com/spf13/cobra"
)

// InitAuth registers auth-related CLI commands (login, register) on the root command.
func InitAuth(rootCmd *cobra.Command) {
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(logoutCmd())
}

// loginCmd creates a command that logs in a user and stores the JWT token locally.
func loginCmd() *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the MoviePage API",
		Long:  "Authenticate with the MoviePage API and store a JWT token for subsequent CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			var loginResp struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			}
			payload := map[string]string{"username": username, "password": password}
			if err := callJSONEndpoint(http.DefaultClient, "/auth/login", payload, &loginResp); err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}
			if loginResp.AccessToken == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}

			if err := config.SaveToken(loginResp.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Println("Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "Password for the account")

	return cmd
}

// registerCmd creates a new account. Role defaults to "user" on the server.
func registerCmd() *cobra.Command {
	var username string
	var password string
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new MoviePage account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			payload := map[string]string{"username": username, "password": password}
			if role != "" {
				payload["role"] = role
			}
			var user struct {
				ID       int    `json:"id"`
				Username string `json:"username"`
				Role     string `json:"role"`
			}
			if err := callJSONEndpoint(http.DefaultClient, "/auth/register", payload, &user); err != nil {
				return fmt.Errorf("failed to register user: %w", err)
			}

			fmt.Printf("Registered %s (id %d, role %s).\n", user.Username, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username for the new account")
	cmd.Flags().StringVar(&password, "password", "", "Password for the new account")
	cmd.Flags().StringVar(&role, "role", "", "Role for the new account (user or admin)")

	return cmd
}

// logoutCmd discards the locally stored token. The server keeps no
// session state, so this is entirely client-side.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the locally stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveToken(""); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func callJSONEndpoint(client *http.Client, path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", config.APIURL()+path, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return err
		}
	}

	return nil
}

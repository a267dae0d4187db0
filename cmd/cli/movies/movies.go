package movies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/CagilDisbudak/MoviePage/cmd/cli/config"
	"github.com/CagilDisbudak/MoviePage/cmd/cli/output"
	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/spf13/cobra"
)

// InitMovies registers movie-related CLI commands on the root command.
func InitMovies(rootCmd *cobra.Command) {
	moviesCmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse and manage the movie catalog",
	}
	moviesCmd.AddCommand(listCmd())
	moviesCmd.AddCommand(searchCmd())
	moviesCmd.AddCommand(getCmd())
	moviesCmd.AddCommand(addCmd())
	rootCmd.AddCommand(moviesCmd)
}

func listCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var page struct {
				Items []models.Movie `json:"items"`
				Total int            `json:"total"`
			}
			path := fmt.Sprintf("/movies?limit=%d&offset=%d", limit, offset)
			if err := apiGet(path, &page); err != nil {
				return err
			}
			renderMovies(page.Items)
			fmt.Printf("%d of %d movies\n", len(page.Items), page.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of movies to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of movies to skip")

	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search movies by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var movies []models.Movie
			if err := apiGet("/search?q="+args[0], &movies); err != nil {
				return err
			}
			renderMovies(movies)
			return nil
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one movie with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var detail models.MovieDetail
			if err := apiGet("/movies/"+args[0], &detail); err != nil {
				return err
			}
			renderMovies([]models.Movie{detail.Movie})
			if len(detail.Reviews) > 0 {
				rows := make([][]interface{}, 0, len(detail.Reviews))
				for _, rv := range detail.Reviews {
					rows = append(rows, []interface{}{rv.ID, rv.UserID, rv.Rating, rv.Text})
				}
				output.RenderTable([]string{"ID", "User", "Rating", "Review"}, rows)
			}
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var title, description, director, category string
	var genres []string
	var year int
	var rating float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("title is required")
			}

			payload := map[string]interface{}{
				"title":       title,
				"description": description,
				"year":        year,
				"director":    director,
				"rating":      rating,
				"category":    category,
				"genres":      genres,
			}
			var movie models.Movie
			if err := apiPost("/movies", payload, &movie); err != nil {
				return err
			}

			fmt.Printf("Created movie %d: %s\n", movie.ID, movie.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Movie title")
	cmd.Flags().StringVar(&description, "description", "", "Plot description")
	cmd.Flags().IntVar(&year, "year", 0, "Release year")
	cmd.Flags().StringVar(&director, "director", "", "Director")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating (0-10)")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringSliceVar(&genres, "genres", nil, "Genres (comma-separated)")

	return cmd
}

func renderMovies(movies []models.Movie) {
	rows := make([][]interface{}, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []interface{}{
			m.ID, m.Title, m.Year, m.Director, m.Rating, strings.Join(m.Genres, ", "),
		})
	}
	output.RenderTable([]string{"ID", "Title", "Year", "Director", "Rating", "Genres"}, rows)
}

func apiGet(path string, out interface{}) error {
	req, err := http.NewRequest("GET", config.APIURL()+path, nil)
	if err != nil {
		return err
	}
	return doJSON(req, out)
}

func apiPost(path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest("POST", config.APIURL()+path, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(req, out)
}

func doJSON(req *http.Request, out interface{}) error {
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

	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

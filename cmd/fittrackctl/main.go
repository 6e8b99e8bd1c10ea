package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/pkg/clients/fittrack"
)

const defaultAPIURL = "http://localhost:8000"

type rootOptions struct {
	apiURL  string
	timeout time.Duration
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd constructs the fittrackctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "fittrackctl",
		Short:        "Command line client for the FitTrack backend",
		SilenceUsage: true,
	}

	apiURL := os.Getenv("FITTRACK_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", apiURL, "Base URL of the FitTrack backend")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")

	rootCmd.AddCommand(newFoodCmd(opts))
	rootCmd.AddCommand(newExerciseCmd(opts))
	rootCmd.AddCommand(newDiaryCmd(opts))

	return rootCmd
}

func (o *rootOptions) client() *fittrack.Client {
	return fittrack.NewClient(o.apiURL, o.timeout)
}

func newFoodCmd(opts *rootOptions) *cobra.Command {
	foodCmd := &cobra.Command{Use: "food", Short: "Food lookups"}

	var query string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search foods by free text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().SearchFoods(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd, models.FoodSearchResponse{Items: items})
		},
	}
	searchCmd.Flags().StringVarP(&query, "query", "q", "", "Free text, e.g. \"1 apple and a coffee\"")
	_ = searchCmd.MarkFlagRequired("query")

	foodCmd.AddCommand(searchCmd)
	return foodCmd
}

func newExerciseCmd(opts *rootOptions) *cobra.Command {
	exerciseCmd := &cobra.Command{Use: "exercise", Short: "Exercise lookups"}

	var query string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search exercises by name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().SearchExercises(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd, models.ExerciseSearchResponse{Items: items})
		},
	}
	searchCmd.Flags().StringVarP(&query, "query", "q", "", "Exercise name; empty lists everything")

	exerciseCmd.AddCommand(searchCmd)
	return exerciseCmd
}

func newDiaryCmd(opts *rootOptions) *cobra.Command {
	diaryCmd := &cobra.Command{Use: "diary", Short: "Food diary"}
	diaryCmd.AddCommand(newDiaryAddCmd(opts))
	diaryCmd.AddCommand(newDiarySummaryCmd(opts))
	return diaryCmd
}

func newDiaryAddCmd(opts *rootOptions) *cobra.Command {
	var (
		req      models.DiaryFoodCreate
		name     string
		calories float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a food",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.FoodName = &name
			req.Calories = &calories
			created, err := opts.client().AddFood(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, created)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Food name")
	cmd.Flags().Float64Var(&calories, "calories", 0, "Calories (kcal)")
	cmd.Flags().Float64Var(&req.ProteinG, "protein", 0, "Protein (g)")
	cmd.Flags().Float64Var(&req.CarbohydratesTotalG, "carbs", 0, "Carbohydrates (g)")
	cmd.Flags().Float64Var(&req.FatTotalG, "fat", 0, "Fat (g)")
	cmd.Flags().StringVar(&req.ConsumedAt, "day", "", "Day as YYYY-MM-DD; defaults to the server's today")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("calories")

	return cmd
}

func newDiarySummaryCmd(opts *rootOptions) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the totals of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := opts.client().DaySummary(cmd.Context(), day)
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day as YYYY-MM-DD; defaults to the server's today")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

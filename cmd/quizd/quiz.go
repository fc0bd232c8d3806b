package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

func newQuizCmd() *cobra.Command {
	var (
		seed      string
		limit     int
		noShuffle bool
		timeLimit int
	)
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Print the quiz a seed produces, as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := buildServices(cfg)
			if err != nil {
				return err
			}
			qz, err := svc.quizzes.Build(quiz.Options{
				Limit:            limit,
				Seed:             seed,
				ShuffleQuestions: !noShuffle,
				TimeLimit:        timeLimit,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(qz)
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "Shuffle seed (default: a fresh random seed)")
	cmd.Flags().IntVar(&limit, "limit", quiz.DefaultLimit, "Number of questions, clamped to [8,12]")
	cmd.Flags().BoolVar(&noShuffle, "no-shuffle", false, "Keep bank order for questions")
	cmd.Flags().IntVar(&timeLimit, "time-limit", quiz.DefaultTimeLimit, "Time limit in seconds")
	return cmd
}

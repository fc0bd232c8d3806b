package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/validation"
)

func newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <file|->",
		Short: "Grade a request body ({\"answers\": [...]}) read from a file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := buildServices(cfg)
			if err != nil {
				return err
			}

			var body []byte
			if args[0] == "-" {
				body, err = io.ReadAll(cmd.InOrStdin())
			} else {
				body, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read answers: %w", err)
			}
			req, err := validation.DecodeGradeRequest(body)
			if err != nil {
				return err
			}

			results := grading.GradeAnswers(req.Answers, svc.quizzes.Bank())
			out := struct {
				grading.Score
				Results []grading.QuestionResult `json:"results"`
			}{grading.CalculateScore(results), results}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

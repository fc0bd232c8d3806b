package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/quizid"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizd",
		Short:         "Seeded quiz server",
		Long:          "quizd serves a question bank as reproducible, seed-shuffled quizzes and grades submissions.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "", "Path to YAML config file (overrides QUIZ_CONFIG env var)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newQuizCmd())
	root.AddCommand(newGradeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig resolves the config file from --config, then QUIZ_CONFIG.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("QUIZ_CONFIG")
	}
	return config.Load(path)
}

type services struct {
	quizzes *quiz.Service
	ids     *quizid.Issuer
}

func buildServices(cfg config.Config) (services, error) {
	bank := quiz.DefaultBank()
	if cfg.BankPath != "" {
		b, err := quiz.LoadBankFile(cfg.BankPath)
		if err != nil {
			return services{}, fmt.Errorf("load bank %s: %w", cfg.BankPath, err)
		}
		bank = b
	}
	ids := quizid.NewIssuer(cfg.QuizIDSecret)
	return services{quizzes: quiz.NewService(bank, ids), ids: ids}, nil
}

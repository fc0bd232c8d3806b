package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

const (
	minRequestLimit = 1
	maxRequestLimit = 20
	minTimeLimit    = 60
	maxTimeLimit    = 600
)

// QuizOptions turns fetch-quiz query parameters into builder options.
// limit, when present, must be an integer in [1,20]; the builder clamps it
// further. Any shuffle value other than "false" shuffles.
func QuizOptions(q url.Values) (quiz.Options, error) {
	opts := quiz.Options{
		Limit:            quiz.DefaultLimit,
		Seed:             q.Get("seed"),
		ShuffleQuestions: q.Get("shuffle") != "false",
		TimeLimit:        quiz.DefaultTimeLimit,
	}
	if s := strings.TrimSpace(q.Get("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < minRequestLimit || n > maxRequestLimit {
			return opts, invalid("Limit must be an integer between 1 and 20")
		}
		opts.Limit = n
	}
	if s := strings.TrimSpace(q.Get("timeLimit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < minTimeLimit || n > maxTimeLimit {
			return opts, invalid("Time limit must be an integer between 60 and 600")
		}
		opts.TimeLimit = n
	}
	return opts, nil
}

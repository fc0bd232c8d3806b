package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-quiz/internal/shuffle"
)

const (
	DefaultLimit     = 10
	MinLimit         = 8
	MaxLimit         = 12
	DefaultTimeLimit = 300
)

// IDIssuer mints the opaque quiz identifier handed to clients.
type IDIssuer interface {
	Issue(seed string) (string, error)
}

type Options struct {
	Limit            int // 0 means DefaultLimit
	Seed             string
	ShuffleQuestions bool
	TimeLimit        int // seconds, 0 means DefaultTimeLimit
}

type Service struct {
	bank    *Bank
	ids     IDIssuer
	newSeed func() string
}

func NewService(bank *Bank, ids IDIssuer) *Service {
	return &Service{bank: bank, ids: ids, newSeed: uuid.NewString}
}

func (s *Service) Bank() *Bank { return s.bank }

// Build assembles a quiz for opts. Question order depends only on the seed;
// each question's choices are shuffled with a seed derived from the quiz
// seed and the question id.
func (s *Service) Build(opts Options) (Quiz, error) {
	seed := opts.Seed
	if seed == "" {
		seed = s.newSeed()
	}
	limit := opts.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	limit = ClampLimit(limit)
	timeLimit := opts.TimeLimit
	if timeLimit == 0 {
		timeLimit = DefaultTimeLimit
	}

	qs := s.bank.Questions()
	if opts.ShuffleQuestions {
		qs = shuffle.Shuffle(qs, seed)
	}
	if limit < len(qs) {
		qs = qs[:limit]
	}

	out := make([]ClientQuestion, 0, len(qs))
	for _, q := range qs {
		cq := ClientQuestion{ID: q.ID, Type: q.Kind(), Question: q.Prompt}
		if choices := q.Choices(); choices != nil {
			cq.Choices = shuffle.Shuffle(choices, shuffle.SubSeed(seed, q.ID))
		}
		out = append(out, cq)
	}

	id, err := s.ids.Issue(seed)
	if err != nil {
		return Quiz{}, fmt.Errorf("issue quiz id: %w", err)
	}
	return Quiz{
		Questions: out,
		Config: Config{
			TimeLimit:        timeLimit,
			ShuffleQuestions: opts.ShuffleQuestions,
			ShuffleChoices:   true,
			Seed:             seed,
		},
		QuizID: id,
	}, nil
}

// ClampLimit bounds a requested question count to [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

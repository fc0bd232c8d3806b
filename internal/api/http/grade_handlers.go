package http

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quizid"
	"github.com/mind-engage/mindengage-quiz/internal/validation"
)

const maxGradeBody = 1 << 20

type gradeResponse struct {
	grading.Score
	Results []grading.QuestionResult `json:"results"`
}

// POST /api/grade
//
// Answers are graded by question id against the canonical bank. The quiz id
// is only logged; it does not influence grading.
func GradeHandler(bank grading.Bank, ids *quizid.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxGradeBody))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON", "Request body must be valid JSON")
			return
		}
		req, err := validation.DecodeGradeRequest(body)
		if err != nil {
			var rerr *validation.RequestError
			switch {
			case errors.As(err, &rerr) && errors.Is(err, validation.ErrInvalidJSON):
				writeError(w, http.StatusBadRequest, "Invalid JSON", rerr.Message)
			case errors.As(err, &rerr):
				writeError(w, http.StatusBadRequest, "Invalid request", rerr.Message)
			default:
				log.Printf("grade: %v", err)
				writeError(w, http.StatusInternalServerError, "Failed to grade quiz", err.Error())
			}
			return
		}

		if req.QuizID != "" && ids != nil {
			if c, err := ids.Parse(req.QuizID); err == nil {
				log.Printf("grade: quiz %s seed=%q answers=%d", c.ID, c.Seed, len(req.Answers))
			} else {
				log.Printf("grade: unrecognised quiz id: %v", err)
			}
		}

		results := grading.GradeAnswers(req.Answers, bank)
		writeJSON(w, http.StatusOK, gradeResponse{
			Score:   grading.CalculateScore(results),
			Results: results,
		})
	}
}

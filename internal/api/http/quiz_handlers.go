package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/validation"
)

// GET /api/quiz?limit=&seed=&shuffle=&timeLimit=
func GetQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := validation.QuizOptions(r.URL.Query())
		if err != nil {
			var rerr *validation.RequestError
			if errors.As(err, &rerr) {
				writeError(w, http.StatusBadRequest, "Invalid parameters", rerr.Message)
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid parameters", err.Error())
			return
		}
		qz, err := svc.Build(opts)
		if err != nil {
			log.Printf("fetch quiz: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch quiz", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, qz)
	}
}

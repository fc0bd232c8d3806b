package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the quiz feature scenarios against the router.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("testdata", "features")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

type featureState struct {
	srv    *httptest.Server
	status int
	body   []byte
}

func initializeScenario(ctx *godog.ScenarioContext) {
	st := &featureState{}
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		if st.srv != nil {
			st.srv.Close()
		}
		return ctx, nil
	})

	ctx.Step(`^the quiz service is running$`, st.serviceRunning)
	ctx.Step(`^I request a quiz with "([^"]*)"$`, st.requestQuiz)
	ctx.Step(`^I submit the answers:$`, st.submitAnswers)
	ctx.Step(`^the response status is (\d+)$`, st.statusIs)
	ctx.Step(`^the quiz has (\d+) questions$`, st.questionCount)
	ctx.Step(`^the question order is "([^"]*)"$`, st.questionOrder)
	ctx.Step(`^the choices of "([^"]*)" are "([^"]*)"$`, st.choicesAre)
	ctx.Step(`^the error message is "([^"]*)"$`, st.errorMessage)
	ctx.Step(`^the score is (\d+) of (\d+)$`, st.scoreIs)
	ctx.Step(`^question "([^"]*)" is graded incorrect$`, st.gradedIncorrect)
}

func (s *featureState) serviceRunning() error {
	s.srv = httptest.NewServer(newTestRouter())
	return nil
}

func (s *featureState) capture(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	s.status = resp.StatusCode
	s.body, err = io.ReadAll(resp.Body)
	return err
}

func (s *featureState) requestQuiz(query string) error {
	return s.capture(http.Get(s.srv.URL + "/api/quiz?" + query))
}

func (s *featureState) submitAnswers(doc *godog.DocString) error {
	return s.capture(http.Post(s.srv.URL+"/api/grade", "application/json", strings.NewReader(doc.Content)))
}

func (s *featureState) statusIs(want int) error {
	if s.status != want {
		return fmt.Errorf("status %d, want %d: %s", s.status, want, s.body)
	}
	return nil
}

type quizBody struct {
	Questions []struct {
		ID      string   `json:"id"`
		Choices []string `json:"choices"`
	} `json:"questions"`
}

func (s *featureState) quiz() (quizBody, error) {
	var q quizBody
	err := json.Unmarshal(s.body, &q)
	return q, err
}

func (s *featureState) questionCount(want int) error {
	q, err := s.quiz()
	if err != nil {
		return err
	}
	if len(q.Questions) != want {
		return fmt.Errorf("got %d questions, want %d", len(q.Questions), want)
	}
	return nil
}

func (s *featureState) questionOrder(want string) error {
	q, err := s.quiz()
	if err != nil {
		return err
	}
	got := make([]string, len(q.Questions))
	for i, qq := range q.Questions {
		got[i] = qq.ID
	}
	if strings.Join(got, ",") != want {
		return fmt.Errorf("order %s, want %s", strings.Join(got, ","), want)
	}
	return nil
}

func (s *featureState) choicesAre(id, want string) error {
	q, err := s.quiz()
	if err != nil {
		return err
	}
	for _, qq := range q.Questions {
		if qq.ID == id {
			if got := strings.Join(qq.Choices, ","); got != want {
				return fmt.Errorf("choices of %s: %s, want %s", id, got, want)
			}
			return nil
		}
	}
	return fmt.Errorf("question %s not in quiz", id)
}

func (s *featureState) errorMessage(want string) error {
	var e errorBody
	if err := json.Unmarshal(s.body, &e); err != nil {
		return err
	}
	if e.Message != want {
		return fmt.Errorf("message %q, want %q", e.Message, want)
	}
	return nil
}

type gradeBody struct {
	Score   int `json:"score"`
	Total   int `json:"total"`
	Results []struct {
		ID      string `json:"id"`
		Correct bool   `json:"correct"`
	} `json:"results"`
}

func (s *featureState) scoreIs(score, total int) error {
	var g gradeBody
	if err := json.Unmarshal(s.body, &g); err != nil {
		return err
	}
	if g.Score != score || g.Total != total {
		return fmt.Errorf("score %d of %d, want %d of %d", g.Score, g.Total, score, total)
	}
	return nil
}

func (s *featureState) gradedIncorrect(id string) error {
	var g gradeBody
	if err := json.Unmarshal(s.body, &g); err != nil {
		return err
	}
	for _, r := range g.Results {
		if r.ID == id {
			if r.Correct {
				return fmt.Errorf("question %s graded correct", id)
			}
			return nil
		}
	}
	return fmt.Errorf("question %s not graded", id)
}

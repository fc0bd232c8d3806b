package validation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
)

const gradeSchemaURL = "schema://grade-request.json"

const gradeSchema = `{
  "type": "object",
  "required": ["answers"],
  "properties": {
    "answers": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/$defs/answer"}
    },
    "quizId": {"type": "string"}
  },
  "$defs": {
    "answer": {
      "type": "object",
      "required": ["id", "value"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "value": {
          "oneOf": [
            {"type": "string"},
            {"type": "number"},
            {"type": "array", "items": {"type": "number"}}
          ]
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func gradeRequestSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(gradeSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse grade schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(gradeSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add grade schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(gradeSchemaURL)
	})
	return compiled, compileErr
}

type GradeRequest struct {
	Answers []grading.Answer `json:"answers"`
	QuizID  string           `json:"quizId,omitempty"`
}

// DecodeGradeRequest parses and validates a grade request body. Errors are
// *RequestError values with a message fit for the client.
func DecodeGradeRequest(body []byte) (GradeRequest, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		return GradeRequest{}, &RequestError{Err: ErrInvalidJSON, Message: "Request body must be valid JSON"}
	}
	sch, err := gradeRequestSchema()
	if err != nil {
		return GradeRequest{}, err
	}
	if err := sch.Validate(doc); err != nil {
		msg := describeGradeRequest(doc)
		if msg == "" {
			msg = err.Error()
		}
		return GradeRequest{}, invalid(msg)
	}

	var req GradeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return GradeRequest{}, invalid(err.Error())
	}
	return req, nil
}

// describeGradeRequest names the first problem in doc, walking it in
// request order. It returns "" when it finds none.
func describeGradeRequest(doc any) string {
	obj, ok := doc.(map[string]any)
	if !ok {
		return "Request body must be an object"
	}
	answers, ok := obj["answers"].([]any)
	if !ok {
		return "Answers must be an array"
	}
	if len(answers) == 0 {
		return "Answers array cannot be empty"
	}
	for _, a := range answers {
		if msg := describeAnswer(a); msg != "" {
			return msg
		}
	}
	if id, present := obj["quizId"]; present {
		if _, ok := id.(string); !ok {
			return "quizId must be a string"
		}
	}
	return ""
}

func describeAnswer(a any) string {
	ans, ok := a.(map[string]any)
	if !ok {
		return "Each answer must be an object"
	}
	id, _ := ans["id"].(string)
	if id == "" {
		return "Invalid or missing id in answer"
	}
	switch v := ans["value"].(type) {
	case string, float64:
		return ""
	case []any:
		for _, e := range v {
			if _, ok := e.(float64); !ok {
				return fmt.Sprintf("Answer for question %s: array values must be numbers", id)
			}
		}
		return ""
	}
	return fmt.Sprintf("Answer for question %s: value must be string, number, or number array", id)
}


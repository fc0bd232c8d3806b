package quiz

import (
	"errors"
	"fmt"
)

var ErrInvalidBank = errors.New("invalid question bank")

// Bank is an immutable set of questions kept in definition order. It is
// safe for concurrent use.
type Bank struct {
	questions []Question
	byID      map[string]Question
}

// NewBank validates qs and indexes them by id.
func NewBank(qs []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, 0, len(qs)),
		byID:      make(map[string]Question, len(qs)),
	}
	for i, q := range qs {
		if err := checkQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrInvalidBank, i, err)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidBank, q.ID)
		}
		b.questions = append(b.questions, q)
		b.byID[q.ID] = q
	}
	return b, nil
}

// Questions returns the questions in bank order. The returned slice is a
// copy.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

func (b *Bank) Question(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

func (b *Bank) Len() int { return len(b.questions) }

func checkQuestion(q Question) error {
	if q.ID == "" {
		return errors.New("missing id")
	}
	switch v := q.Variant.(type) {
	case Text:
		if v.CorrectText == "" {
			return fmt.Errorf("%s: empty correct text", q.ID)
		}
	case Radio:
		if v.CorrectIndex < 0 || v.CorrectIndex >= len(v.Choices) {
			return fmt.Errorf("%s: correct index %d out of range", q.ID, v.CorrectIndex)
		}
	case Checkbox:
		if len(v.CorrectIndexes) == 0 {
			return fmt.Errorf("%s: no correct indexes", q.ID)
		}
		for _, idx := range v.CorrectIndexes {
			if idx < 0 || idx >= len(v.Choices) {
				return fmt.Errorf("%s: correct index %d out of range", q.ID, idx)
			}
		}
	case nil:
		return fmt.Errorf("%s: missing variant", q.ID)
	default:
		return fmt.Errorf("%s: unknown variant %T", q.ID, v)
	}
	return nil
}

package quiz

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// questionDoc is the on-disk shape of one question in a bank file.
type questionDoc struct {
	ID             string   `yaml:"id"`
	Type           Kind     `yaml:"type"`
	Question       string   `yaml:"question"`
	CorrectText    string   `yaml:"correctText"`
	CaseSensitive  bool     `yaml:"caseSensitive"`
	Choices        []string `yaml:"choices"`
	CorrectIndex   *int     `yaml:"correctIndex"`
	CorrectIndexes []int    `yaml:"correctIndexes"`
}

type bankDoc struct {
	Questions []questionDoc `yaml:"questions"`
}

// LoadBankFile reads a YAML question bank from path.
func LoadBankFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBank(f)
}

// ReadBank decodes a YAML question bank:
//
//	questions:
//	  - id: q1
//	    type: text
//	    question: What is the capital city of France?
//	    correctText: Paris
func ReadBank(r io.Reader) (*Bank, error) {
	var doc bankDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidBank)
	}
	qs := make([]Question, 0, len(doc.Questions))
	for i, d := range doc.Questions {
		q, err := d.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrInvalidBank, i, err)
		}
		qs = append(qs, q)
	}
	return NewBank(qs)
}

func (d questionDoc) toQuestion() (Question, error) {
	q := Question{ID: d.ID, Prompt: d.Question}
	switch d.Type {
	case KindText:
		q.Variant = Text{CorrectText: d.CorrectText, CaseSensitive: d.CaseSensitive}
	case KindRadio:
		if d.CorrectIndex == nil {
			return q, fmt.Errorf("%s: correctIndex required", d.ID)
		}
		q.Variant = Radio{Choices: d.Choices, CorrectIndex: *d.CorrectIndex}
	case KindCheckbox:
		q.Variant = Checkbox{Choices: d.Choices, CorrectIndexes: d.CorrectIndexes}
	default:
		return q, fmt.Errorf("%s: unknown type %q", d.ID, d.Type)
	}
	return q, nil
}

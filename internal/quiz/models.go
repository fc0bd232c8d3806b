package quiz

type Kind string

const (
	KindText     Kind = "text"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
)

// Variant is the type-specific half of a Question. The set is closed:
// Text, Radio and Checkbox are the only implementations.
type Variant interface {
	Kind() Kind
	variant()
}

type Text struct {
	CorrectText   string
	CaseSensitive bool
}

type Radio struct {
	Choices      []string
	CorrectIndex int
}

type Checkbox struct {
	Choices        []string
	CorrectIndexes []int
}

func (Text) Kind() Kind     { return KindText }
func (Radio) Kind() Kind    { return KindRadio }
func (Checkbox) Kind() Kind { return KindCheckbox }

func (Text) variant()     {}
func (Radio) variant()    {}
func (Checkbox) variant() {}

type Question struct {
	ID      string
	Prompt  string
	Variant Variant
}

func (q Question) Kind() Kind { return q.Variant.Kind() }

// Choices returns the choice list for radio and checkbox questions, nil for
// text questions.
func (q Question) Choices() []string {
	switch v := q.Variant.(type) {
	case Radio:
		return v.Choices
	case Checkbox:
		return v.Choices
	}
	return nil
}

// ClientQuestion is the student-safe view of a question: no answer keys.
type ClientQuestion struct {
	ID       string   `json:"id"`
	Type     Kind     `json:"type"`
	Question string   `json:"question"`
	Choices  []string `json:"choices,omitempty"`
}

type Config struct {
	TimeLimit        int    `json:"timeLimit"`
	ShuffleQuestions bool   `json:"shuffleQuestions"`
	ShuffleChoices   bool   `json:"shuffleChoices"`
	Seed             string `json:"seed"`
}

type Quiz struct {
	Questions []ClientQuestion `json:"questions"`
	Config    Config           `json:"config"`
	QuizID    string           `json:"quizId"`
}

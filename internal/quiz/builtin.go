package quiz

var builtinQuestions = []Question{
	{ID: "q1", Prompt: "What is the capital city of France?", Variant: Text{CorrectText: "Paris"}},
	{ID: "q2", Prompt: "What year did World War II end?", Variant: Text{CorrectText: "1945"}},
	{ID: "q3", Prompt: "What is the chemical symbol for gold?", Variant: Text{CorrectText: "Au", CaseSensitive: true}},
	{
		ID:      "q4",
		Prompt:  "What is the largest planet in our solar system?",
		Variant: Radio{Choices: []string{"Earth", "Jupiter", "Saturn", "Mars"}, CorrectIndex: 1},
	},
	{
		ID:      "q5",
		Prompt:  "Who painted the Mona Lisa?",
		Variant: Radio{Choices: []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"}, CorrectIndex: 2},
	},
	{
		ID:      "q6",
		Prompt:  "What is the speed of light in vacuum?",
		Variant: Radio{Choices: []string{"300,000 km/s", "150,000 km/s", "450,000 km/s", "600,000 km/s"}, CorrectIndex: 0},
	},
	{
		ID:      "q7",
		Prompt:  "Which programming language is known as the 'language of the web'?",
		Variant: Radio{Choices: []string{"Python", "Java", "JavaScript", "C++"}, CorrectIndex: 2},
	},
	{
		ID:      "q8",
		Prompt:  "Which of the following are primary colors?",
		Variant: Checkbox{Choices: []string{"Red", "Green", "Blue", "Yellow", "Purple"}, CorrectIndexes: []int{0, 2, 3}},
	},
	{
		ID:      "q9",
		Prompt:  "Select all JavaScript frameworks:",
		Variant: Checkbox{Choices: []string{"React", "Django", "Vue", "Flask", "Angular"}, CorrectIndexes: []int{0, 2, 4}},
	},
	{
		ID:      "q10",
		Prompt:  "Which of these are valid HTTP methods?",
		Variant: Checkbox{Choices: []string{"GET", "POST", "FETCH", "PUT", "SEND"}, CorrectIndexes: []int{0, 1, 3}},
	},
	{
		ID:      "q11",
		Prompt:  "Which continents are in the Southern Hemisphere?",
		Variant: Checkbox{Choices: []string{"Africa", "Europe", "Antarctica", "Australia", "North America", "South America"}, CorrectIndexes: []int{0, 2, 3, 5}},
	},
	{
		ID:      "q12",
		Prompt:  "What is the smallest prime number?",
		Variant: Radio{Choices: []string{"0", "1", "2", "3"}, CorrectIndex: 2},
	},
}

// DefaultBank returns the built-in twelve-question bank.
func DefaultBank() *Bank {
	b, err := NewBank(builtinQuestions)
	if err != nil {
		panic(err)
	}
	return b
}

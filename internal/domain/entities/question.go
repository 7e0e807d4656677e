package entities

// QuestionAnswer is a single quiz entry: the question prompt shown to the
// user and the expected answer. Pairs are created once at startup from the
// static question asset and never mutated afterwards.
type QuestionAnswer struct {
	Question string `json:"question"` // question prompt
	Answer   string `json:"answer"`   // expected answer, stored without surrounding whitespace
}

package service

import "context"

// RenderCommand describes one screen the presentation surface must show.
// Every quiz transition issues exactly one command.
type RenderCommand interface {
	renderCommand()
}

// ShowStart is the greeting screen with the number of questions in the bank.
type ShowStart struct {
	QuestionCount int
}

// ShowQuestion presents a question prompt. Number is 1-based.
type ShowQuestion struct {
	Number int
	Total  int
	Text   string
}

// ShowResult reports whether the last submission was correct.
// Expected carries the stored answer so the surface can show it on a miss.
type ShowResult struct {
	Number   int
	Total    int
	Correct  bool
	Expected string
}

// ShowScore is the final score screen of a finished run.
type ShowScore struct {
	Score int
	Total int
}

func (ShowStart) renderCommand()    {}
func (ShowQuestion) renderCommand() {}
func (ShowResult) renderCommand()   {}
func (ShowScore) renderCommand()    {}

// Surface renders commands on the user-facing chat surface.
type Surface interface {
	Render(ctx context.Context, cmd RenderCommand) error
}

// Package session runs one lesson drill from first question to
// completion, including the retry queue for missed questions and the
// final score handoff to progress tracking.
package session

import "parola/internal/quiz"

// Phase is where the session is in its lifecycle.
type Phase int

const (
	// PhaseLoading means Start has not been called yet.
	PhaseLoading Phase = iota
	// PhasePresenting means a question is on screen awaiting an answer.
	PhasePresenting
	// PhaseEvaluated means an answer was graded and feedback is shown;
	// Advance moves on.
	PhaseEvaluated
	// PhaseComplete means the lesson is finished.
	PhaseComplete
)

// State is the observable session state, read by the drill screen each
// frame.
type State struct {
	Phase Phase

	// Index counts answered main-round questions, 0-based. Total is
	// the main-round question count; retry questions do not extend it.
	Index int
	Total int

	// Score counts correct answers. A question missed in the main
	// round still earns its point when answered correctly on retry;
	// each question scores at most once.
	Score int

	// Current is the question on screen, nil before Start and after
	// completion.
	Current *quiz.Question

	// Retry is the FIFO queue of missed questions awaiting
	// re-presentation. InRetry is true once the main round is done and
	// the queue is being drained.
	Retry   []*quiz.Question
	InRetry bool

	// LastCorrect and Feedback describe the most recent grading, valid
	// in PhaseEvaluated.
	LastCorrect bool
	Feedback    string
}

// ProgressSink receives the results of a finished session.
type ProgressSink interface {
	CompleteLesson(lessonID string, score, totalQuestions int)
	AddXP(amount int) int
	Level() int
}

// Completion summarizes a finished session.
type Completion struct {
	LessonID   string
	Score      int
	Total      int
	Accuracy   int
	XPEarned   int
	Level      int
	Retried    int
	Persisted  bool
}

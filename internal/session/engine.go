package session

import (
	"math/rand"

	"github.com/google/uuid"

	"parola/internal/lessons"
	"parola/internal/quiz"
)

const (
	// DefaultQuestionCount is the main-round length for word-list
	// lessons. Conversation lessons run their full script instead.
	DefaultQuestionCount = 10

	// XPPerPoint is the XP awarded per final score point.
	XPPerPoint = 10
)

// Engine drives one session. It owns the question generator, the
// retry queue, and the completion handoff.
type Engine struct {
	lesson   lessons.Lesson
	gen      *quiz.Generator
	progress ProgressSink

	id         string
	state      State
	retried    int
	completion *Completion
}

// NewEngine creates an engine for the lesson. rng may be nil for a
// time-seeded source.
func NewEngine(lesson lessons.Lesson, progress ProgressSink, rng *rand.Rand) *Engine {
	return &Engine{
		lesson:   lesson,
		gen:      quiz.NewGenerator(lesson, rng),
		progress: progress,
		id:       uuid.NewString(),
	}
}

// ID is the session's unique identifier.
func (e *Engine) ID() string { return e.id }

// Lesson returns the lesson under drill.
func (e *Engine) Lesson() lessons.Lesson { return e.lesson }

// State returns a copy of the current session state.
func (e *Engine) State() State { return e.state }

// Completion returns the session summary, nil until PhaseComplete.
func (e *Engine) Completion() *Completion { return e.completion }

// Start serves the first question. An empty lesson completes
// immediately with zero accuracy and nothing persisted.
func (e *Engine) Start() {
	if e.lesson.IsConversation() {
		e.state.Total = len(e.lesson.Lines)
	} else {
		e.state.Total = DefaultQuestionCount
		if len(e.lesson.Words) == 0 {
			e.state.Total = 0
		}
	}
	if e.state.Total == 0 {
		e.finish()
		return
	}
	e.state.Current = e.nextQuestion()
	e.state.Phase = PhasePresenting
}

// Submit grades the response against the current question. Out of
// phase or non-gradeable calls are ignored.
func (e *Engine) Submit(response string) {
	q := e.state.Current
	if e.state.Phase != PhasePresenting || q == nil || !q.Gradeable() {
		return
	}

	correct := quiz.Check(q, response)
	e.state.LastCorrect = correct
	if correct {
		e.state.Feedback = "AWESOME! Continue"
		e.state.Score++
	} else {
		e.state.Feedback = "Keep Going!"
		if !q.Retry {
			retry := q.Clone()
			retry.Retry = true
			e.state.Retry = append(e.state.Retry, retry)
		}
	}
	e.state.Phase = PhaseEvaluated
}

// ContinueTurn acknowledges a non-learner conversation line. It
// counts as a correct turn: scripted lines always score.
func (e *Engine) ContinueTurn() {
	q := e.state.Current
	if e.state.Phase != PhasePresenting || q == nil || q.Gradeable() {
		return
	}
	e.state.LastCorrect = true
	e.state.Feedback = ""
	e.state.Phase = PhaseEvaluated
	e.Advance()
}

// Advance moves past an evaluated question: the next main-round
// question, the retry queue once the main round is done, or
// completion once the queue drains.
func (e *Engine) Advance() {
	if e.state.Phase != PhaseEvaluated {
		return
	}

	if !e.state.InRetry {
		e.state.Index++
		if e.state.Index < e.state.Total {
			e.state.Current = e.nextQuestion()
			e.state.Phase = PhasePresenting
			return
		}
		if len(e.state.Retry) > 0 {
			e.state.InRetry = true
		}
	}

	if e.state.InRetry && len(e.state.Retry) > 0 {
		q := e.state.Retry[0]
		e.state.Retry = e.state.Retry[1:]
		e.gen.Refresh(q)
		e.retried++
		e.state.Current = q
		e.state.Phase = PhasePresenting
		return
	}

	e.finish()
}

// ProgressPercent is the progress bar value: main-round position, or
// 100 once the retry round begins.
func (e *Engine) ProgressPercent() int {
	if e.state.Total == 0 || e.state.InRetry || e.state.Phase == PhaseComplete {
		return 100
	}
	return e.state.Index * 100 / e.state.Total
}

func (e *Engine) nextQuestion() *quiz.Question {
	if e.lesson.IsConversation() {
		return e.gen.ConversationTurn(e.state.Index)
	}
	return e.gen.Next()
}

// finish closes the session and reports to progress. Conversation
// lessons award full credit for reaching the end; missed turns were
// already re-drilled through the retry queue.
func (e *Engine) finish() {
	e.state.Current = nil
	e.state.Phase = PhaseComplete

	score := e.state.Score
	if e.lesson.IsConversation() {
		score = e.state.Total
	}

	c := &Completion{
		LessonID: e.lesson.ID,
		Score:    score,
		Total:    e.state.Total,
		XPEarned: score * XPPerPoint,
		Retried:  e.retried,
	}
	if e.state.Total > 0 {
		c.Accuracy = int(float64(score)/float64(e.state.Total)*100 + 0.5)
	}

	if e.progress != nil && e.state.Total > 0 {
		e.progress.CompleteLesson(c.LessonID, c.Score, c.Total)
		e.progress.AddXP(c.XPEarned)
		c.Level = e.progress.Level()
		c.Persisted = true
	}
	e.completion = c
}

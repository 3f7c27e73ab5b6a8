// Package progress persists the learner's cross-session state: XP,
// level, and per-lesson completion records. Every operation degrades
// to defaults rather than failing; a missing or corrupt record reads
// as "not completed" or zero.
package progress

import (
	"math"
	"time"

	"parola/internal/store"
)

// Persisted storage keys, stable across both backends.
const (
	KeyXP        = "userXP"
	KeyLevel     = "userLevel"
	KeyCompleted = "completedLessons"
	KeyMigrated  = "migrated"
)

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 100

// LessonRecord is the persisted completion record for one lesson.
type LessonRecord struct {
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Accuracy       int       `json:"accuracy"`
	CompletedAt    time.Time `json:"completedAt"`
	Attempts       int       `json:"attempts"`
}

// Stats aggregates progress across all completed lessons.
type Stats struct {
	XP               int
	Level            int
	LessonsCompleted int
	TotalScore       int
	TotalQuestions   int
	OverallAccuracy  int
}

// Confirmer gates destructive operations on explicit user consent.
type Confirmer func(prompt string) bool

// Repository provides domain operations over the store facade.
type Repository struct {
	store *store.Facade
	now   func() time.Time
}

// NewRepository creates a Repository over the given facade.
func NewRepository(f *store.Facade) *Repository {
	return &Repository{store: f, now: time.Now}
}

// Initialize probes the store and, when the primary store is usable,
// runs the one-time migration of legacy data out of the backup store.
func (r *Repository) Initialize() {
	if r.store.Probe() && !r.migrated() {
		r.Migrate()
	}
}

func (r *Repository) migrated() bool {
	var done bool
	return r.store.Read(KeyMigrated, &done) && done
}

// Migrate copies the legacy progress keys from the secondary store
// into the unified model, then sets the migrated flag so this never
// repeats. Absent legacy keys are simply skipped; calling Migrate
// twice is a no-op.
func (r *Repository) Migrate() {
	if r.migrated() {
		return
	}

	var xp int
	if r.store.ReadSecondary(KeyXP, &xp) {
		r.store.Write(KeyXP, xp)
	}
	var completed map[string]LessonRecord
	if r.store.ReadSecondary(KeyCompleted, &completed) {
		r.store.Write(KeyCompleted, completed)
	}
	var level int
	if r.store.ReadSecondary(KeyLevel, &level) {
		r.store.Write(KeyLevel, level)
	}

	r.store.Write(KeyMigrated, true)
}

// XP returns the current XP total.
func (r *Repository) XP() int {
	var xp int
	if !r.store.Read(KeyXP, &xp) {
		return 0
	}
	return xp
}

// Level returns the current level (1 when nothing is stored).
func (r *Repository) Level() int {
	var level int
	if !r.store.Read(KeyLevel, &level) || level < 1 {
		return 1
	}
	return level
}

// AddXP adds amount to the XP total, recomputes the level, and
// returns the new total.
func (r *Repository) AddXP(amount int) int {
	if amount < 0 {
		amount = 0
	}
	newXP := r.XP() + amount
	r.store.Write(KeyXP, newXP)
	r.updateLevel(newXP)
	return newXP
}

// updateLevel recomputes and stores the level for the given XP.
// Level is always a pure function of XP, never mutated independently.
func (r *Repository) updateLevel(xp int) int {
	level := xp/XPPerLevel + 1
	r.store.Write(KeyLevel, level)
	return level
}

// CompleteLesson upserts the completion record for lessonID. Attempts
// start at 1 and only ever increase; score, accuracy, and the
// completion timestamp reflect the latest run.
func (r *Repository) CompleteLesson(lessonID string, score, totalQuestions int) {
	if totalQuestions <= 0 {
		return
	}
	completed := r.CompletedLessons()

	rec := LessonRecord{
		Score:          score,
		TotalQuestions: totalQuestions,
		Accuracy:       roundPercent(score, totalQuestions),
		CompletedAt:    r.now(),
		Attempts:       completed[lessonID].Attempts + 1,
	}
	completed[lessonID] = rec

	r.store.Write(KeyCompleted, completed)
}

// IsCompleted reports whether lessonID has ever been completed.
func (r *Repository) IsCompleted(lessonID string) bool {
	_, ok := r.LessonStats(lessonID)
	return ok
}

// LessonStats returns the completion record for lessonID, if any.
func (r *Repository) LessonStats(lessonID string) (LessonRecord, bool) {
	rec, ok := r.CompletedLessons()[lessonID]
	return rec, ok
}

// CompletedLessons returns all completion records, keyed by lesson id.
// The map is never nil.
func (r *Repository) CompletedLessons() map[string]LessonRecord {
	completed := make(map[string]LessonRecord)
	r.store.Read(KeyCompleted, &completed)
	if completed == nil {
		completed = make(map[string]LessonRecord)
	}
	return completed
}

// GetStats aggregates XP, level, and totals across all records.
func (r *Repository) GetStats() Stats {
	completed := r.CompletedLessons()

	var totalScore, totalQuestions int
	for _, rec := range completed {
		totalScore += rec.Score
		totalQuestions += rec.TotalQuestions
	}

	return Stats{
		XP:               r.XP(),
		Level:            r.Level(),
		LessonsCompleted: len(completed),
		TotalScore:       totalScore,
		TotalQuestions:   totalQuestions,
		OverallAccuracy:  roundPercent(totalScore, totalQuestions),
	}
}

// Reset zeroes all progress after the confirmer approves. It returns
// whether the reset actually happened.
func (r *Repository) Reset(confirm Confirmer) bool {
	if confirm == nil || !confirm("Are you sure you want to reset all progress? This cannot be undone.") {
		return false
	}
	r.store.Write(KeyXP, 0)
	r.store.Write(KeyLevel, 1)
	r.store.Write(KeyCompleted, map[string]LessonRecord{})
	return true
}

// roundPercent returns round(100 * score / total), or 0 when total is 0.
func roundPercent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parola/internal/store"
)

// memBackend is a minimal in-memory store.Backend.
type memBackend struct {
	data map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string][]byte)}
}

func (m *memBackend) Get(key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memBackend) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *memBackend) put(t *testing.T, key string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	m.data[key] = data
}

func newTestRepo(t *testing.T) (*Repository, *memBackend, *memBackend) {
	t.Helper()
	primary := newMemBackend()
	secondary := newMemBackend()
	f := store.NewFacade(primary, secondary)
	repo := NewRepository(f)
	repo.Initialize()
	return repo, primary, secondary
}

func TestAddXP_AccumulatesAndRecomputesLevel(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	assert.Equal(t, 0, repo.XP())
	assert.Equal(t, 1, repo.Level())

	assert.Equal(t, 50, repo.AddXP(50))
	assert.Equal(t, 80, repo.AddXP(30))
	assert.Equal(t, 80, repo.XP())
	assert.Equal(t, 1, repo.Level())

	assert.Equal(t, 100, repo.AddXP(20))
	assert.Equal(t, 2, repo.Level())

	// Level is floor(xp/100)+1 at every point.
	repo.AddXP(350)
	assert.Equal(t, 450, repo.XP())
	assert.Equal(t, 5, repo.Level())
}

func TestAddXP_NegativeAmountIgnored(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	repo.AddXP(40)
	assert.Equal(t, 40, repo.AddXP(-10))
}

func TestCompleteLesson_IncrementsAttemptsAndOverwrites(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	repo.CompleteLesson("lesson1", 7, 10)
	rec, ok := repo.LessonStats("lesson1")
	require.True(t, ok)
	assert.Equal(t, 7, rec.Score)
	assert.Equal(t, 10, rec.TotalQuestions)
	assert.Equal(t, 70, rec.Accuracy)
	assert.Equal(t, 1, rec.Attempts)
	assert.False(t, rec.CompletedAt.IsZero())

	repo.CompleteLesson("lesson1", 9, 10)
	rec, ok = repo.LessonStats("lesson1")
	require.True(t, ok)
	assert.Equal(t, 9, rec.Score)
	assert.Equal(t, 90, rec.Accuracy)
	assert.Equal(t, 2, rec.Attempts)
}

func TestCompleteLesson_ZeroTotalSkipped(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	repo.CompleteLesson("empty", 0, 0)
	assert.False(t, repo.IsCompleted("empty"))
}

func TestGetStats_Aggregation(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	repo.AddXP(130)
	repo.CompleteLesson("a", 8, 10)
	repo.CompleteLesson("b", 5, 5)

	stats := repo.GetStats()
	assert.Equal(t, 130, stats.XP)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, 2, stats.LessonsCompleted)
	assert.Equal(t, 13, stats.TotalScore)
	assert.Equal(t, 15, stats.TotalQuestions)
	assert.Equal(t, 87, stats.OverallAccuracy)
}

func TestGetStats_EmptyIsAllZeroesLevelOne(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	stats := repo.GetStats()
	assert.Equal(t, Stats{Level: 1}, stats)
}

func TestReset_RequiresConfirmation(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	repo.AddXP(250)
	repo.CompleteLesson("lesson1", 10, 10)

	assert.False(t, repo.Reset(func(string) bool { return false }))
	assert.Equal(t, 250, repo.XP())

	assert.True(t, repo.Reset(func(string) bool { return true }))
	assert.Equal(t, 0, repo.XP())
	assert.Equal(t, 1, repo.Level())
	assert.Empty(t, repo.CompletedLessons())
}

func TestMigrate_CopiesLegacyKeysOnce(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	secondary.put(t, "userXP", 40)
	secondary.put(t, "userLevel", 1)
	secondary.put(t, "completedLessons", map[string]LessonRecord{
		"x": {Score: 4, TotalQuestions: 10, Accuracy: 40, Attempts: 1, CompletedAt: time.Now()},
	})

	f := store.NewFacade(primary, secondary)
	repo := NewRepository(f)
	repo.Initialize()

	// Legacy data now lives in the unified model.
	assert.Equal(t, 40, repo.XP())
	assert.JSONEq(t, "40", string(primary.data["userXP"]))
	rec, ok := repo.LessonStats("x")
	require.True(t, ok)
	assert.Equal(t, 4, rec.Score)

	var migrated bool
	require.True(t, f.Read("migrated", &migrated))
	assert.True(t, migrated)

	// A second Initialize must not copy again.
	repo.AddXP(10)
	repo.Initialize()
	assert.Equal(t, 50, repo.XP())
}

func TestMigrate_AbsentLegacyKeysAreSkipped(t *testing.T) {
	repo, primary, _ := newTestRepo(t)

	assert.Equal(t, 0, repo.XP())
	assert.Equal(t, 1, repo.Level())
	_, hasXP := primary.data["userXP"]
	assert.False(t, hasXP, "migration must not invent legacy keys")

	var migrated bool
	require.True(t, json.Unmarshal(primary.data["migrated"], &migrated) == nil && migrated)
}

func TestOperations_SurviveCorruptRecords(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	primary.data["completedLessons"] = []byte("{broken")
	secondary.data["completedLessons"] = []byte("{broken")
	primary.data["userXP"] = []byte("nope")
	secondary.data["userXP"] = []byte("nope")

	f := store.NewFacade(primary, secondary)
	require.True(t, f.Probe())
	repo := NewRepository(f)

	assert.Equal(t, 0, repo.XP())
	assert.Empty(t, repo.CompletedLessons())

	// Writes recover from the corruption.
	repo.CompleteLesson("lesson1", 3, 10)
	rec, ok := repo.LessonStats("lesson1")
	require.True(t, ok)
	assert.Equal(t, 1, rec.Attempts)
}

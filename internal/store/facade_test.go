package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBackend is an in-memory Backend for facade tests.
type memBackend struct {
	data    map[string][]byte
	failSet bool
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string][]byte)}
}

func (m *memBackend) Get(key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memBackend) Set(key string, value []byte) error {
	if m.failSet {
		return errors.New("backend unavailable")
	}
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestProbe_RoundTrip(t *testing.T) {
	f := NewFacade(newMemBackend(), newMemBackend())
	assert.True(t, f.Probe())
	assert.True(t, f.PrimaryUsable())
}

func TestProbe_NilOrBrokenPrimary(t *testing.T) {
	f := NewFacade(nil, newMemBackend())
	assert.False(t, f.Probe())

	broken := newMemBackend()
	broken.failSet = true
	f = NewFacade(broken, newMemBackend())
	assert.False(t, f.Probe())
	assert.False(t, f.PrimaryUsable())
}

func TestWrite_GoesToBothStores(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	f := NewFacade(primary, secondary)
	require.True(t, f.Probe())

	f.Write("userXP", 120)

	assert.JSONEq(t, "120", string(primary.data["userXP"]))
	assert.JSONEq(t, "120", string(secondary.data["userXP"]))
}

func TestWrite_SecondaryFailureIsNonFatal(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	f := NewFacade(primary, secondary)
	require.True(t, f.Probe())

	secondary.failSet = true
	f.Write("userXP", 50)

	var xp int
	require.True(t, f.Read("userXP", &xp))
	assert.Equal(t, 50, xp)
}

func TestRead_FallsBackToSecondary(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	secondary.data["userLevel"] = []byte("3")

	f := NewFacade(primary, secondary)
	require.True(t, f.Probe())

	var level int
	require.True(t, f.Read("userLevel", &level))
	assert.Equal(t, 3, level)
}

func TestRead_CorruptValueTreatedAsAbsent(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	primary.data["userXP"] = []byte("{not json")
	secondary.data["userXP"] = []byte("]]")

	f := NewFacade(primary, secondary)
	require.True(t, f.Probe())

	xp := 7 // caller's default must survive
	assert.False(t, f.Read("userXP", &xp))
	assert.Equal(t, 7, xp)
}

func TestRead_CorruptPrimaryFallsThroughToSecondary(t *testing.T) {
	primary := newMemBackend()
	secondary := newMemBackend()
	primary.data["userXP"] = []byte("garbage{")
	secondary.data["userXP"] = []byte("40")

	f := NewFacade(primary, secondary)
	require.True(t, f.Probe())

	var xp int
	require.True(t, f.Read("userXP", &xp))
	assert.Equal(t, 40, xp)
}

func TestRead_UnprobedFacadeUsesSecondaryOnly(t *testing.T) {
	primary := newMemBackend()
	primary.data["k"] = []byte(`"primary"`)
	secondary := newMemBackend()
	secondary.data["k"] = []byte(`"secondary"`)

	f := NewFacade(primary, secondary)
	// No Probe call: primary must be ignored.
	var v string
	require.True(t, f.Read("k", &v))
	assert.Equal(t, "secondary", v)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parola.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("userXP", []byte("10")))
	require.NoError(t, s.Set("userXP", []byte("20"))) // upsert

	got, ok := s.Get("userXP")
	require.True(t, ok)
	assert.Equal(t, "20", string(got))

	require.NoError(t, s.Delete("userXP"))
	_, ok = s.Get("userXP")
	assert.False(t, ok)
}

func TestFileStore_RoundTripAndCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	fs := NewFileStore(path)

	_, ok := fs.Get("missing")
	assert.False(t, ok)

	require.NoError(t, fs.Set("completedLessons", []byte(`{"lesson1":{"score":8}}`)))
	require.NoError(t, fs.Set("userXP", []byte("80")))

	got, ok := fs.Get("userXP")
	require.True(t, ok)
	assert.Equal(t, "80", string(got))

	// A second store over the same file sees persisted data.
	fs2 := NewFileStore(path)
	got, ok = fs2.Get("completedLessons")
	require.True(t, ok)
	assert.JSONEq(t, `{"lesson1":{"score":8}}`, string(got))

	require.NoError(t, fs.Delete("userXP"))
	_, ok = fs.Get("userXP")
	assert.False(t, ok)
}

func TestFacade_SQLitePlusFileIntegration(t *testing.T) {
	dir := t.TempDir()
	sq, err := OpenSQLite(filepath.Join(dir, "parola.db"))
	require.NoError(t, err)
	defer sq.Close()
	fs := NewFileStore(filepath.Join(dir, "progress.json"))

	f := NewFacade(sq, fs)
	require.True(t, f.Probe())

	f.Write("completedLessons", map[string]any{"lesson1": map[string]any{"score": 8}})

	var out map[string]map[string]int
	require.True(t, f.Read("completedLessons", &out))
	assert.Equal(t, 8, out["lesson1"]["score"])
}

package store

import (
	"encoding/json"
	"log"
)

// probeKey is the throwaway key used to verify the primary store.
const probeKey = "__probe__"

// Facade presents the two physical stores as one get/set interface.
//
// Writes go to the primary store when it is usable, and always
// best-effort to the secondary. Reads prefer the primary and fall back
// to the secondary. A value that fails to parse is treated as absent,
// never surfaced as an error: the worst outcome of any storage failure
// is a degraded read that yields the caller's default.
type Facade struct {
	primary   Backend
	secondary Backend
	usable    bool
}

// NewFacade creates a Facade over the given backends. Either backend
// may be nil; a nil primary simply fails the probe.
func NewFacade(primary, secondary Backend) *Facade {
	return &Facade{primary: primary, secondary: secondary}
}

// Probe verifies that the primary store accepts a round-tripped
// write/read/delete, and records the result for this session.
func (f *Facade) Probe() bool {
	f.usable = false
	if f.primary == nil {
		return false
	}
	if err := f.primary.Set(probeKey, []byte("1")); err != nil {
		warnf("primary store probe write failed: %v", err)
		return false
	}
	got, ok := f.primary.Get(probeKey)
	if !ok || string(got) != "1" {
		warnf("primary store probe read failed")
		return false
	}
	if err := f.primary.Delete(probeKey); err != nil {
		warnf("primary store probe delete failed: %v", err)
		return false
	}
	f.usable = true
	return true
}

// PrimaryUsable reports the result of the last Probe.
func (f *Facade) PrimaryUsable() bool {
	return f.usable
}

// Write stores value under key. The value is serialized as JSON.
// Failures are absorbed: the secondary write is best-effort and a
// failed primary write leaves the secondary copy as the durable one.
func (f *Facade) Write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		warnf("marshal %q: %v", key, err)
		return
	}
	if f.usable {
		if err := f.primary.Set(key, data); err != nil {
			warnf("primary write %q: %v", key, err)
		}
	}
	if f.secondary != nil {
		if err := f.secondary.Set(key, data); err != nil {
			warnf("secondary write %q: %v", key, err)
		}
	}
}

// Read unmarshals the value stored under key into out, preferring the
// primary store. It returns false when the key is absent from both
// stores or every stored copy is corrupt; out is untouched in that
// case, so callers keep their default.
func (f *Facade) Read(key string, out any) bool {
	if f.usable {
		if data, ok := f.primary.Get(key); ok {
			if err := json.Unmarshal(data, out); err == nil {
				return true
			}
			warnf("corrupt primary value for %q, falling back", key)
		}
	}
	return f.readSecondary(key, out)
}

// ReadSecondary reads key from the secondary store only. The one-time
// migration uses it to pick up legacy data without the primary
// shadowing it.
func (f *Facade) ReadSecondary(key string, out any) bool {
	return f.readSecondary(key, out)
}

func (f *Facade) readSecondary(key string, out any) bool {
	if f.secondary == nil {
		return false
	}
	data, ok := f.secondary.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		warnf("corrupt secondary value for %q, treating as absent", key)
		return false
	}
	return true
}

func warnf(format string, args ...any) {
	log.Printf("store: "+format, args...)
}

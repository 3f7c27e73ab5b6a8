package lessons

// DefaultLessonID is the lesson served when an unknown or empty id is
// requested.
const DefaultLessonID = "lesson1"

var byID = make(map[string]Lesson, len(course))

func init() {
	for _, l := range course {
		byID[l.ID] = l
	}
}

// All returns every lesson in course order.
func All() []Lesson {
	out := make([]Lesson, len(course))
	copy(out, course)
	return out
}

// Lookup returns the lesson with the given id.
func Lookup(id string) (Lesson, bool) {
	l, ok := byID[id]
	return l, ok
}

// Resolve returns the lesson with the given id, falling back to the
// default lesson when the id is unknown or empty.
func Resolve(id string) Lesson {
	if l, ok := byID[id]; ok {
		return l
	}
	return byID[DefaultLessonID]
}

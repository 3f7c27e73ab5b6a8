package lessons

// Kind distinguishes the two lesson variants. It is resolved once when
// a lesson is loaded, never re-derived from the content.
type Kind int

const (
	KindWordList Kind = iota
	KindConversation
)

// LearnerSpeaker is the speaker name marking lines the learner must supply.
const LearnerSpeaker = "You"

// WordItem is a single vocabulary pair.
type WordItem struct {
	Italian string
	English string
}

// ConversationLine is one turn of a scripted conversation.
type ConversationLine struct {
	Speaker string
	Italian string
	English string
}

// IsLearner reports whether this line must be supplied by the learner.
func (l ConversationLine) IsLearner() bool {
	return l.Speaker == LearnerSpeaker
}

// Lesson is a named unit of course content: either a flat word list or
// a scripted conversation, depending on Kind.
type Lesson struct {
	ID    string
	Title string
	Kind  Kind
	Words []WordItem
	Lines []ConversationLine
}

// IsConversation reports whether the lesson is a conversation review.
func (l Lesson) IsConversation() bool {
	return l.Kind == KindConversation
}

// Size returns the number of drillable items: words for word lists,
// lines for conversations.
func (l Lesson) Size() int {
	if l.Kind == KindConversation {
		return len(l.Lines)
	}
	return len(l.Words)
}

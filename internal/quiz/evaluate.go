package quiz

import "strings"

// Check reports whether response is a correct answer for q.
//
// Choice modes compare the chosen text exactly against the accepted
// answer; typed modes are case-insensitive and whitespace-trimmed.
// ModeMatchPairs is always correct here: a match-pairs question is
// only submitted once its board is solved (see MatchBoard).
func Check(q *Question, response string) bool {
	switch q.Mode {
	case ModeConversation:
		return response == q.Answer
	case ModeMultipleChoice:
		return strings.EqualFold(response, q.Answer)
	case ModeFillBlank:
		return strings.EqualFold(strings.TrimSpace(response), strings.TrimSpace(q.Answer))
	case ModeTyping, ModeTranslate:
		return strings.ToLower(strings.TrimSpace(response)) == q.Answer
	case ModeMatchPairs:
		return true
	}
	return false
}

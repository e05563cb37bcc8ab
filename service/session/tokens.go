package session

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota + 1
	commentCode
	wordCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	commentToken    = parsly.NewToken(commentCode, "Comment", matcher.NewByte('#'))
	wordToken       = parsly.NewToken(wordCode, "Word", newWordMatcher())
)

func newWordMatcher() parsly.Matcher {
	return &wordMatcher{}
}

// wordMatcher matches a run of characters up to whitespace or a comment
// marker; command verbs, queue ids and item names are all bare words.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	size := cursor.InputSize

	matched := 0
	for i := cursor.Pos; i < size; i++ {
		if input[i] == ' ' || input[i] == '\t' || input[i] == '#' {
			break
		}
		matched++
	}
	return matched
}

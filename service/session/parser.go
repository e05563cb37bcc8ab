package session

import "github.com/viant/parsly"

// command is a parsed input line: the verb plus its raw arguments.
type command struct {
	name string
	args []string
}

// parseLine tokenizes a single input line. It returns nil for comment
// and whitespace-only lines, which a session ignores.
func parseLine(line string) *command {
	cursor := parsly.NewCursor("", []byte(line), 0)
	var words []string
	for {
		matched := cursor.MatchAfterOptional(whitespaceToken, commentToken, wordToken)
		if matched.Code != wordCode {
			break
		}
		words = append(words, matched.Text(cursor))
	}
	if len(words) == 0 {
		return nil
	}
	return &command{name: words[0], args: words[1:]}
}

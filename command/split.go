package command

import (
	"errors"
	"fmt"
	"strings"
)

// Split breaks a command line into a program name and its arguments. Tokens
// are separated by spaces or tabs; a single- or double-quoted span keeps its
// spaces and may appear anywhere inside a token, so `--msg="a b"` becomes
// the single argument `--msg=a b`. An empty line or an unterminated quote is
// an error.
func Split(line string) (name string, args []string, err error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", nil, err
	}
	if len(tokens) == 0 {
		return "", nil, errors.New("empty command line")
	}
	return tokens[0], tokens[1:], nil
}

func tokenize(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	var quote rune
	inToken := false

	for _, ch := range line {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				cur.WriteRune(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			inToken = true
		case ch == ' ' || ch == '\t':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(ch)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %q quote", quote)
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

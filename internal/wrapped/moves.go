package wrapped

import (
	"bufio"
	"strings"
)

// CountMoves approximates the number of full moves in a game by counting
// numbered-move tokens ("1.", "2.", ...) in the move text, after stripping
// bracketed tag lines and braced comments. Black continuations ("4...")
// are not counted again.
func CountMoves(pgn string) int {
	moveText := stripTagSection(pgn)
	moveText = stripBracedComments(moveText)

	count := 0
	for _, token := range strings.Fields(moveText) {
		trimmed := strings.TrimSuffix(token, ".")
		if trimmed == token || trimmed == "" || strings.HasSuffix(trimmed, ".") {
			continue
		}
		if !allDigits(trimmed) {
			continue
		}
		count++
	}
	return count
}

func stripTagSection(pgn string) string {
	var builder strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(pgn))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		builder.WriteString(line)
		builder.WriteByte(' ')
	}
	return builder.String()
}

func stripBracedComments(moveText string) string {
	var builder strings.Builder
	depth := 0
	for _, r := range moveText {
		switch {
		case r == '{':
			depth++
		case r == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

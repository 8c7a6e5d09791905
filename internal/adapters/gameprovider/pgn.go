package gameprovider

import (
	"bufio"
	"strings"
)

// A PGN export stream is line-oriented: each game is a run of bracketed
// tag lines followed by one move-text line, with blank lines separating
// games. The scanner below is an explicit state machine over those three
// line shapes - no regular expressions.

type pgnBlock struct {
	tags     map[string]string
	moveText string
}

func scanPGNBlocks(stream string) []pgnBlock {
	var blocks []pgnBlock
	current := pgnBlock{tags: map[string]string{}}
	sawContent := false

	flush := func() {
		if sawContent {
			blocks = append(blocks, current)
		}
		current = pgnBlock{tags: map[string]string{}}
		sawContent = false
	}

	scanner := bufio.NewScanner(strings.NewReader(stream))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			// A blank line separates games only after the move text has been
			// seen; the blank line between the tag section and the move text
			// stays inside the block.
			if current.moveText != "" {
				flush()
			}
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			if current.moveText != "" {
				// Tag line directly after move text starts the next game even
				// without a separating blank line.
				flush()
			}
			if name, value, ok := parsePGNTagLine(line); ok {
				current.tags[name] = value
				sawContent = true
			}
		default:
			if current.moveText == "" {
				current.moveText = line
			} else {
				current.moveText += " " + line
			}
			sawContent = true
		}
	}
	flush()

	return blocks
}

// parsePGNTagLine parses a bracketed tag pair like [White "magnus"].
func parsePGNTagLine(line string) (name, value string, ok bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
	space := strings.IndexByte(inner, ' ')
	if space == -1 {
		return "", "", false
	}
	name = inner[:space]
	rest := strings.TrimSpace(inner[space+1:])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", false
	}
	return name, rest[1 : len(rest)-1], true
}

// pgnTagValue extracts a single tag value from an embedded PGN document,
// stopping at the end of the tag section.
func pgnTagValue(pgn, name string) string {
	scanner := bufio.NewScanner(strings.NewReader(pgn))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "[") {
			// Tag section is over
			return ""
		}
		if tagName, value, ok := parsePGNTagLine(line); ok && tagName == name {
			return value
		}
	}
	return ""
}

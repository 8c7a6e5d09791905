package strutils

import (
	"fmt"
	"strings"
)

// Both platforms accept letters, digits, underscores and hyphens in
// usernames and treat them case-insensitively.
func NormalizeUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "", fmt.Errorf("username is empty")
	}
	if len(trimmed) > 50 {
		return "", fmt.Errorf("username too long (%d characters)", len(trimmed))
	}
	for _, r := range trimmed {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			continue
		}
		return "", fmt.Errorf("username contains invalid character %q", r)
	}
	return strings.ToLower(trimmed), nil
}

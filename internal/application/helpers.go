package application

import "strings"

// ParseRoster splits a comma separated list of players, dropping blanks and
// repeats while keeping the given order.
func ParseRoster(raw string) []string {
	return normalizeRoster(strings.Split(raw, ","))
}

func normalizeRoster(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

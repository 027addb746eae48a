package service

import "strings"

// sanitizeName canonicalizes author names and book titles: trimmed,
// lowercased, internal whitespace collapsed to single spaces.
func sanitizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

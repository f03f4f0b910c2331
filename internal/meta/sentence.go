package meta

import (
	"strings"
	"unicode"
)

// Abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]bool{
	"al":  true,
	"cf":  true,
	"e.g": true,
	"etc": true,
	"i.e": true,
	"vs":  true,
}

// FindSentenceEnd returns the index of the first sentence terminator in
// s, or -1 if there is none. A terminator is '.', '!' or '?', except
// when the period is part of an ellipsis, follows a recognized
// abbreviation or a single-letter initial, or sits in the middle of a
// word (as in version numbers or hostnames).
func FindSentenceEnd(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '!' || c == '?' {
			return i
		}
		if c != '.' {
			continue
		}

		// Ellipsis
		if i+1 < len(s) && s[i+1] == '.' {
			continue
		}
		if i > 0 && s[i-1] == '.' {
			continue
		}

		// Must end the line or be followed by whitespace
		if i+1 < len(s) && !unicode.IsSpace(rune(s[i+1])) {
			continue
		}

		word := precedingWord(s, i)
		if abbreviations[strings.ToLower(word)] {
			continue
		}
		if len(word) == 1 && unicode.IsUpper(rune(word[0])) {
			// Initials, e.g. "J. Doe"
			continue
		}

		return i
	}
	return -1
}

// precedingWord returns the whitespace-delimited token ending just
// before index i.
func precedingWord(s string, i int) string {
	j := i
	for j > 0 && !unicode.IsSpace(rune(s[j-1])) {
		j--
	}
	return s[j:i]
}

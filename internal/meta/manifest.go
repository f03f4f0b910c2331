package meta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ParseManifest reads a zkg.meta manifest into a Metadata mapping.
//
// The format is INI-style: a "[package]" section holding "key = value"
// entries, where a value may continue over subsequent indented lines.
// Other sections (e.g. "[template]") are skipped, as are blank lines
// and lines starting with '#' or ';'. Unknown keys are kept verbatim so
// callers can ignore or inspect them.
func ParseManifest(r io.Reader) (Metadata, error) {
	md := Metadata{}
	section := ""
	lastKey := ""
	lineno := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			lastKey = ""
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		// Section header
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			lastKey = ""
			continue
		}

		// Continuation of the previous value
		if unicode.IsSpace(rune(line[0])) {
			if lastKey == "" {
				return nil, fmt.Errorf("line %d: continuation without a key", lineno)
			}
			if section == "package" {
				md[lastKey] += "\n" + trimmed
			}
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key = value, got %q", lineno, trimmed)
		}
		lastKey = strings.TrimSpace(key)
		if lastKey == "" {
			return nil, fmt.Errorf("line %d: empty key", lineno)
		}
		if section == "package" {
			md[lastKey] = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return md, nil
}

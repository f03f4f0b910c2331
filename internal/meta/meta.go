package meta

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/frederic-klein/zkg/internal/uservar"
)

// Metadata holds the parsed key/value contents of a package's zkg.meta
// (or legacy bro-pkg.meta) manifest. No key is required; callers must
// treat absent fields as normal.
type Metadata map[string]string

// ErrMalformed reports a metadata field that is present but unparseable.
// It is distinct from an absent field, which yields an empty collection
// and no error.
var ErrMalformed = errors.New("malformed metadata field")

var (
	aliasSepRe = regexp.MustCompile(`,\s*|\s+`)
	tagSepRe   = regexp.MustCompile(`,\s*`)
)

// Aliases returns the package name aliases from the metadata's "aliases"
// field. The canonical name is listed first.
func Aliases(md Metadata) []string {
	v, ok := md["aliases"]
	if !ok {
		return nil
	}
	return aliasSepRe.Split(v, -1)
}

// Tags returns the keyword tags from the metadata's "tags" field.
func Tags(md Metadata) []string {
	v, ok := md["tags"]
	if !ok {
		return nil
	}
	return tagSepRe.Split(v, -1)
}

// ShortDescription returns the first sentence of the metadata's
// "description" field. Lines are joined with single spaces until a
// sentence terminator is found; if none is, the whole description is
// returned.
func ShortDescription(md Metadata) string {
	desc, ok := md["description"]
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		b.WriteString(" ")

		end := FindSentenceEnd(line)
		if end == -1 {
			b.WriteString(line)
			continue
		}
		b.WriteString(line[:end+1])
		break
	}

	return strings.TrimLeft(b.String(), " ")
}

// Dependencies returns the name -> version-spec pairs of a dependency
// field such as "depends". The names "zeek" and "zkg" are ordinary keys
// here; the resolver gives them their special meaning.
//
// An absent field yields an empty map. A field whose whitespace tokens
// do not form complete name/spec pairs yields a nil map and an error
// wrapping ErrMalformed.
func Dependencies(md Metadata, field string) (map[string]string, error) {
	v, ok := md[field]
	if !ok {
		return map[string]string{}, nil
	}

	parts := strings.Fields(v)
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("field %q: %w", field, ErrMalformed)
	}

	deps := make(map[string]string, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		deps[parts[i]] = parts[i+1]
	}
	return deps, nil
}

// UserVars returns the user-configurable variables declared in the
// metadata's "user_vars" field. An absent field yields an empty slice;
// a malformed field yields a nil slice and an error.
func UserVars(md Metadata) ([]uservar.UserVar, error) {
	return uservar.ParseDict(md)
}

package uservar

import (
	"fmt"
	"regexp"
	"strings"
)

// UserVar is a user-configurable variable declared in a package's
// "user_vars" metadata field.
type UserVar struct {
	Name string
	Val  string // default value, may be empty
	Desc string
}

// Each entry is a line of the form: name [default] "description",
// with the bracketed default optional.
var entryRe = regexp.MustCompile(`^(\w+)(?:\s+\[(.*)\])?\s+"(.*)"$`)

// ParseDict parses the "user_vars" field of a metadata mapping.
//
// An absent field yields an empty slice. If any non-blank line of the
// field fails to parse, the whole field is considered malformed and a
// nil slice with an error is returned.
func ParseDict(md map[string]string) ([]UserVar, error) {
	text, ok := md["user_vars"]
	if !ok {
		return []UserVar{}, nil
	}

	vars := []UserVar{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := entryRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("invalid user_vars entry: %q", line)
		}
		vars = append(vars, UserVar{Name: m[1], Val: m[2], Desc: m[3]})
	}

	return vars, nil
}

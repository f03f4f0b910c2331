package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tracking methods govern how an installed package is updated: pinned
// to a version tag, following a git branch, pinned to a specific
// commit, or built into the host Zeek.
const (
	MethodVersion = "version"
	MethodBranch  = "branch"
	MethodCommit  = "commit"
	MethodBuiltin = "builtin"
)

// NormalizeVersionTag strips the leading "v" from tags like "v1.2.3".
// Other strings are returned unchanged.
func NormalizeVersionTag(tag string) string {
	if len(tag) > 1 && tag[0] == 'v' && tag[1] >= '0' && tag[1] <= '9' {
		return tag[1:]
	}
	return tag
}

var looseVersionRe = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:[.\-+].*)?$`)

// CoerceVersion leniently parses a version tag as a semantic version.
// Partial versions are zero-padded to major.minor.patch; components
// beyond the patch level and pre-release/build suffixes are dropped,
// so "v1.2.3-rc1" compares as 1.2.3. Constraint checks would otherwise
// exclude pre-release versions entirely.
func CoerceVersion(tag string) (*semver.Version, error) {
	s := NormalizeVersionTag(tag)

	if v, err := semver.NewVersion(s); err == nil {
		if v.Prerelease() == "" && v.Metadata() == "" {
			return v, nil
		}
		return semver.New(v.Major(), v.Minor(), v.Patch(), "", ""), nil
	}

	m := looseVersionRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("cannot coerce version %q", tag)
	}
	for i := 2; i <= 3; i++ {
		if m[i] == "" {
			m[i] = "0"
		}
	}

	return semver.NewVersion(fmt.Sprintf("%s.%s.%s", m[1], m[2], m[3]))
}

// PackageVersion pairs a package's tracking method with its current
// version (a version tag or branch name) for comparison against
// version specs.
type PackageVersion struct {
	Method  string
	Version string

	// Coerced form of Version, memoized on first use. Recomputation is
	// pure, so a racing first use at worst computes it twice.
	sem *semver.Version
}

// Fulfills reports whether this package version satisfies the given
// version spec, along with a diagnostic message when it does not.
//
// Specs are "*" (anything), "branch=<name>", or a semantic-version
// range of comma-separated, ANDed comparator clauses such as
// ">=1.0.0,<2.0.0". Fulfills is total: an unparseable spec is reported
// as a normal non-match, never an error.
func (pv *PackageVersion) Fulfills(spec string) (string, bool) {
	if spec == "*" {
		return "", true
	}

	if pv.Method == MethodCommit {
		return fmt.Sprintf("tracking method commit not compatible with %q", spec), false
	}

	// A branch-tracked package satisfies only the wildcard, even for
	// branch=<name> specs naming its own branch. Historical behavior,
	// kept until there is agreement it should change.
	if pv.Method == MethodBranch {
		return fmt.Sprintf("tracking method branch not compatible with %q", spec), false
	}

	if branch, ok := strings.CutPrefix(spec, "branch="); ok {
		return fmt.Sprintf("branch %s requested, but using method %s", branch, pv.Method), false
	}

	if pv.sem == nil {
		sem, err := CoerceVersion(pv.Version)
		if err != nil {
			return fmt.Sprintf("cannot parse version %q", pv.Version), false
		}
		pv.sem = sem
	}

	constraint, err := semver.NewConstraint(spec)
	if err != nil {
		return fmt.Sprintf("invalid semver spec: %q", spec), false
	}
	if constraint.Check(pv.sem) {
		return "", true
	}

	return fmt.Sprintf("%s not in %s", pv.Version, spec), false
}

package pkg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/frederic-klein/zkg/internal/meta"
	"github.com/frederic-klein/zkg/internal/uservar"
)

// Names of the files packages store their metadata in.
const (
	MetadataFilename       = "zkg.meta"
	LegacyMetadataFilename = "bro-pkg.meta"
)

// Locator scheme and source label reserved for packages built into the
// host Zeek rather than installed via git.
const (
	BuiltinScheme = "zeek-builtin://"
	BuiltinSource = "zeek-builtin"
)

// CanonicalURL returns the canonical locator for a package given its
// git URL or a path to its local repository. A trailing slash is
// stripped, and locators starting with "." or "/" are resolved to an
// absolute, symlink-free path so that different spellings of the same
// location compare equal.
func CanonicalURL(path string) string {
	url := strings.TrimSuffix(path, "/")

	if strings.HasPrefix(url, ".") || strings.HasPrefix(url, "/") {
		url = realPath(url)
	}

	return url
}

// realPath resolves path to its absolute form with symlinks and
// "."/".." segments collapsed. Nonexistent paths are still made
// absolute and cleaned.
func realPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// NameFromPath returns the name of a package given a path or URL to
// its git repository: the last component of the canonical locator.
func NameFromPath(path string) string {
	url := CanonicalURL(path)
	return url[strings.LastIndex(url, "/")+1:]
}

// IsValidName reports whether name is usable as a package name or
// alias. Names with surrounding whitespace, file separators, a leading
// dot, or equal to the reserved words "package"/"packages" are
// rejected.
func IsValidName(name string) bool {
	if name != strings.TrimSpace(name) {
		return false
	}
	if strings.Contains(name, "/") {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	if name == "package" || name == "packages" {
		return false
	}
	return true
}

// Package identifies a Zeek package by its git URL and the package
// source it was discovered through.
//
// Source is empty when the user refers to the package directly by URL.
// Directory is the sub-path within the source's index where the
// package was declared, empty when top-level. Metadata may come from
// the source's last aggregation rather than the package itself, so it
// can be stale.
//
// Identity is string-derived: two packages are the same package
// exactly when their qualified names are equal.
type Package struct {
	GitURL    string
	Name      string
	Source    string
	Directory string
	Metadata  meta.Metadata
}

// New builds a Package from a git URL or local repository path. The
// locator is canonicalized and the name derived from its last path
// component. Locators naming an existing local path are resolved to
// their real path, so relative forms like "foo" and "./foo" produce
// the same package.
func New(gitURL, source, directory string, metadata meta.Metadata) *Package {
	p := &Package{
		GitURL:    CanonicalURL(gitURL),
		Name:      NameFromPath(gitURL),
		Source:    source,
		Directory: directory,
		Metadata:  metadata,
	}
	if p.Metadata == nil {
		p.Metadata = meta.Metadata{}
	}

	if source == "" {
		if _, err := os.Stat(p.GitURL); err == nil {
			p.GitURL = realPath(p.GitURL)
		}
	}

	return p
}

// NewCanonical builds a Package trusting the caller-supplied locator
// and name verbatim, with no path resolution. Used for synthetic
// records such as builtin packages.
func NewCanonical(gitURL, name, source, directory string, metadata meta.Metadata) *Package {
	if metadata == nil {
		metadata = meta.Metadata{}
	}
	return &Package{
		GitURL:    gitURL,
		Name:      name,
		Source:    source,
		Directory: directory,
		Metadata:  metadata,
	}
}

// String returns the package's qualified name, the canonical key for
// equality, ordering and display.
func (p *Package) String() string {
	return p.QualifiedName()
}

// Equal reports whether two packages share a qualified name. Nothing
// else participates in package identity.
func (p *Package) Equal(other *Package) bool {
	return other != nil && p.String() == other.String()
}

// Less orders packages lexicographically by qualified name.
func (p *Package) Less(other *Package) bool {
	return other != nil && p.String() < other.String()
}

// IsBuiltin reports whether the package is built into the host Zeek.
func (p *Package) IsBuiltin() bool {
	return strings.HasPrefix(p.GitURL, BuiltinScheme)
}

// NameWithSourceDirectory returns the package's name within its
// source, e.g. "alice/foo" for a package declared in the source's
// alice/ index, or just the name when top-level.
func (p *Package) NameWithSourceDirectory() string {
	if p.Directory != "" {
		return p.Directory + "/" + p.Name
	}
	return p.Name
}

// QualifiedName returns the shortest name that distinguishes the
// package: "source/dir/name" when it belongs to a source, else its git
// URL.
func (p *Package) QualifiedName() string {
	if p.Source != "" {
		return p.Source + "/" + p.NameWithSourceDirectory()
	}
	return p.GitURL
}

// MatchesPath reports whether path names this package. For a package
// with qualified name "zeek/alice/foo", the inputs "foo", "alice/foo"
// and "zeek/alice/foo" all match: path must be a contiguous suffix of
// the qualified name's components. Packages without a source match
// only their exact name or exact git URL.
func (p *Package) MatchesPath(path string) bool {
	parts := strings.Split(path, "/")

	if p.Source != "" {
		pkgParts := strings.Split(p.QualifiedName(), "/")
		if len(parts) > len(pkgParts) {
			return false
		}
		for i := 1; i <= len(parts); i++ {
			if parts[len(parts)-i] != pkgParts[len(pkgParts)-i] {
				return false
			}
		}
		return true
	}

	if len(parts) == 1 && parts[0] == p.Name {
		return true
	}
	return path == p.GitURL
}

// Aliases returns the package's name aliases, the canonical one first.
func (p *Package) Aliases() []string {
	return meta.Aliases(p.Metadata)
}

// Tags returns the package's keyword tags.
func (p *Package) Tags() []string {
	return meta.Tags(p.Metadata)
}

// ShortDescription returns the first sentence of the package's
// description.
func (p *Package) ShortDescription() string {
	return meta.ShortDescription(p.Metadata)
}

// Dependencies returns the name -> version-spec pairs of the given
// dependency field, usually "depends". See meta.Dependencies for the
// absent/malformed distinction.
func (p *Package) Dependencies(field string) (map[string]string, error) {
	return meta.Dependencies(p.Metadata, field)
}

// UserVars returns the user-configurable variables the package
// declares.
func (p *Package) UserVars() ([]uservar.UserVar, error) {
	return meta.UserVars(p.Metadata)
}

package pkg

import (
	"github.com/frederic-klein/zkg/internal/meta"
	"github.com/frederic-klein/zkg/internal/uservar"
)

// PackageInfo aggregates everything known about a package, installed
// or not: the package itself, its install status (nil unless
// installed), its metadata, its known git version tags, and where the
// metadata came from.
type PackageInfo struct {
	Package *Package
	Status  *PackageStatus

	// Metadata is the parsed contents of the package's zkg.meta.
	Metadata meta.Metadata

	// Versions lists the package's git version tags, sorted ascending
	// by the caller. This package never sorts them.
	Versions []string

	// MetadataVersion is the package version the metadata was read
	// from; VersionType says whether that was a release tag, a branch
	// or a commit.
	MetadataVersion string
	VersionType     string

	// InvalidReason is set when gathering package information failed
	// and explains what went wrong.
	InvalidReason string

	// MetadataFile is the path the metadata was read from, empty when
	// unknown.
	MetadataFile string

	// DefaultBranch is the source repository's default branch, e.g.
	// "main" or "master".
	DefaultBranch string
}

// Aliases returns the package's name aliases.
func (pi *PackageInfo) Aliases() []string {
	return meta.Aliases(pi.Metadata)
}

// Tags returns the package's keyword tags.
func (pi *PackageInfo) Tags() []string {
	return meta.Tags(pi.Metadata)
}

// ShortDescription returns the first sentence of the package's
// description.
func (pi *PackageInfo) ShortDescription() string {
	return meta.ShortDescription(pi.Metadata)
}

// Dependencies returns the name -> version-spec pairs of the given
// dependency field.
func (pi *PackageInfo) Dependencies(field string) (map[string]string, error) {
	return meta.Dependencies(pi.Metadata, field)
}

// UserVars returns the user-configurable variables the package
// declares.
func (pi *PackageInfo) UserVars() ([]uservar.UserVar, error) {
	return meta.UserVars(pi.Metadata)
}

// BestVersion returns the best version of the package that is
// available: the highest release tag if there are any, else the
// default branch.
func (pi *PackageInfo) BestVersion() string {
	if len(pi.Versions) > 0 {
		return pi.Versions[len(pi.Versions)-1]
	}
	return pi.DefaultBranch
}

// IsBuiltin reports whether the package is built into the host Zeek.
func (pi *PackageInfo) IsBuiltin() bool {
	if pi.Package != nil {
		return pi.Package.IsBuiltin()
	}
	return false
}

package pkg

import (
	"github.com/frederic-klein/zkg/internal/meta"
	"github.com/frederic-klein/zkg/internal/version"
)

// MakeBuiltinPackage builds the PackageInfo for a package that is
// compiled into the host Zeek rather than installed via git, as listed
// in Zeek's zkg.provides entry. The package's locator uses the
// reserved builtin scheme and no path resolution is applied.
func MakeBuiltinPackage(name, currentVersion, currentHash string) *PackageInfo {
	p := NewCanonical(BuiltinScheme+name, name, BuiltinSource, "", nil)

	status := &PackageStatus{
		IsLoaded:       true,
		IsPinned:       true,
		IsOutdated:     false,
		TrackingMethod: version.MethodBuiltin,
		CurrentVersion: currentVersion,
		CurrentHash:    currentHash,
	}

	return &PackageInfo{
		Package:  p,
		Status:   status,
		Metadata: meta.Metadata{},
		Versions: []string{currentVersion},
	}
}

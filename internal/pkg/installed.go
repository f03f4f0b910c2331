package pkg

import (
	"github.com/frederic-klein/zkg/internal/version"
)

// InstalledPackage pairs a package with its install status.
//
// Equality and ordering consider only the package's qualified name, so
// collections of installed packages behave as sets keyed by package
// identity even when statuses differ.
type InstalledPackage struct {
	Package *Package
	Status  *PackageStatus
}

// Equal reports whether both values refer to the same package.
func (ip *InstalledPackage) Equal(other *InstalledPackage) bool {
	return other != nil && ip.Package.Equal(other.Package)
}

// Less orders installed packages by their package's qualified name.
func (ip *InstalledPackage) Less(other *InstalledPackage) bool {
	return other != nil && ip.Package.Less(other.Package)
}

// IsBuiltin reports whether the package is built into the host Zeek.
func (ip *InstalledPackage) IsBuiltin() bool {
	return ip.Package.IsBuiltin()
}

// Fulfills reports whether the installed version satisfies the given
// version spec.
func (ip *InstalledPackage) Fulfills(spec string) (string, bool) {
	pv := &version.PackageVersion{
		Method:  ip.Status.TrackingMethod,
		Version: ip.Status.CurrentVersion,
	}
	return pv.Fulfills(spec)
}

package pkg

// PackageStatus describes how the package manager operates on an
// installed package. It is created at install time and updated by
// install/upgrade operations; this package only reads it.
type PackageStatus struct {
	// IsLoaded marks whether the package is loaded into Zeek.
	IsLoaded bool

	// IsPinned marks whether the package is kept from being upgraded.
	IsPinned bool

	// IsOutdated marks whether a newer version exists.
	IsOutdated bool

	// TrackingMethod is one of the version.Method constants: upgrades
	// follow version tags, a git branch, stay at a fixed commit, or do
	// nothing because the package is built into Zeek.
	TrackingMethod string

	// CurrentVersion is the installed version: a git version tag or a
	// branch name.
	CurrentVersion string

	// CurrentHash is the git commit hash of the installed version.
	CurrentHash string
}

package update

import (
	"fmt"

	"github.com/lerenn/portcheck/pkg/packagespec"
	"github.com/lerenn/portcheck/pkg/version"
)

// Direction tells whether the available version is newer or older than the installed one.
type Direction string

const (
	Upgrade   Direction = "upgrade"
	Downgrade Direction = "downgrade"
	Unknown   Direction = "unknown"
)

// VersionDiff is a pair of differing versions: the installed one and the one
// declared by the port.
type VersionDiff struct {
	Installed version.Version
	Available version.Version
}

// NewVersionDiff creates a VersionDiff. The versions must differ.
func NewVersionDiff(installed, available version.Version) VersionDiff {
	if installed.Equal(available) {
		panic(fmt.Sprintf("update: version diff between identical versions %s", installed))
	}
	return VersionDiff{Installed: installed, Available: available}
}

func (d VersionDiff) String() string {
	return d.Installed.String() + " -> " + d.Available.String()
}

// Direction orders the two versions. Versions without a semantic ordering
// give Unknown. Detection never depends on it.
func (d VersionDiff) Direction() Direction {
	c, err := version.Compare(d.Installed, d.Available)
	switch {
	case err != nil:
		return Unknown
	case c < 0:
		return Upgrade
	case c > 0:
		return Downgrade
	}
	return Unknown
}

// OutdatedPackage is an installed package whose version differs from its port.
type OutdatedPackage struct {
	Spec        packagespec.PackageSpec
	VersionDiff VersionDiff
}

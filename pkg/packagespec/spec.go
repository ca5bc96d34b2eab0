package packagespec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSpec is returned when a package spec string cannot be parsed.
var ErrInvalidSpec = errors.New("invalid package spec")

// PackageSpec identifies an installed package: a port name built for a triplet.
type PackageSpec struct {
	Name    string
	Triplet string
}

// New creates a PackageSpec from a name and a triplet.
func New(name, triplet string) PackageSpec {
	return PackageSpec{Name: name, Triplet: triplet}
}

// Parse parses "name:triplet" (or a bare "name") into a PackageSpec.
func Parse(s string) (PackageSpec, error) {
	name, triplet, found := strings.Cut(s, ":")
	if name == "" || (found && triplet == "") || strings.Contains(triplet, ":") {
		return PackageSpec{}, fmt.Errorf("%w: %q", ErrInvalidSpec, s)
	}
	return PackageSpec{Name: name, Triplet: triplet}, nil
}

// String renders the spec as "name:triplet".
func (s PackageSpec) String() string {
	if s.Triplet == "" {
		return s.Name
	}
	return s.Name + ":" + s.Triplet
}

// Compare orders specs by name, then by triplet.
func Compare(a, b PackageSpec) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Triplet, b.Triplet)
}

// Less reports whether a sorts before b.
func Less(a, b PackageSpec) bool {
	return Compare(a, b) < 0
}

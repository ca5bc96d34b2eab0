package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNotComparable is returned by Compare when a version has no semantic ordering.
var ErrNotComparable = errors.New("versions are not comparable")

// Version is the version of a port, as recorded in the status database or
// declared by a port definition. Two versions are the same only if both the
// text and the port version match.
type Version struct {
	Text        string
	PortVersion int
}

// New creates a Version.
func New(text string, portVersion int) Version {
	return Version{Text: text, PortVersion: portVersion}
}

// Parse parses "text" or "text#port-version".
func Parse(s string) (Version, error) {
	text, port, found := strings.Cut(s, "#")
	if text == "" {
		return Version{}, fmt.Errorf("empty version in %q", s)
	}
	if !found {
		return Version{Text: text}, nil
	}
	pv, err := ParsePortVersion(port)
	if err != nil {
		return Version{}, err
	}
	return Version{Text: text, PortVersion: pv}, nil
}

// ParsePortVersion parses a Port-Version field value. An empty value is 0.
func ParsePortVersion(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	pv, err := strconv.Atoi(s)
	if err != nil || pv < 0 {
		return 0, fmt.Errorf("invalid port version %q", s)
	}
	return pv, nil
}

// Equal reports whether v and o are the same version.
func (v Version) Equal(o Version) bool {
	return v == o
}

func (v Version) String() string {
	if v.PortVersion > 0 {
		return fmt.Sprintf("%s#%d", v.Text, v.PortVersion)
	}
	return v.Text
}

// Compare orders two versions by their semantic version text, then by port
// version. It is not used to decide whether a package is outdated: any
// difference counts there. ErrNotComparable is returned when either text is
// not a semantic version.
func Compare(a, b Version) (int, error) {
	av, err := semver.NewVersion(a.Text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrNotComparable, a.Text, err)
	}
	bv, err := semver.NewVersion(b.Text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrNotComparable, b.Text, err)
	}
	if c := av.Compare(bv); c != 0 {
		return c, nil
	}
	switch {
	case a.PortVersion < b.PortVersion:
		return -1, nil
	case a.PortVersion > b.PortVersion:
		return 1, nil
	}
	return 0, nil
}

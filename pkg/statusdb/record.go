package statusdb

import (
	"fmt"
	"strings"

	"github.com/lerenn/portcheck/pkg/packagespec"
	"github.com/lerenn/portcheck/pkg/paragraph"
	"github.com/lerenn/portcheck/pkg/version"
)

// Status is the "want flag state" triple of a status paragraph,
// e.g. "install ok installed".
type Status struct {
	Want  string
	Flag  string
	State string
}

// ParseStatus parses a Status field value.
func ParseStatus(s string) (Status, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return Status{}, fmt.Errorf("invalid status %q", s)
	}
	return Status{Want: parts[0], Flag: parts[1], State: parts[2]}, nil
}

// Installed reports whether the package is wanted and fully installed.
func (s Status) Installed() bool {
	return s.Want == "install" && s.State == "installed"
}

func (s Status) String() string {
	return s.Want + " " + s.Flag + " " + s.State
}

// Record is one entry of the installed-package database. A record with an
// empty Feature is the package itself; otherwise it is one of its features.
type Record struct {
	Spec    packagespec.PackageSpec
	Version version.Version
	Feature string
	Status  Status
}

// IsPrimary reports whether the record describes the package itself rather than a feature.
func (r Record) IsPrimary() bool {
	return r.Feature == ""
}

type recordKey struct {
	spec    packagespec.PackageSpec
	feature string
}

func (r Record) key() recordKey {
	return recordKey{spec: r.Spec, feature: r.Feature}
}

func recordFromParagraph(p paragraph.Paragraph) (Record, error) {
	name, err := p.Required("Package")
	if err != nil {
		return Record{}, err
	}
	triplet, err := p.Required("Architecture")
	if err != nil {
		return Record{}, fmt.Errorf("package %s: %w", name, err)
	}
	rawStatus, err := p.Required("Status")
	if err != nil {
		return Record{}, fmt.Errorf("package %s: %w", name, err)
	}
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return Record{}, fmt.Errorf("package %s: %w", name, err)
	}
	portVersion, err := version.ParsePortVersion(p.Get("Port-Version"))
	if err != nil {
		return Record{}, fmt.Errorf("package %s: %w", name, err)
	}

	return Record{
		Spec:    packagespec.New(name, triplet),
		Version: version.New(p.Get("Version"), portVersion),
		Feature: p.Get("Feature"),
		Status:  status,
	}, nil
}

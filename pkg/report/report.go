package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lerenn/portcheck/pkg/config"
	"github.com/lerenn/portcheck/pkg/update"
	"gopkg.in/yaml.v3"
)

// LocalPortsNotice is printed before a text report.
const LocalPortsNotice = "Using local portfile versions. To update the local portfiles, use `git pull`."

const (
	upToDateText = "No packages need updating."
	headerText   = "The following packages differ from their port versions:"
	hintsText    = "\n" +
		"To update these packages and all dependencies, run\n" +
		"    vcpkg upgrade\n" +
		"\n" +
		"To only remove outdated packages, run\n" +
		"    vcpkg remove --outdated\n"
)

// Entry is the structured form of an outdated package.
type Entry struct {
	Name      string           `json:"name" yaml:"name"`
	Triplet   string           `json:"triplet" yaml:"triplet"`
	Installed string           `json:"installed" yaml:"installed"`
	Available string           `json:"available" yaml:"available"`
	Direction update.Direction `json:"direction" yaml:"direction"`
}

// Document is the structured report.
type Document struct {
	Outdated []Entry `json:"outdated" yaml:"outdated"`
}

// NewDocument converts outdated packages to their structured form, keeping order.
func NewDocument(outdated []update.OutdatedPackage) Document {
	doc := Document{Outdated: make([]Entry, 0, len(outdated))}
	for _, o := range outdated {
		doc.Outdated = append(doc.Outdated, Entry{
			Name:      o.Spec.Name,
			Triplet:   o.Spec.Triplet,
			Installed: o.VersionDiff.Installed.String(),
			Available: o.VersionDiff.Available.String(),
			Direction: o.VersionDiff.Direction(),
		})
	}
	return doc
}

// Write renders outdated to w in the given format.
func Write(w io.Writer, format string, outdated []update.OutdatedPackage) error {
	switch format {
	case config.OutputText:
		return writeText(w, outdated)
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(outdated))
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(outdated)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", config.ErrInvalidOutput, format)
}

func writeText(w io.Writer, outdated []update.OutdatedPackage) error {
	if len(outdated) == 0 {
		_, err := fmt.Fprintln(w, upToDateText)
		return err
	}

	if _, err := fmt.Fprintln(w, headerText); err != nil {
		return err
	}
	for _, o := range outdated {
		if _, err := fmt.Fprintf(w, "    %-32s %s\n", o.Spec, o.VersionDiff); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, hintsText)
	return err
}

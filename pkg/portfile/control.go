package portfile

import (
	"errors"
	"fmt"

	"github.com/lerenn/portcheck/pkg/paragraph"
	"github.com/lerenn/portcheck/pkg/version"
)

// ControlFileName is the name of a legacy port definition inside a port directory.
const ControlFileName = "CONTROL"

// ErrEmptyControl is returned for a CONTROL file without any paragraph.
var ErrEmptyControl = errors.New("empty control file")

// LoadControl reads the source paragraph of a CONTROL file. Feature
// paragraphs that follow it carry no version and are ignored.
func LoadControl(path string) (*ControlFile, error) {
	paragraphs, err := paragraph.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyControl)
	}

	src := paragraphs[0]
	name, err := src.Required("Source")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	text, err := src.Required("Version")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	portVersion, err := version.ParsePortVersion(src.Get("Port-Version"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &ControlFile{
		Name:        name,
		Version:     version.New(text, portVersion),
		Description: src.Get("Description"),
		Source:      path,
	}, nil
}

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=provider.go -destination=mock_provider.gen.go -package=portfile
package portfile

import (
	"errors"

	"github.com/lerenn/portcheck/pkg/version"
)

// ErrPortNotFound is returned by a Provider that has no definition for a port.
var ErrPortNotFound = errors.New("port not found")

// ControlFile is the declared definition of a port.
type ControlFile struct {
	Name        string
	Version     version.Version
	Description string
	// Source is the file the definition was read from, empty for in-memory definitions.
	Source string
}

// Provider looks up port definitions by port name.
type Provider interface {
	// Lookup returns the definition of the named port, or ErrPortNotFound.
	Lookup(name string) (*ControlFile, error)
}

// MapProvider is a Provider backed by an in-memory map of port versions.
type MapProvider struct {
	versions map[string]version.Version
}

// Ensure MapProvider implements Provider.
var _ Provider = (*MapProvider)(nil)

// NewMapProvider creates a Provider declaring the given versions.
func NewMapProvider(versions map[string]version.Version) *MapProvider {
	m := make(map[string]version.Version, len(versions))
	for name, v := range versions {
		m[name] = v
	}
	return &MapProvider{versions: m}
}

// Lookup implements Provider.
func (p *MapProvider) Lookup(name string) (*ControlFile, error) {
	v, ok := p.versions[name]
	if !ok {
		return nil, ErrPortNotFound
	}
	return &ControlFile{Name: name, Version: v}, nil
}

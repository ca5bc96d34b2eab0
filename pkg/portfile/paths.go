package portfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// PathsProvider reads port definitions from overlay port directories and a
// ports tree. Each port lives in <dir>/<name>/ and is described either by a
// vcpkg.json manifest or by a CONTROL file.
type PathsProvider struct {
	dirs []string

	mu    sync.Mutex
	cache map[string]lookupResult
}

type lookupResult struct {
	cf  *ControlFile
	err error
}

// Ensure PathsProvider implements Provider.
var _ Provider = (*PathsProvider)(nil)

// NewPathsProvider creates a provider searching overlays in order, then portsDir.
func NewPathsProvider(portsDir string, overlays ...string) *PathsProvider {
	dirs := make([]string, 0, len(overlays)+1)
	dirs = append(dirs, overlays...)
	dirs = append(dirs, portsDir)
	return &PathsProvider{
		dirs:  dirs,
		cache: make(map[string]lookupResult),
	}
}

// Lookup implements Provider. Results are cached, misses included.
func (p *PathsProvider) Lookup(name string) (*ControlFile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if res, ok := p.cache[name]; ok {
		return res.cf, res.err
	}
	cf, err := p.load(name)
	p.cache[name] = lookupResult{cf: cf, err: err}
	return cf, err
}

func (p *PathsProvider) load(name string) (*ControlFile, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, ErrPortNotFound
	}
	for _, dir := range p.dirs {
		portDir := filepath.Join(dir, name)
		cf, err := loadPortDir(portDir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load port %s: %w", name, err)
		}
		if cf.Name != name {
			return nil, fmt.Errorf("failed to load port %s: %s declares name %q", name, cf.Source, cf.Name)
		}
		return cf, nil
	}
	return nil, ErrPortNotFound
}

func loadPortDir(portDir string) (*ControlFile, error) {
	manifestPath := filepath.Join(portDir, ManifestFile)
	if _, err := os.Stat(manifestPath); err == nil {
		return LoadManifest(manifestPath)
	}
	return LoadControl(filepath.Join(portDir, ControlFileName))
}

package portfile

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/lerenn/portcheck/pkg/version"
	"github.com/muhammadmuzzammil1998/jsonc"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ManifestFile is the name of a port manifest inside a port directory.
const ManifestFile = "vcpkg.json"

const manifestSchemaURL = "mem://schemas/manifest.schema.json"

//go:embed schemas/manifest.schema.json
var schemaFS embed.FS

var (
	compileOnce    sync.Once
	manifestSchema *jsonschema.Schema
	compileErr     error
)

func getManifestSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := schemaFS.ReadFile("schemas/manifest.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read manifest schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("decode manifest schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(manifestSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("register manifest schema: %w", err)
			return
		}
		manifestSchema, compileErr = c.Compile(manifestSchemaURL)
	})
	return manifestSchema, compileErr
}

type manifest struct {
	Name          string          `json:"name"`
	Version       string          `json:"version"`
	VersionSemver string          `json:"version-semver"`
	VersionDate   string          `json:"version-date"`
	VersionString string          `json:"version-string"`
	PortVersion   int             `json:"port-version"`
	Description   json.RawMessage `json:"description"`
}

func (m manifest) versionText() string {
	for _, v := range []string{m.Version, m.VersionSemver, m.VersionDate, m.VersionString} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (m manifest) description() string {
	if len(m.Description) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.Description, &s); err == nil {
		return s
	}
	var lines []string
	if err := json.Unmarshal(m.Description, &lines); err == nil {
		return strings.Join(lines, "\n")
	}
	return ""
}

// ParseManifest decodes and validates a vcpkg.json manifest. Comments are allowed.
func ParseManifest(data []byte) (*ControlFile, error) {
	clean := jsonc.ToJSON(data)

	schema, err := getManifestSchema()
	if err != nil {
		return nil, err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(clean))
	if err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(clean, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &ControlFile{
		Name:        m.Name,
		Version:     version.New(m.versionText(), m.PortVersion),
		Description: m.description(),
	}, nil
}

// LoadManifest reads a vcpkg.json manifest from path.
func LoadManifest(path string) (*ControlFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cf, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cf.Source = path
	return cf, nil
}

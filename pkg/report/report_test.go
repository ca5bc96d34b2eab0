package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lerenn/portcheck/pkg/config"
	"github.com/lerenn/portcheck/pkg/packagespec"
	"github.com/lerenn/portcheck/pkg/update"
	"github.com/lerenn/portcheck/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() []update.OutdatedPackage {
	return []update.OutdatedPackage{
		{
			Spec:        packagespec.New("curl", "x64-linux"),
			VersionDiff: update.NewVersionDiff(version.New("7.80.0", 0), version.New("7.79.0", 0)),
		},
		{
			Spec:        packagespec.New("zlib", "x64-linux"),
			VersionDiff: update.NewVersionDiff(version.New("1.2.11", 0), version.New("1.2.13", 1)),
		},
	}
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.OutputText, nil))
	assert.Equal(t, "No packages need updating.\n", buf.String())
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.OutputText, sample()))

	out := buf.String()
	assert.Contains(t, out, "The following packages differ from their port versions:\n")
	assert.Contains(t, out, "    curl:x64-linux                   7.80.0 -> 7.79.0\n")
	assert.Contains(t, out, "    zlib:x64-linux                   1.2.11 -> 1.2.13#1\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("curl")), bytes.Index(buf.Bytes(), []byte("zlib")))
	assert.Contains(t, out, "remove --outdated")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.OutputJSON, sample()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, Document{Outdated: []Entry{
		{Name: "curl", Triplet: "x64-linux", Installed: "7.80.0", Available: "7.79.0", Direction: update.Downgrade},
		{Name: "zlib", Triplet: "x64-linux", Installed: "1.2.11", Available: "1.2.13#1", Direction: update.Upgrade},
	}}, doc)
}

func TestWrite_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.OutputJSON, nil))
	assert.JSONEq(t, `{"outdated": []}`, buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.OutputYAML, sample()))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Outdated, 2)
	assert.Equal(t, "zlib", doc.Outdated[1].Name)
	assert.Equal(t, update.Upgrade, doc.Outdated[1].Direction)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", nil)
	require.ErrorIs(t, err, config.ErrInvalidOutput)
}

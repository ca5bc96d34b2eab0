package statusdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/portcheck/pkg/packagespec"
	"github.com/lerenn/portcheck/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseStatus = `Package: zlib
Version: 1.2.11
Architecture: x64-windows
Status: install ok installed

Package: curl
Version: 7.80.0
Port-Version: 1
Architecture: x64-windows
Status: install ok installed

Package: curl
Feature: ssl
Architecture: x64-windows
Status: install ok installed

Package: openssl
Version: 3.0.0
Architecture: x64-windows
Status: purge ok not-installed
`

func writeInstalled(t *testing.T, status string, updates map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, UpdatesDir), 0755))
	if status != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, StatusFile), []byte(status), 0644))
	}
	for name, content := range updates {
		require.NoError(t, os.WriteFile(filepath.Join(dir, UpdatesDir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeInstalled(t, baseStatus, nil)

	db, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 4, db.Len())

	records := db.AllRecords()
	require.Len(t, records, 3)
	assert.Equal(t, Record{
		Spec:    packagespec.New("zlib", "x64-windows"),
		Version: version.New("1.2.11", 0),
		Status:  Status{Want: "install", Flag: "ok", State: "installed"},
	}, records[0])
	assert.Equal(t, version.New("7.80.0", 1), records[1].Version)
	assert.True(t, records[1].IsPrimary())
	assert.Equal(t, "ssl", records[2].Feature)
	assert.False(t, records[2].IsPrimary())
}

func TestLoad_UpdatesOverrideInLexicalOrder(t *testing.T) {
	dir := writeInstalled(t, baseStatus, map[string]string{
		"0000000002": "Package: zlib\nVersion: 1.3.1\nArchitecture: x64-windows\nStatus: install ok installed\n",
		"0000000001": "Package: zlib\nVersion: 1.3.0\nArchitecture: x64-windows\nStatus: install ok installed\n\n" +
			"Package: fmt\nVersion: 10.0.0\nArchitecture: x64-windows\nStatus: install ok installed\n",
		"0000000003": "Package: curl\nVersion: 7.80.0\nPort-Version: 1\nArchitecture: x64-windows\nStatus: purge ok not-installed\n",
	})

	db, err := Load(dir)
	require.NoError(t, err)

	records := db.AllRecords()
	var specs []string
	for _, r := range records {
		specs = append(specs, r.Spec.String()+"/"+r.Feature)
	}
	assert.Equal(t, []string{"zlib:x64-windows/", "curl:x64-windows/ssl", "fmt:x64-windows/"}, specs)
	assert.Equal(t, version.New("1.3.1", 0), records[0].Version)
}

func TestLoad_MissingStatusFile(t *testing.T) {
	db, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, db.AllRecords())
}

func TestLoad_InvalidParagraph(t *testing.T) {
	dir := writeInstalled(t, "Package: zlib\nVersion: 1.2.11\nStatus: install ok installed\n", nil)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Architecture")
	assert.Contains(t, err.Error(), "zlib")
}

func TestLoad_InvalidStatus(t *testing.T) {
	dir := writeInstalled(t, "Package: zlib\nArchitecture: x64-linux\nStatus: installed\n", nil)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestSnapshot_FiltersNotInstalled(t *testing.T) {
	installed := Record{
		Spec:   packagespec.New("zlib", "x64-linux"),
		Status: Status{Want: "install", Flag: "ok", State: "installed"},
	}
	halfInstalled := Record{
		Spec:   packagespec.New("curl", "x64-linux"),
		Status: Status{Want: "install", Flag: "ok", State: "half-installed"},
	}

	snap := NewSnapshot(installed, halfInstalled)
	assert.Equal(t, []Record{installed}, snap.AllRecords())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("install ok installed")
	require.NoError(t, err)
	assert.True(t, s.Installed())
	assert.Equal(t, "install ok installed", s.String())

	s, err = ParseStatus("deinstall ok installed")
	require.NoError(t, err)
	assert.False(t, s.Installed())
}

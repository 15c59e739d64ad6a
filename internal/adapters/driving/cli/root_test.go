package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/logger"
)

const testIndex = `[
  {"id": "go-notes", "title": "Go Notes", "path": "notes/go", "updated": "2024-05-01", "tags": ["lang", "go"]},
  {"id": "rust", "title": "Rust", "path": "notes/rust.html", "tbd": ["borrowck", "async"], "confidence": "0.7"},
  {"id": "", "path": "dropped/"},
  null
]`

// MockIndexLoader implements driven.IndexLoader for CLI tests.
type MockIndexLoader struct {
	LoadFunc func(ctx context.Context) ([]domain.RawRecord, error)
}

func (m *MockIndexLoader) Load(ctx context.Context) ([]domain.RawRecord, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, nil
}

func (m *MockIndexLoader) Location() string {
	return "mock"
}

// setupTestCLI isolates the command tree from the environment and the
// user's config, and captures output.
func setupTestCLI(t *testing.T) *bytes.Buffer {
	t.Helper()

	origLookup, origTerminal, origFactory := envLookup, isTerminal, loaderFactory
	envLookup = func(string) (string, bool) { return "", false }
	isTerminal = func() bool { return false }

	flagSite = ""
	flagConfigDir = t.TempDir()
	flagVerbose = false
	flagListJSON = false
	flagExportOutput = ""
	flagBrowseOpen = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	t.Cleanup(func() {
		envLookup, isTerminal, loaderFactory = origLookup, origTerminal, origFactory
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfg = nil
		logger.SetVerbose(false)
	})
	return buf
}

// writeIndex writes an index.json into a fresh site directory.
func writeIndex(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.IndexFile), []byte(content), 0600))
	return dir
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "notedex", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"site", "config-dir", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_ListsWhenNotATerminal(t *testing.T) {
	buf := setupTestCLI(t)
	site := writeIndex(t, testIndex)

	err := execute("--site", site)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Go Notes")
	assert.Contains(t, buf.String(), "2 notes")
}

func TestRootCmd_RejectsUnknownCommand(t *testing.T) {
	setupTestCLI(t)

	err := execute("frobnicate")

	assert.Error(t, err)
}

func TestRootCmd_VerboseEnablesLogger(t *testing.T) {
	setupTestCLI(t)

	require.NoError(t, execute("--verbose", "version"))
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_CorruptConfigFails(t *testing.T) {
	setupTestCLI(t)
	require.NoError(t, os.WriteFile(filepath.Join(flagConfigDir, "config.toml"), []byte("not [valid"), 0600))

	err := execute("version")

	assert.Error(t, err)
}

func TestRootCmd_SiteFromEnvironment(t *testing.T) {
	buf := setupTestCLI(t)
	site := writeIndex(t, testIndex)
	envLookup = func(key string) (string, bool) {
		if key == "NOTEDEX_SITE" {
			return site, true
		}
		return "", false
	}

	require.NoError(t, execute("list", "rust"))
	assert.Contains(t, buf.String(), "1 note")
}

func TestNewCatalogue(t *testing.T) {
	t.Run("requires configuration", func(t *testing.T) {
		setupTestCLI(t)

		_, err := newCatalogue()
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("uses loader factory with configured timeout", func(t *testing.T) {
		setupTestCLI(t)
		var gotLocation string
		var gotTimeout time.Duration
		loaderFactory = func(location string, timeout time.Duration) (driven.IndexLoader, error) {
			gotLocation, gotTimeout = location, timeout
			return &MockIndexLoader{}, nil
		}

		require.NoError(t, execute("--site", "https://notes.example.com/", "list"))
		assert.Equal(t, "https://notes.example.com/", gotLocation)
		assert.Equal(t, domain.DefaultHTTPTimeoutSeconds*time.Second, gotTimeout)
	})
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

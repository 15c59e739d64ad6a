package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notedex/internal/core/domain"
)

func TestExportCmd_Use(t *testing.T) {
	assert.Equal(t, "export [query...]", exportCmd.Use)
}

func TestExportCmd_HasOutputFlag(t *testing.T) {
	flag := exportCmd.Flags().Lookup("output")
	require.NotNil(t, flag, "output flag should exist")
	assert.Equal(t, "o", flag.Shorthand)
}

func TestExportCmd_WritesFragmentToStdout(t *testing.T) {
	buf := setupTestCLI(t)
	site := writeIndex(t, testIndex)

	require.NoError(t, execute("export", "--site", site, "go"))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("ul#list > li.item").Length())
	assert.Equal(t, "notes/go/", doc.Find("li.item a").AttrOr("href", ""))
	assert.Equal(t, "1", doc.Find("#count").Text())
	assert.Equal(t, domain.StateReady.StatusText(), doc.Find("#status").Text())
	_, hidden := doc.Find("#empty").Attr("hidden")
	assert.True(t, hidden)
}

func TestExportCmd_EmptyResult(t *testing.T) {
	buf := setupTestCLI(t)
	site := writeIndex(t, testIndex)

	require.NoError(t, execute("export", "--site", site, "haskell"))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Zero(t, doc.Find("li.item").Length())
	_, hidden := doc.Find("#empty").Attr("hidden")
	assert.False(t, hidden)
}

func TestExportCmd_WritesFile(t *testing.T) {
	buf := setupTestCLI(t)
	site := writeIndex(t, testIndex)
	out := filepath.Join(t.TempDir(), "notes.html")

	require.NoError(t, execute("export", "--site", site, "-o", out))

	assert.Empty(t, buf.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("li.item").Length())
}

func TestExportCmd_LoadFailure(t *testing.T) {
	setupTestCLI(t)

	err := execute("export", "--site", t.TempDir())

	assert.ErrorIs(t, err, domain.ErrLoad)
}

// closingWriter closes the file it is given, so the final Close fails.
type closingWriter struct{}

func (closingWriter) WriteTo(w io.Writer) (int64, error) {
	if f, ok := w.(*os.File); ok {
		return 0, f.Close()
	}
	return 0, nil
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) WriteTo(io.Writer) (int64, error) {
	return 0, errors.New("disk full")
}

func TestWriteExportFile(t *testing.T) {
	t.Run("reports close failure", func(t *testing.T) {
		err := writeExportFile(filepath.Join(t.TempDir(), "out.html"), closingWriter{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to close output")
	})

	t.Run("reports write failure", func(t *testing.T) {
		err := writeExportFile(filepath.Join(t.TempDir(), "out.html"), failingWriter{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("reports create failure", func(t *testing.T) {
		err := writeExportFile(filepath.Join(t.TempDir(), "missing", "out.html"), failingWriter{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create output")
	})
}

package index_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notedex/internal/adapters/driven/index"
	"github.com/custodia-labs/notedex/internal/adapters/driven/index/fileindex"
	"github.com/custodia-labs/notedex/internal/adapters/driven/index/httpindex"
	"github.com/custodia-labs/notedex/internal/core/domain"
)

func TestNew(t *testing.T) {
	tests := []struct {
		location string
		wantHTTP bool
		want     string
	}{
		{"http://localhost:8000/", true, "http://localhost:8000/index.json"},
		{"https://example.org/notes/", true, "https://example.org/notes/index.json"},
		{"/srv/site", false, "/srv/site/index.json"},
		{"file:///srv/site", false, "/srv/site/index.json"},
		{"  site  ", false, "site/index.json"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			loader, err := index.New(tt.location, time.Second)
			require.NoError(t, err)

			if tt.wantHTTP {
				assert.IsType(t, &httpindex.Loader{}, loader)
			} else {
				assert.IsType(t, &fileindex.Loader{}, loader)
			}
			assert.Equal(t, tt.want, loader.Location())
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	for _, location := range []string{"", "   ", "ftp://example.org/"} {
		_, err := index.New(location, time.Second)
		require.Error(t, err, location)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), location)
	}
}
